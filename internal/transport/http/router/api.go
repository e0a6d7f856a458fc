package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-auth-api/internal/core/auth"
	"go-auth-api/internal/transport/http/handler"
	mdw "go-auth-api/internal/transport/http/middleware"
)

// NewAPIEngine wires the public API: open registration/login plus the
// bearer-guarded external proxy.
func NewAPIEngine(l *zap.Logger, userH *handler.UserHandler, extH *handler.ExternalHandler, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimitPerIP(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/users")
	users.POST("/register", userH.Register)
	users.POST("/login", userH.Login)

	external := r.Group("/external")
	external.Use(mdw.AuthJWT(jwter))
	external.GET("/posts", extH.GetPosts)
	external.POST("/posts", extH.CreatePost)

	return r
}
