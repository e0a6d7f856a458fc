package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-auth-api/internal/domain"
	resp "go-auth-api/internal/transport/http/response"
)

type AdminHandler struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewAdminHandler(users domain.UserRepository, log *zap.Logger) *AdminHandler {
	return &AdminHandler{users: users, log: log}
}

type userRow struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsers handles GET /admin/v1/users?offset=&limit=&q=.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	offset := atoiDefault(c.Query("offset"), 0)
	limit := atoiDefault(c.Query("limit"), 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	users, total, err := h.users.List(c.Request.Context(), offset, limit, c.Query("q"))
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]userRow, 0, len(users))
	for _, u := range users {
		items = append(items, userRow{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": items})
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
