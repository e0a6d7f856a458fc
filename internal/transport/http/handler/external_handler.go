package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-auth-api/internal/service"
	resp "go-auth-api/internal/transport/http/response"
)

// ExternalHandler exposes the authenticated pass-through to the upstream
// posts API: the upstream JSON body is forwarded as-is in both directions.
type ExternalHandler struct {
	ext *service.ExternalService
	log *zap.Logger
}

func NewExternalHandler(ext *service.ExternalService, log *zap.Logger) *ExternalHandler {
	return &ExternalHandler{ext: ext, log: log}
}

func (h *ExternalHandler) GetPosts(c *gin.Context) {
	data, err := h.ext.FetchPosts(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (h *ExternalHandler) CreatePost(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	data, err := h.ext.CreatePost(c.Request.Context(), body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (h *ExternalHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUpstream) {
		h.log.Warn("upstream request failed", zap.Error(err))
		resp.Fail(c, http.StatusBadGateway, "upstream unavailable")
		return
	}
	h.log.Error("external proxy failed", zap.Error(err))
	resp.Fail(c, http.StatusInternalServerError, "internal error")
}
