package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-auth-api/internal/domain"
	"go-auth-api/internal/service"
	resp "go-auth-api/internal/transport/http/response"
)

type UserHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewUserHandler(auth *service.AuthService, log *zap.Logger) *UserHandler {
	return &UserHandler{auth: auth, log: log}
}

type registerOut struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Register handles POST /users/register. Validation and duplicate-email
// failures come back as 400 with the rule's message; the password never
// appears in the response or the logs.
func (h *UserHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, token, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, registerOut{ID: u.ID, Name: u.Name, Email: u.Email, Token: token})
}

// Login handles POST /users/login. Unknown email and wrong password produce
// the same 400 body.
func (h *UserHandler) Login(c *gin.Context) {
	var in service.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// fail maps core errors to statuses: client mistakes are 400 with the exact
// message, everything else is an opaque 500.
func (h *UserHandler) fail(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.Fail(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrInvalidCredentials):
		resp.Fail(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("auth request failed", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "internal error")
	}
}
