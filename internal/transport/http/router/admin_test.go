package router

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-auth-api/internal/core/auth"
	"go-auth-api/internal/domain"
	"go-auth-api/internal/repo"
	"go-auth-api/internal/transport/http/handler"
	"go-auth-api/pkg/utils"
)

func newTestAdminEngine(t *testing.T) (*gin.Engine, *auth.JWTer, *repo.MemoryUserRepo) {
	t.Helper()
	jwter := &auth.JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "go-auth-api",
		Audience: "go-auth-api-clients",
		TTL:      time.Hour,
	}
	users := repo.NewMemoryUserRepo()
	adminH := handler.NewAdminHandler(users, zap.NewNop())
	return NewAdminEngine(zap.NewNop(), adminH, jwter), jwter, users
}

func TestAdminListUsers(t *testing.T) {
	r, jwter, users := newTestAdminEngine(t)

	for _, u := range []domain.User{
		{ID: utils.NewID(), Email: "a@example.com", Name: "Ana", PasswordHash: "x"},
		{ID: utils.NewID(), Email: "b@example.com", Name: "Bruno", PasswordHash: "x"},
	} {
		require.NoError(t, users.Create(context.Background(), &u))
	}

	// without a token
	w := doJSON(r, http.MethodGet, "/admin/v1/users", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := jwter.Issue("uid-1", "ops@example.com", "Ops")
	require.NoError(t, err)

	w = doJSON(r, http.MethodGet, "/admin/v1/users", "", tok)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Total int64 `json:"total"`
		Items []struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.EqualValues(t, 2, out.Total)
	assert.Len(t, out.Items, 2)

	// filtered
	w = doJSON(r, http.MethodGet, "/admin/v1/users?q=Bruno", "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.EqualValues(t, 1, out.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "b@example.com", out.Items[0].Email)
}
