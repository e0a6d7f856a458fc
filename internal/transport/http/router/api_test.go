package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-auth-api/internal/core/auth"
	"go-auth-api/internal/repo"
	"go-auth-api/internal/service"
	"go-auth-api/internal/transport/http/handler"
	"go-auth-api/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestEngine(t *testing.T, upstreamURL string) (*gin.Engine, *auth.JWTer) {
	t.Helper()
	jwter := &auth.JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "go-auth-api",
		Audience: "go-auth-api-clients",
		TTL:      time.Hour,
	}
	users := repo.NewMemoryUserRepo()
	authSvc := service.NewAuthService(users, &utils.BcryptHasher{Cost: bcrypt.MinCost}, jwter, service.NewRegisterValidator())
	extSvc := service.NewExternalService(upstreamURL, 5*time.Second, nil, 0)

	log := zap.NewNop()
	userH := handler.NewUserHandler(authSvc, log)
	extH := handler.NewExternalHandler(extSvc, log)
	return NewAPIEngine(log, userH, extH, jwter), jwter
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginFlow(t *testing.T) {
	r, _ := newTestEngine(t, "http://127.0.0.1:1")

	// register
	w := doJSON(r, http.MethodPost, "/users/register",
		`{"name":"Daniel","email":"d@example.com","password":"Password123!"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reg struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, "Daniel", reg.Name)
	assert.Equal(t, "d@example.com", reg.Email)
	assert.NotEmpty(t, reg.Token)
	assert.NotContains(t, w.Body.String(), "Password123!")

	// login with the same credentials
	w = doJSON(r, http.MethodPost, "/users/login",
		`{"email":"d@example.com","password":"Password123!"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)

	// login with a wrong password
	w = doJSON(r, http.MethodPost, "/users/login",
		`{"email":"d@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Correo o contraseña incorrectos."}`, w.Body.String())

	// login with an unknown email: identical body
	w = doJSON(r, http.MethodPost, "/users/login",
		`{"email":"nobody@example.com","password":"Password123!"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Correo o contraseña incorrectos."}`, w.Body.String())
}

func TestRegisterRejectsBadInput(t *testing.T) {
	r, _ := newTestEngine(t, "http://127.0.0.1:1")

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"weak password", `{"name":"Daniel","email":"d@example.com","password":"12345678"}`, service.MsgPasswordUpper},
		{"bad email", `{"name":"Daniel","email":"not-an-email","password":"Password123!"}`, service.MsgEmailFormat},
		{"empty name", `{"name":"","email":"d@example.com","password":"Password123!"}`, service.MsgNameRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/users/register", tt.body, "")
			require.Equal(t, http.StatusBadRequest, w.Code)
			var out struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
			assert.Equal(t, tt.wantMsg, out.Error)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/users/register", `{`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestEngine(t, "http://127.0.0.1:1")
	body := `{"name":"Daniel","email":"d@example.com","password":"Password123!"}`

	w := doJSON(r, http.MethodPost, "/users/register", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/users/register", body, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"El correo ya se encuentra registrado."}`, w.Body.String())
}

func TestExternalProxyRequiresToken(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1}]`))
	}))
	defer upstream.Close()

	r, jwter := newTestEngine(t, upstream.URL)

	// no token
	w := doJSON(r, http.MethodGet, "/external/posts", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"missing token"}`, w.Body.String())

	// garbage token
	w = doJSON(r, http.MethodGet, "/external/posts", "", "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid token"}`, w.Body.String())

	// expired token
	expired := &auth.JWTer{Secret: jwter.Secret, Issuer: jwter.Issuer, Audience: jwter.Audience, TTL: -time.Minute}
	tok, err := expired.Issue("uid-1", "d@example.com", "Daniel")
	require.NoError(t, err)
	w = doJSON(r, http.MethodGet, "/external/posts", "", tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid token reaches the upstream
	tok, err = jwter.Issue("uid-1", "d@example.com", "Daniel")
	require.NoError(t, err)
	w = doJSON(r, http.MethodGet, "/external/posts", "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1}]`, w.Body.String())
}

func TestExternalProxyPostAndUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":101}`))
			return
		}
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer upstream.Close()

	r, jwter := newTestEngine(t, upstream.URL)
	tok, err := jwter.Issue("uid-1", "d@example.com", "Daniel")
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/external/posts", `{"title":"hola"}`, tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":101}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/external/posts", "", tok)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"upstream unavailable"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	r, _ := newTestEngine(t, "http://127.0.0.1:1")
	w := doJSON(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
