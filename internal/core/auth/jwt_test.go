package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer() *JWTer {
	return &JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "go-auth-api",
		Audience: "go-auth-api-clients",
		TTL:      time.Hour,
	}
}

func TestJWTer_IssueAndParse(t *testing.T) {
	j := newTestJWTer()

	tok, err := j.Issue("uid-1", "d@example.com", "Daniel")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.Subject)
	assert.Equal(t, "d@example.com", claims.Email)
	assert.Equal(t, "Daniel", claims.Name)
	assert.Equal(t, "go-auth-api", claims.Issuer)
	require.Len(t, claims.Audience, 1)
	assert.Equal(t, "go-auth-api-clients", claims.Audience[0])
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTer_RejectsExpired(t *testing.T) {
	j := newTestJWTer()
	j.TTL = -time.Minute // already expired; no leeway is granted

	tok, err := j.Issue("uid-1", "d@example.com", "Daniel")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestJWTer_RejectsWrongSecret(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("uid-1", "d@example.com", "Daniel")
	require.NoError(t, err)

	other := newTestJWTer()
	other.Secret = []byte("another-secret")
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestJWTer_RejectsIssuerMismatch(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("uid-1", "d@example.com", "Daniel")
	require.NoError(t, err)

	other := newTestJWTer()
	other.Issuer = "someone-else"
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestJWTer_RejectsAudienceMismatch(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("uid-1", "d@example.com", "Daniel")
	require.NoError(t, err)

	other := newTestJWTer()
	other.Audience = "other-clients"
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestJWTer_RejectsTampered(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("uid-1", "d@example.com", "Daniel")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = j.Parse(tampered)
	assert.Error(t, err)
}

func TestJWTer_RejectsGarbage(t *testing.T) {
	j := newTestJWTer()
	_, err := j.Parse("not-a-token")
	assert.Error(t, err)
}
