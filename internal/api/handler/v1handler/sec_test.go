package v1handler_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dhakseshr/tds-project1/internal/api/handler/v1handler"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, issuedAt, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "tester",
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func protected(t *testing.T, pubPEM string) http.Handler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func doAuth(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/sites", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestMiddleware_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	h := protected(t, pubPEM)

	now := time.Now()
	rec := doAuth(h, signJWTRS256(t, priv, now, now.Add(time.Hour)))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMiddleware_MissingToken(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	h := protected(t, pubPEM)

	rec := doAuth(h, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_InvalidSignature(t *testing.T) {
	// handler uses pub from key A, but token signed with key B
	_, pubPEM := genRSAKeys(t)
	h := protected(t, pubPEM)

	privOther, _ := genRSAKeys(t)
	now := time.Now()
	rec := doAuth(h, signJWTRS256(t, privOther, now, now.Add(time.Hour)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	h := protected(t, pubPEM)

	now := time.Now()
	rec := doAuth(h, signJWTRS256(t, priv, now.Add(-2*time.Hour), now.Add(-time.Hour)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_WrongAlgorithm(t *testing.T) {
	// create handler with RSA public key, but sign token with HS256
	_, pubPEM := genRSAKeys(t)
	h := protected(t, pubPEM)

	claims := jwt.RegisteredClaims{
		Subject:   "tester",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	rec := doAuth(h, signed)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_DisabledWithoutKey(t *testing.T) {
	h := protected(t, "")

	rec := doAuth(h, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}
