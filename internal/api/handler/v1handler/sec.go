package v1handler

import (
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/dhakseshr/tds-project1/internal/config"
	"github.com/dhakseshr/tds-project1/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// SecHandlerOptions configures bearer authentication on the v1 endpoints.
type SecHandlerOptions struct {
	// PublicKey is a PEM-encoded RSA public key. Empty disables authentication.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens. With no public key configured it
// passes every request through, which is the default for local development.
type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Middleware enforces bearer authentication when a key is configured.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	if s.key == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}

			return s.key, nil
		})
		if err != nil || !token.Valid {
			writeError(w, r, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token"))

			return
		}

		next.ServeHTTP(w, r)
	})
}
