package middleware

import (
	"crypto/rand"
	"log/slog"
)

type Middleware struct {
	csrfKey        []byte
	trustedOrigins []string
	logger         *slog.Logger
}

// NewMiddleware creates the middleware set with a fresh random CSRF key.
func NewMiddleware(logger *slog.Logger, trustedOrigins []string) *Middleware {
	csrfKey := make([]byte, 32)
	n, err := rand.Read(csrfKey)
	if err != nil {
		panic(err)
	}
	if n != 32 {
		panic("unable to read 32 bytes for CSRF key")
	}

	return &Middleware{
		csrfKey:        csrfKey,
		trustedOrigins: trustedOrigins,
		logger:         logger,
	}
}
