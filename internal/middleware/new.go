package middleware

import (
	"life-admin/internal/auth"
	"life-admin/pkg/log"
)

// Middleware bundles the gin middlewares shared by both servers.
// verifier may be nil on servers without bearer-token routes.
type Middleware struct {
	l        log.Logger
	verifier auth.UseCase
	cors     CORSConfig
}

func New(l log.Logger, verifier auth.UseCase, cors CORSConfig) Middleware {
	return Middleware{
		l:        l,
		verifier: verifier,
		cors:     cors.withDefaults(),
	}
}
