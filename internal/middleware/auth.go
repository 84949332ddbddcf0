package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/akarpov/sudoku-server/internal/config"
)

type CtxKey int

const (
	CtxUserClaims CtxKey = iota
)

// Auth stashes validated user claims in the request context; requests
// without a valid cookie pair pass through anonymously.
func Auth(log *slog.Logger, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParseUserClaims(r)
			if err != nil {
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxUserClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
