package rest

import (
	"context"
	"net/http"

	"traveldesk-admin/internal/infrastructure/identity"
)

type contextKey string

const principalKey contextKey = "principal"

// authenticate verifies the bearer token and attaches the principal to the
// request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := h.verifier.Verify(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			h.logger.Warn("Rejected request", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalFrom reads the authenticated principal off the request
func principalFrom(r *http.Request) *identity.Principal {
	principal, _ := r.Context().Value(principalKey).(*identity.Principal)
	return principal
}
