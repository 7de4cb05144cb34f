// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dwellfix/dwellfix/internal/auth"
)

type profileContextKey string

// ProfileIDKey carries the verified caller identity through the request
// context.
const ProfileIDKey = profileContextKey("dwellfix_profile_id")

// ProfileID returns the caller's profile id placed in the context by
// RequireAuth, or "" when the request was not authenticated.
func ProfileID(ctx context.Context) string {
	id, _ := ctx.Value(ProfileIDKey).(string)
	return id
}

// RequireAuth validates the bearer token against the identity provider's
// verifier and injects the token subject as the caller's profile id. Missing
// or invalid tokens short-circuit before any handler runs.
func RequireAuth(verifier *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := verifier.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ProfileIDKey, claims.ProfileID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]interface{}{"ok": false, "error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
