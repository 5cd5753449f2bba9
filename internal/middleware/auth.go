package middleware

import (
	"net/http"
	"strings"

	"github.com/templui/smartgoals/internal/ctxkeys"
	"github.com/templui/smartgoals/internal/service"
)

// AuthMiddleware checks for a session JWT and adds the user to context if valid.
// The token is read from the auth cookie, or from an Authorization: Bearer header.
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, fromCookie := sessionToken(r)
			if token == "" {
				// No token, continue without auth
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.UserFromToken(token)
			if err != nil {
				// Invalid token, clear cookie and continue
				if fromCookie {
					authService.ClearJWTCookie(w)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(service.AuthCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token), false
	}

	return "", false
}

// RequireAuth rejects requests without a signed-in user
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	}
}
