package auth

import (
	"net/http"
	"strings"

	"github.com/ghuser/blooprint/pkg/httpx"
	"github.com/ghuser/blooprint/pkg/logger"
)

const bearerPrefix = "Bearer "

// RequireAuth is a chi middleware that enforces bearer-token authentication.
// It reads the Authorization header, verifies the token against the
// TokenVerifier, and injects the resolved user ID into the request context.
// Returns 401 Unauthorized if the token is missing, unknown, or expired.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireAuth(tokens TokenVerifier, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			userID, err := tokens.Verify(r.Context(), strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				log.WarnContext(r.Context(), "bearer token rejected", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
