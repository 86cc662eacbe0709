package middleware

import (
	"net/http"
	"strings"

	"premiumshop-be/internal/user"
	"premiumshop-be/internal/utils"
)

// Auth resolves the Bearer token into user identity on the request
// context. Requests without a valid token pass through anonymous; each
// service decides whether it needs a signed-in caller.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
