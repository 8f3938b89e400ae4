package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/coursepay/coursepay/pkg/utils"
)

type ContextKey string

const (
	OperatorIDKey    ContextKey = "operatorID"
	OperatorLoginKey ContextKey = "operatorLogin"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), OperatorIDKey, claims.OperatorID)
		ctx = context.WithValue(ctx, OperatorLoginKey, claims.Login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
