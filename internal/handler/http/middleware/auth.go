package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/skellio/hr-backend-go/internal/domain/auth"
	"github.com/skellio/hr-backend-go/internal/handler/http/response"
)

type contextKey string

const (
	// CompanyIDKey carries the authenticated company id through the
	// request context.
	CompanyIDKey contextKey = "company_id"
	// UserIDKey carries the authenticated user id.
	UserIDKey contextKey = "user_id"
)

// AuthRequired validates the access token and stashes the company and
// user ids on the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := r.Context()
			if companyID, ok := claims["company_id"].(string); ok {
				ctx = context.WithValue(ctx, CompanyIDKey, companyID)
			}
			if userID, ok := claims["user_id"].(string); ok {
				ctx = context.WithValue(ctx, UserIDKey, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// CompanyID returns the authenticated company id from the context.
func CompanyID(ctx context.Context) string {
	id, _ := ctx.Value(CompanyIDKey).(string)
	return id
}

// UserID returns the authenticated user id from the context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}
