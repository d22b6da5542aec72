package middleware

import (
	"context"
	"net/http"

	"galaxy_api/internal/common"
	"galaxy_api/internal/common/security"
	"galaxy_api/internal/domain/model"
)

type contextKey string

const userCtxKey contextKey = "authenticatedUser"

// RequireRole gates a route behind the role hierarchy. The chain is:
// parse the Authorization header, verify the token, then ask the policy
// engine to re-read the user and compare the CURRENT persisted role against
// required. Any failure stops the request before the handler (and thus
// before any store mutation) runs.
func RequireRole(policy *security.Policy, required model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := security.ParseAuthorizationHeader(r.Header.Get("Authorization"))
			if err != nil {
				common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
				return
			}

			user, err := policy.Authorize(r.Context(), claims, required)
			if err != nil {
				common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user resolved during authorization, saving
// handlers a second store round-trip.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*model.User)
	return user, ok
}
