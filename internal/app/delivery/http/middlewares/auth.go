package middlewares

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate turns a bearer token into the session stored in redis and
// hangs it on the request context. Requests without a valid session never
// reach the handler.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.BearerTokenPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
		session, err := m.SessionService.ParseSessionData(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route to the given roles. It must run after
// Authenticate.
func (m *Middlewares) RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
			if !ok || session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
				return
			}
			if _, ok := allowed[session.Role]; !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext is the handler-side accessor for what Authenticate
// stored.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return session, nil
}
