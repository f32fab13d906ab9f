// club/api/middleware.go
package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/sundayfc/club-service/club/auth"
	"github.com/sundayfc/club-service/club/session"
	"github.com/sundayfc/club-service/shared/api"
)

// Authenticator validates bearer tokens and attaches the cached session to
// the request context. A valid token whose session has expired from the
// cache is rejected, forcing a fresh login.
type Authenticator struct {
	sessionStore *session.Store
	jwtSecret    string
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(ss *session.Store, jwtSecret string) *Authenticator {
	return &Authenticator{
		sessionStore: ss,
		jwtSecret:    jwtSecret,
	}
}

// Middleware wraps a handler with bearer-token authentication.
func (a *Authenticator) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			api.WriteUnauthorized(w, "Missing bearer token")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.ValidateToken(tokenString, a.jwtSecret)
		if err != nil {
			api.WriteUnauthorized(w, "Invalid or expired token")
			return
		}

		sess, err := a.sessionStore.Load(r.Context(), claims.OpenID)
		if err != nil {
			if err == session.ErrSessionNotFound {
				api.WriteUnauthorized(w, "Session expired, please log in again")
				return
			}
			log.Printf("ERROR: Failed to load session for %s: %v", claims.OpenID, err)
			api.WriteInternalServerError(w, "Failed to load session")
			return
		}

		next(w, r.WithContext(session.NewContext(r.Context(), sess)))
	}
}

// RequireAdmin wraps a handler so only the club administrator may call it.
// It must run inside Middleware, which injects the session.
func (a *Authenticator) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.Middleware(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			api.WriteUnauthorized(w, "Missing session")
			return
		}
		if !sess.IsAdmin() {
			api.WriteForbidden(w, "Admin role required")
			return
		}
		next(w, r)
	})
}
