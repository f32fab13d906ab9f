// club/session/session.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sundayfc/club-service/shared/models"
)

// ErrSessionNotFound is returned when no cached session exists for an openid.
var ErrSessionNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Session is the explicit per-request user context. It is loaded at login,
// cached until logout, and injected into each request by the auth
// middleware; nothing holds it in process-wide state.
type Session struct {
	OpenID string `json:"openid"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// FromUser builds a session from a stored user profile.
func FromUser(user *models.User) *Session {
	return &Session{
		OpenID: user.OpenID,
		Role:   user.Role,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
}

// IsAdmin reports whether the session belongs to the club administrator.
func (s *Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// Store caches session profiles in Redis with a TTL. Logout removes the
// entry; an expired or missing entry forces a fresh login.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a session store on top of the given Redis client.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb: rdb,
		ttl: ttl,
	}
}

// Save caches the session profile blob under the user's key.
func (st *Store) Save(ctx context.Context, sess *Session) error {
	blob, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session for %s: %w", sess.OpenID, err)
	}
	if err := st.rdb.Set(ctx, keyPrefix+sess.OpenID, blob, st.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session for %s: %w", sess.OpenID, err)
	}
	return nil
}

// Load retrieves the cached session for an openid.
func (st *Store) Load(ctx context.Context, openid string) (*Session, error) {
	blob, err := st.rdb.Get(ctx, keyPrefix+openid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session for %s: %w", openid, err)
	}
	var sess Session
	if err := json.Unmarshal(blob, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session for %s: %w", openid, err)
	}
	return &sess, nil
}

// Clear removes the cached session on logout.
func (st *Store) Clear(ctx context.Context, openid string) error {
	if err := st.rdb.Del(ctx, keyPrefix+openid).Err(); err != nil {
		return fmt.Errorf("failed to clear session for %s: %w", openid, err)
	}
	return nil
}

type contextKey struct{}

// NewContext returns a context carrying the session.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext extracts the session injected by the auth middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(contextKey{}).(*Session)
	return sess, ok
}
