// club/service/user_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sundayfc/club-service/club/session"
	"github.com/sundayfc/club-service/club/store"
	"github.com/sundayfc/club-service/shared/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserService encapsulates login/logout and user profile logic.
type UserService struct {
	userStore    *store.UserStore
	sessionStore *session.Store
}

// NewUserService creates a new UserService instance.
func NewUserService(us *store.UserStore, ss *session.Store) *UserService {
	return &UserService{
		userStore:    us,
		sessionStore: ss,
	}
}

// Login resolves the identity provider's openid to a user, creating the
// account on first sight. The very first user ever created becomes the
// admin; everyone after that is a regular user. The resulting session is
// cached until logout.
func (us *UserService) Login(ctx context.Context, openid, name, avatar string) (*models.User, bool, error) {
	user, err := us.userStore.GetUser(ctx, openid)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, false, fmt.Errorf("service failed to look up user: %w", err)
	}

	isNew := false
	if err == mongo.ErrNoDocuments {
		count, err := us.userStore.CountUsers(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("service failed to count users: %w", err)
		}
		role := models.RoleUser
		if count == 0 {
			role = models.RoleAdmin
			log.Printf("INFO: First user %s granted admin role.", openid)
		}

		now := time.Now()
		user = &models.User{
			OpenID:        openid,
			Role:          role,
			Name:          name,
			Avatar:        avatar,
			CreateTime:    &now,
			LastLoginTime: &now,
		}
		if err := us.userStore.CreateUser(ctx, user); err != nil {
			return nil, false, fmt.Errorf("service failed to create user: %w", err)
		}
		isNew = true
	} else {
		if err := us.userStore.UpdateLastLogin(ctx, openid); err != nil {
			log.Printf("WARN: Failed to update last login for user %s: %v", openid, err)
		}
	}

	if err := us.sessionStore.Save(ctx, session.FromUser(user)); err != nil {
		return nil, false, fmt.Errorf("service failed to cache session: %w", err)
	}
	return user, isNew, nil
}

// Logout clears the cached session.
func (us *UserService) Logout(ctx context.Context, openid string) error {
	if err := us.sessionStore.Clear(ctx, openid); err != nil {
		return fmt.Errorf("service failed to clear session: %w", err)
	}
	return nil
}

// GetUser retrieves a user profile.
func (us *UserService) GetUser(ctx context.Context, openid string) (*models.User, error) {
	user, err := us.userStore.GetUser(ctx, openid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("service failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile updates a user's editable profile fields and refreshes the
// cached session so the change is visible immediately.
func (us *UserService) UpdateProfile(ctx context.Context, openid, name, avatar, bio string) error {
	if err := us.userStore.UpdateProfile(ctx, openid, name, avatar, bio); err != nil {
		if err.Error() == fmt.Sprintf("user %s not found for profile update", openid) {
			return ErrUserNotFound
		}
		return fmt.Errorf("service failed to update profile: %w", err)
	}

	user, err := us.userStore.GetUser(ctx, openid)
	if err != nil {
		log.Printf("WARN: Failed to reload user %s after profile update: %v", openid, err)
		return nil
	}
	if err := us.sessionStore.Save(ctx, session.FromUser(user)); err != nil {
		log.Printf("WARN: Failed to refresh cached session for user %s: %v", openid, err)
	}
	return nil
}
