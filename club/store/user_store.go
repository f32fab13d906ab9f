// club/store/user_store.go
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sundayfc/club-service/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore represents the MongoDB data store for user accounts, keyed by
// the identity provider's openid.
type UserStore struct {
	collection *mongo.Collection
}

// NewUserStore creates a new UserStore instance.
func NewUserStore(collection *mongo.Collection) *UserStore {
	return &UserStore{
		collection: collection,
	}
}

// GetUser retrieves a user by openid.
func (us *UserStore) GetUser(ctx context.Context, openid string) (*models.User, error) {
	var user models.User
	err := us.collection.FindOne(ctx, bson.M{"_id": openid}).Decode(&user)
	if err != nil {
		return nil, err // Return mongo.ErrNoDocuments if not found
	}
	return &user, nil
}

// CountUsers returns the total number of user documents. The first-user
// admin rule depends on this being checked at creation time.
func (us *UserStore) CountUsers(ctx context.Context) (int64, error) {
	count, err := us.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CreateUser inserts a new user document.
func (us *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := us.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user %s already exists", user.OpenID)
		}
		return fmt.Errorf("failed to create user %s: %w", user.OpenID, err)
	}
	return nil
}

// UpdateProfile updates a user's editable profile fields.
func (us *UserStore) UpdateProfile(ctx context.Context, openid, name, avatar, bio string) error {
	update := bson.M{"$set": bson.M{"name": name, "avatar": avatar, "bio": bio}}
	res, err := us.collection.UpdateOne(ctx, bson.M{"_id": openid}, update)
	if err != nil {
		return fmt.Errorf("failed to update profile for user %s: %w", openid, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found for profile update", openid)
	}
	return nil
}

// UpdateLastLogin bumps a user's last login timestamp.
func (us *UserStore) UpdateLastLogin(ctx context.Context, openid string) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{"lastLoginTime": &now}}
	res, err := us.collection.UpdateOne(ctx, bson.M{"_id": openid}, update)
	if err != nil {
		return fmt.Errorf("failed to update last login for user %s: %w", openid, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found for last login update", openid)
	}
	return nil
}
