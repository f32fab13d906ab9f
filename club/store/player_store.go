// club/store/player_store.go
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sundayfc/club-service/shared/models"
	"github.com/sundayfc/club-service/shared/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlayerStore represents the MongoDB data store for player profiles.
type PlayerStore struct {
	collection *mongo.Collection
	pageCap    int64
}

// NewPlayerStore creates a new PlayerStore instance.
func NewPlayerStore(collection *mongo.Collection, pageCap int64) *PlayerStore {
	return &PlayerStore{
		collection: collection,
		pageCap:    pageCap,
	}
}

// CreatePlayer inserts a new player document into the collection, assigning
// an ID when the caller did not provide one.
func (ps *PlayerStore) CreatePlayer(ctx context.Context, player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	now := time.Now()
	player.CreateTime = &now
	player.UpdatedAt = &now

	_, err := ps.collection.InsertOne(ctx, player)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("player %s already exists", player.ID)
		}
		return fmt.Errorf("failed to create player %s: %w", player.ID, err)
	}
	return nil
}

// GetPlayer retrieves a player by ID.
func (ps *PlayerStore) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	var player models.Player
	filter := bson.M{"_id": id}
	err := ps.collection.FindOne(ctx, filter).Decode(&player)
	if err != nil {
		return nil, err // Return mongo.ErrNoDocuments if not found
	}
	player.Normalize()
	return &player, nil
}

// UpdatePlayer overwrites a player's editable fields.
func (ps *PlayerStore) UpdatePlayer(ctx context.Context, id string, player *models.Player) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"name":      player.Name,
		"number":    player.Number,
		"position":  player.Position,
		"isActive":  player.IsActive,
		"ability":   player.Ability,
		"tags":      player.Tags,
		"phone":     player.Phone,
		"avatar":    player.Avatar,
		"joinDate":  player.JoinDate,
		"updatedAt": now,
	}}
	res, err := ps.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("player %s not found for update", id)
	}
	return nil
}

// DeletePlayer physically removes a player document. Soft deletion is not
// used; isActive only gates roster visibility.
func (ps *PlayerStore) DeletePlayer(ctx context.Context, id string) error {
	res, err := ps.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete player %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("player %s not found for delete", id)
	}
	return nil
}

// ListPlayers returns every player, fetched in pages under the store's cap.
// activeOnly restricts the roster to isActive players.
func (ps *PlayerStore) ListPlayers(ctx context.Context, activeOnly bool) ([]models.Player, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	players, err := pagination.FetchAll[models.Player](ctx, ps.collection, filter, bson.D{{Key: "number", Value: 1}}, ps.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	for i := range players {
		players[i].Normalize()
	}
	return players, nil
}

// FindPlayersByIDs batch-fetches the referenced players, chunking the ID
// membership filter to the page cap.
func (ps *PlayerStore) FindPlayersByIDs(ctx context.Context, ids []string) ([]models.Player, error) {
	players, err := pagination.FindByIDs[models.Player](ctx, ps.collection, ids, ps.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players by ids: %w", err)
	}
	for i := range players {
		players[i].Normalize()
	}
	return players, nil
}

// CountPlayers returns the total number of player documents.
func (ps *PlayerStore) CountPlayers(ctx context.Context) (int64, error) {
	count, err := ps.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}
