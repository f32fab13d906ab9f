// club/store/match_store.go
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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Scope narrows which matches participate in an aggregation: a season label,
// a date range, or neither ("all" mode).
type Scope struct {
	Season string
	From   time.Time
	To     time.Time
}

// IsAll reports whether the scope places no restriction on matches.
func (s Scope) IsAll() bool {
	return s.Season == "" && s.From.IsZero() && s.To.IsZero()
}

func (s Scope) filter() bson.M {
	filter := bson.M{}
	if s.Season != "" {
		filter["season"] = s.Season
	}
	dateRange := bson.M{}
	if !s.From.IsZero() {
		dateRange["$gte"] = s.From
	}
	if !s.To.IsZero() {
		dateRange["$lte"] = s.To
	}
	if len(dateRange) > 0 {
		filter["matchDate"] = dateRange
	}
	return filter
}

// MatchStore represents the MongoDB data store for matches.
type MatchStore struct {
	collection *mongo.Collection
	pageCap    int64
}

// NewMatchStore creates a new MatchStore instance.
func NewMatchStore(collection *mongo.Collection, pageCap int64) *MatchStore {
	return &MatchStore{
		collection: collection,
		pageCap:    pageCap,
	}
}

// CreateMatch inserts a new match document.
func (ms *MatchStore) CreateMatch(ctx context.Context, match *models.Match) error {
	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	now := time.Now()
	match.CreateTime = &now
	match.UpdateTime = &now

	_, err := ms.collection.InsertOne(ctx, match)
	if err != nil {
		return fmt.Errorf("failed to create match %s: %w", match.ID, err)
	}
	return nil
}

// GetMatch retrieves a match by ID.
func (ms *MatchStore) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	var match models.Match
	err := ms.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&match)
	if err != nil {
		return nil, err // Return mongo.ErrNoDocuments if not found
	}
	return &match, nil
}

// UpdateMatch overwrites a match's editable fields.
func (ms *MatchStore) UpdateMatch(ctx context.Context, id string, match *models.Match) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"opponent":   match.Opponent,
		"matchDate":  match.MatchDate,
		"isHome":     match.IsHome,
		"location":   match.Location,
		"goals":      match.Goals,
		"conceded":   match.Conceded,
		"result":     match.Result,
		"season":     match.Season,
		"notes":      match.Notes,
		"updateTime": now,
	}}
	res, err := ms.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("match %s not found for update", id)
	}
	return nil
}

// DeleteMatch removes a match document. Associated performance records are
// deleted separately by the caller; there is no cross-document atomicity.
func (ms *MatchStore) DeleteMatch(ctx context.Context, id string) error {
	res, err := ms.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("match %s not found for delete", id)
	}
	return nil
}

// ListMatches returns every match in scope, newest first, fetched in pages
// under the store's cap.
func (ms *MatchStore) ListMatches(ctx context.Context, scope Scope) ([]models.Match, error) {
	matches, err := pagination.FetchAll[models.Match](ctx, ms.collection, scope.filter(), bson.D{{Key: "matchDate", Value: -1}}, ms.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// FindMatchesByIDs batch-fetches the referenced matches, chunking the ID
// membership filter to the page cap.
func (ms *MatchStore) FindMatchesByIDs(ctx context.Context, ids []string) ([]models.Match, error) {
	matches, err := pagination.FindByIDs[models.Match](ctx, ms.collection, ids, ms.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches by ids: %w", err)
	}
	return matches, nil
}

// LatestMatch returns the most recent match by date, or mongo.ErrNoDocuments
// when the collection is empty.
func (ms *MatchStore) LatestMatch(ctx context.Context) (*models.Match, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "matchDate", Value: -1}})
	var match models.Match
	err := ms.collection.FindOne(ctx, bson.M{}, opts).Decode(&match)
	if err != nil {
		return nil, err
	}
	return &match, nil
}
