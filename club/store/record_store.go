// club/store/record_store.go
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

// RecordStore represents the MongoDB data store for per-match performance
// records, covering both historical shapes of the collection.
type RecordStore struct {
	collection *mongo.Collection
	pageCap    int64
}

// NewRecordStore creates a new RecordStore instance.
func NewRecordStore(collection *mongo.Collection, pageCap int64) *RecordStore {
	return &RecordStore{
		collection: collection,
		pageCap:    pageCap,
	}
}

// AllRecords returns the entire collection, fetched in pages under the
// store's cap. Match history scans need the full set because map-shape
// records cannot be filtered by player server-side.
func (rs *RecordStore) AllRecords(ctx context.Context) ([]models.MatchRecord, error) {
	records, err := pagination.FetchAll[models.MatchRecord](ctx, rs.collection, nil, nil, rs.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all match records: %w", err)
	}
	return records, nil
}

// FindByMatchIDs fetches every record belonging to the given matches,
// chunking the membership filter to the page cap.
func (rs *RecordStore) FindByMatchIDs(ctx context.Context, matchIDs []string) ([]models.MatchRecord, error) {
	records, err := pagination.FindByField[models.MatchRecord](ctx, rs.collection, "matchId", matchIDs, rs.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records by match ids: %w", err)
	}
	return records, nil
}

// FindByMatch returns all records for one match.
func (rs *RecordStore) FindByMatch(ctx context.Context, matchID string) ([]models.MatchRecord, error) {
	cursor, err := rs.collection.Find(ctx, bson.M{"matchId": matchID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for match %s: %w", matchID, err)
	}
	defer cursor.Close(ctx)

	var records []models.MatchRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records for match %s: %w", matchID, err)
	}
	return records, nil
}

// ReplaceForMatch replaces a match's performance records wholesale: existing
// records for the match are deleted, then the new set inserted. The two
// steps are independent store calls with no atomicity between them.
func (rs *RecordStore) ReplaceForMatch(ctx context.Context, matchID string, records []models.MatchRecord) error {
	if _, err := rs.collection.DeleteMany(ctx, bson.M{"matchId": matchID}); err != nil {
		return fmt.Errorf("failed to clear records for match %s: %w", matchID, err)
	}
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(records))
	for i := range records {
		records[i].MatchID = matchID
		if records[i].ID == "" {
			records[i].ID = uuid.New().String()
		}
		records[i].CreateTime = &now
		docs = append(docs, records[i])
	}
	if _, err := rs.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert records for match %s: %w", matchID, err)
	}
	return nil
}

// DeleteByMatch removes every record belonging to a match. Used as the first
// phase of the match cascade delete.
func (rs *RecordStore) DeleteByMatch(ctx context.Context, matchID string) error {
	if _, err := rs.collection.DeleteMany(ctx, bson.M{"matchId": matchID}); err != nil {
		return fmt.Errorf("failed to delete records for match %s: %w", matchID, err)
	}
	return nil
}

// ApplyMigration sets the resolved foreign keys on a legacy record and
// removes the now-redundant text fields in the same update.
func (rs *RecordStore) ApplyMigration(ctx context.Context, recordID, playerID, matchID string) error {
	update := bson.M{
		"$set":   bson.M{"playerId": playerID, "matchId": matchID},
		"$unset": bson.M{"playerName": "", "opponent": ""},
	}
	res, err := rs.collection.UpdateOne(ctx, bson.M{"_id": recordID}, update)
	if err != nil {
		return fmt.Errorf("failed to migrate record %s: %w", recordID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
