// club/store/attendance_store.go
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

// AttendanceStore represents the MongoDB data store for attendance rows.
type AttendanceStore struct {
	collection *mongo.Collection
	pageCap    int64
}

// NewAttendanceStore creates a new AttendanceStore instance.
func NewAttendanceStore(collection *mongo.Collection, pageCap int64) *AttendanceStore {
	return &AttendanceStore{
		collection: collection,
		pageCap:    pageCap,
	}
}

// CreateAttendance inserts a new attendance row.
func (as *AttendanceStore) CreateAttendance(ctx context.Context, row *models.Attendance) error {
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	now := time.Now()
	row.CreateTime = &now

	_, err := as.collection.InsertOne(ctx, row)
	if err != nil {
		return fmt.Errorf("failed to create attendance row %s: %w", row.ID, err)
	}
	return nil
}

// DeleteAttendance removes an attendance row.
func (as *AttendanceStore) DeleteAttendance(ctx context.Context, id string) error {
	res, err := as.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete attendance row %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("attendance row %s not found for delete", id)
	}
	return nil
}

// ListByPlayer returns every attendance row for one player.
func (as *AttendanceStore) ListByPlayer(ctx context.Context, playerID string) ([]models.Attendance, error) {
	rows, err := pagination.FetchAll[models.Attendance](ctx, as.collection, bson.M{"playerId": playerID}, bson.D{{Key: "eventDate", Value: -1}}, as.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for player %s: %w", playerID, err)
	}
	return rows, nil
}

// ListAll returns every attendance row, fetched in pages under the store's
// cap.
func (as *AttendanceStore) ListAll(ctx context.Context) ([]models.Attendance, error) {
	rows, err := pagination.FetchAll[models.Attendance](ctx, as.collection, nil, nil, as.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance rows: %w", err)
	}
	return rows, nil
}

// ListInRange returns every attendance row whose event date falls within
// [from, to].
func (as *AttendanceStore) ListInRange(ctx context.Context, from, to time.Time) ([]models.Attendance, error) {
	filter := bson.M{"eventDate": bson.M{"$gte": from, "$lte": to}}
	rows, err := pagination.FetchAll[models.Attendance](ctx, as.collection, filter, nil, as.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance in range: %w", err)
	}
	return rows, nil
}
