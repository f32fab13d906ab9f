// club/store/schedule_store.go
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

// ScheduleStore represents the MongoDB data store for club schedules.
type ScheduleStore struct {
	collection *mongo.Collection
	pageCap    int64
}

// NewScheduleStore creates a new ScheduleStore instance.
func NewScheduleStore(collection *mongo.Collection, pageCap int64) *ScheduleStore {
	return &ScheduleStore{
		collection: collection,
		pageCap:    pageCap,
	}
}

// CreateSchedule inserts a new schedule entry.
func (ss *ScheduleStore) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	now := time.Now()
	schedule.CreateTime = &now
	schedule.UpdateTime = &now

	_, err := ss.collection.InsertOne(ctx, schedule)
	if err != nil {
		return fmt.Errorf("failed to create schedule %s: %w", schedule.ID, err)
	}
	return nil
}

// GetSchedule retrieves a schedule entry by ID.
func (ss *ScheduleStore) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := ss.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err != nil {
		return nil, err // Return mongo.ErrNoDocuments if not found
	}
	return &schedule, nil
}

// UpdateSchedule overwrites a schedule's editable fields.
func (ss *ScheduleStore) UpdateSchedule(ctx context.Context, id string, schedule *models.Schedule) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"title":       schedule.Title,
		"type":        schedule.Type,
		"date":        schedule.Date,
		"location":    schedule.Location,
		"description": schedule.Description,
		"reminder":    schedule.Reminder,
		"updateTime":  now,
	}}
	res, err := ss.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update schedule %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("schedule %s not found for update", id)
	}
	return nil
}

// DeleteSchedule removes a schedule entry.
func (ss *ScheduleStore) DeleteSchedule(ctx context.Context, id string) error {
	res, err := ss.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("schedule %s not found for delete", id)
	}
	return nil
}

// ListSchedules returns every schedule entry ordered by date ascending.
func (ss *ScheduleStore) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	schedules, err := pagination.FetchAll[models.Schedule](ctx, ss.collection, nil, bson.D{{Key: "date", Value: 1}}, ss.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// ListBetween returns schedule entries with dates in [from, to], ordered by
// date ascending.
func (ss *ScheduleStore) ListBetween(ctx context.Context, from, to time.Time) ([]models.Schedule, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	schedules, err := pagination.FetchAll[models.Schedule](ctx, ss.collection, filter, bson.D{{Key: "date", Value: 1}}, ss.pageCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules between %v and %v: %w", from, to, err)
	}
	return schedules, nil
}
