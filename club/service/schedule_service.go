// club/service/schedule_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sundayfc/club-service/club/store"
	"github.com/sundayfc/club-service/shared/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleService encapsulates the business logic for club schedules.
type ScheduleService struct {
	scheduleStore *store.ScheduleStore
}

// NewScheduleService creates a new ScheduleService instance.
func NewScheduleService(ss *store.ScheduleStore) *ScheduleService {
	return &ScheduleService{
		scheduleStore: ss,
	}
}

func validateSchedule(schedule *models.Schedule) error {
	if strings.TrimSpace(schedule.Title) == "" {
		return fmt.Errorf("schedule title is required")
	}
	if schedule.Date.IsZero() {
		return fmt.Errorf("schedule date is required")
	}
	return nil
}

// CreateSchedule validates and stores a new schedule entry.
func (ss *ScheduleService) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	if err := validateSchedule(schedule); err != nil {
		return err
	}
	schedule.Title = strings.TrimSpace(schedule.Title)
	if err := ss.scheduleStore.CreateSchedule(ctx, schedule); err != nil {
		return fmt.Errorf("service failed to create schedule: %w", err)
	}
	return nil
}

// GetSchedule retrieves a schedule entry.
func (ss *ScheduleService) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	schedule, err := ss.scheduleStore.GetSchedule(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("service failed to get schedule: %w", err)
	}
	return schedule, nil
}

// UpdateSchedule validates and overwrites a schedule entry.
func (ss *ScheduleService) UpdateSchedule(ctx context.Context, id string, schedule *models.Schedule) error {
	if err := validateSchedule(schedule); err != nil {
		return err
	}
	schedule.Title = strings.TrimSpace(schedule.Title)
	if err := ss.scheduleStore.UpdateSchedule(ctx, id, schedule); err != nil {
		if err.Error() == fmt.Sprintf("schedule %s not found for update", id) {
			return ErrScheduleNotFound
		}
		return fmt.Errorf("service failed to update schedule: %w", err)
	}
	return nil
}

// DeleteSchedule removes a schedule entry.
func (ss *ScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	if err := ss.scheduleStore.DeleteSchedule(ctx, id); err != nil {
		if err.Error() == fmt.Sprintf("schedule %s not found for delete", id) {
			return ErrScheduleNotFound
		}
		return fmt.Errorf("service failed to delete schedule: %w", err)
	}
	return nil
}

// ListSchedules returns all schedule entries ordered by date.
func (ss *ScheduleService) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	schedules, err := ss.scheduleStore.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("service failed to list schedules: %w", err)
	}
	return schedules, nil
}

// UpcomingSchedules returns entries dated from now onward, soonest first.
func (ss *ScheduleService) UpcomingSchedules(ctx context.Context) ([]models.Schedule, error) {
	now := time.Now()
	schedules, err := ss.scheduleStore.ListBetween(ctx, now, now.AddDate(1, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("service failed to list upcoming schedules: %w", err)
	}
	return schedules, nil
}
