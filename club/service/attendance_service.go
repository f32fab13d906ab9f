// club/service/attendance_service.go
package service

import (
	"context"
	"fmt"

	"github.com/sundayfc/club-service/club/store"
	"github.com/sundayfc/club-service/shared/models"
)

// AttendanceService encapsulates the business logic for attendance rows.
type AttendanceService struct {
	attendanceStore *store.AttendanceStore
	playerStore     *store.PlayerStore
}

// NewAttendanceService creates a new AttendanceService instance.
func NewAttendanceService(as *store.AttendanceStore, ps *store.PlayerStore) *AttendanceService {
	return &AttendanceService{
		attendanceStore: as,
		playerStore:     ps,
	}
}

func validAttendanceStatus(status string) bool {
	switch status {
	case models.StatusPresent, models.StatusLeave, models.StatusAbsent:
		return true
	}
	return false
}

func validEventType(eventType string) bool {
	switch eventType {
	case models.EventTraining, models.EventMatch, models.EventMeeting:
		return true
	}
	return false
}

// RecordAttendance validates and stores one player's attendance at one
// event instance.
func (as *AttendanceService) RecordAttendance(ctx context.Context, row *models.Attendance) error {
	if row.PlayerID == "" {
		return fmt.Errorf("playerId is required")
	}
	if row.EventDate.IsZero() {
		return fmt.Errorf("eventDate is required")
	}
	if !validEventType(row.EventType) {
		return fmt.Errorf("invalid event type %q", row.EventType)
	}
	if !validAttendanceStatus(row.Status) {
		return fmt.Errorf("invalid attendance status %q", row.Status)
	}
	if _, err := as.playerStore.GetPlayer(ctx, row.PlayerID); err != nil {
		return ErrPlayerNotFound
	}
	if err := as.attendanceStore.CreateAttendance(ctx, row); err != nil {
		return fmt.Errorf("service failed to record attendance: %w", err)
	}
	return nil
}

// DeleteAttendance removes an attendance row.
func (as *AttendanceService) DeleteAttendance(ctx context.Context, id string) error {
	if err := as.attendanceStore.DeleteAttendance(ctx, id); err != nil {
		if err.Error() == fmt.Sprintf("attendance row %s not found for delete", id) {
			return fmt.Errorf("attendance row not found")
		}
		return fmt.Errorf("service failed to delete attendance: %w", err)
	}
	return nil
}

// PlayerAttendanceRows lists one player's attendance rows, newest first.
func (as *AttendanceService) PlayerAttendanceRows(ctx context.Context, playerID string) ([]models.Attendance, error) {
	rows, err := as.attendanceStore.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("service failed to list attendance: %w", err)
	}
	return rows, nil
}
