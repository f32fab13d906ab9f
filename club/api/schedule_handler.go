// club/api/schedule_handler.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sundayfc/club-service/club/service"
	"github.com/sundayfc/club-service/shared/api"
	"github.com/sundayfc/club-service/shared/models"
)

// CreateScheduleHandler handles requests to create a schedule entry.
// POST /schedules
func (ch *ClubAPIHandlers) CreateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var schedule models.Schedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.ScheduleService.CreateSchedule(ctx, &schedule); err != nil {
		switch err.Error() {
		case "schedule title is required", "schedule date is required":
			api.WriteBadRequest(w, err.Error())
		default:
			log.Printf("ERROR: Failed to create schedule: %v", err)
			api.WriteInternalServerError(w, "Failed to create schedule")
		}
		return
	}

	api.WriteJSON(w, http.StatusCreated, schedule)
	log.Printf("INFO: Schedule %q (%s) created.", schedule.Title, schedule.ID)
}

// GetScheduleHandler handles requests to retrieve a schedule entry by ID.
// GET /schedules/{id}
func (ch *ClubAPIHandlers) GetScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Schedule ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	schedule, err := ch.ScheduleService.GetSchedule(ctx, id)
	if err != nil {
		switch err {
		case service.ErrScheduleNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Schedule %s not found", id))
		default:
			log.Printf("ERROR: Failed to get schedule %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to retrieve schedule")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, schedule)
}

// UpdateScheduleHandler handles requests to overwrite a schedule entry.
// PUT /schedules/{id}
func (ch *ClubAPIHandlers) UpdateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Schedule ID is required")
		return
	}

	var schedule models.Schedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.ScheduleService.UpdateSchedule(ctx, id, &schedule); err != nil {
		switch err {
		case service.ErrScheduleNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Schedule %s not found", id))
		default:
			switch err.Error() {
			case "schedule title is required", "schedule date is required":
				api.WriteBadRequest(w, err.Error())
				return
			}
			log.Printf("ERROR: Failed to update schedule %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to update schedule")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Schedule %s updated", id)})
}

// DeleteScheduleHandler handles requests to remove a schedule entry.
// DELETE /schedules/{id}
func (ch *ClubAPIHandlers) DeleteScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Schedule ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.ScheduleService.DeleteSchedule(ctx, id); err != nil {
		switch err {
		case service.ErrScheduleNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Schedule %s not found", id))
		default:
			log.Printf("ERROR: Failed to delete schedule %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to delete schedule")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Schedule %s deleted", id)})
}

// ListSchedulesHandler handles requests for all schedule entries by date.
// GET /schedules
func (ch *ClubAPIHandlers) ListSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	schedules, err := ch.ScheduleService.ListSchedules(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to list schedules: %v", err)
		api.WriteInternalServerError(w, "Failed to list schedules")
		return
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}

	api.WriteJSON(w, http.StatusOK, schedules)
}

// UpcomingSchedulesHandler handles requests for future schedule entries,
// soonest first.
// GET /schedules/upcoming
func (ch *ClubAPIHandlers) UpcomingSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	schedules, err := ch.ScheduleService.UpcomingSchedules(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to list upcoming schedules: %v", err)
		api.WriteInternalServerError(w, "Failed to list upcoming schedules")
		return
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}

	api.WriteJSON(w, http.StatusOK, schedules)
}

// RecordAttendanceHandler handles requests to record one player's attendance
// at one event.
// POST /attendance
func (ch *ClubAPIHandlers) RecordAttendanceHandler(w http.ResponseWriter, r *http.Request) {
	var row models.Attendance
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.AttendanceService.RecordAttendance(ctx, &row); err != nil {
		switch err {
		case service.ErrPlayerNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Player %s not found", row.PlayerID))
		default:
			if isAttendanceValidationError(err) {
				api.WriteBadRequest(w, err.Error())
				return
			}
			log.Printf("ERROR: Failed to record attendance: %v", err)
			api.WriteInternalServerError(w, "Failed to record attendance")
		}
		return
	}

	api.WriteJSON(w, http.StatusCreated, row)
}

// DeleteAttendanceHandler handles requests to remove an attendance row.
// DELETE /attendance/{id}
func (ch *ClubAPIHandlers) DeleteAttendanceHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Attendance ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.AttendanceService.DeleteAttendance(ctx, id); err != nil {
		if err.Error() == "attendance row not found" {
			api.WriteNotFound(w, fmt.Sprintf("Attendance row %s not found", id))
			return
		}
		log.Printf("ERROR: Failed to delete attendance %s: %v", id, err)
		api.WriteInternalServerError(w, "Failed to delete attendance")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Attendance row %s deleted", id)})
}

func isAttendanceValidationError(err error) bool {
	msg := err.Error()
	return msg == "playerId is required" ||
		msg == "eventDate is required" ||
		strings.HasPrefix(msg, "invalid event type") ||
		strings.HasPrefix(msg, "invalid attendance status")
}
