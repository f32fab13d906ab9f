// club/reminder/reminder.go
package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sundayfc/club-service/club/service"
)

// Reminder runs a daily job that announces the next day's schedule entries
// that have their reminder flag set.
type Reminder struct {
	s               gocron.Scheduler
	scheduleService *service.ScheduleService
	hour            int
}

// NewReminder creates the reminder scheduler. hour is the local hour of day
// (0-23) at which the daily scan fires.
func NewReminder(scheduleService *service.ScheduleService, hour int) (*Reminder, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Reminder{
		s:               s,
		scheduleService: scheduleService,
		hour:            hour,
	}, nil
}

// Start registers the daily job and begins scheduling.
func (r *Reminder) Start() error {
	_, err := r.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(r.hour), 0, 0))),
		gocron.NewTask(r.announceUpcoming),
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder job: %w", err)
	}

	r.s.Start()
	log.Printf("INFO: Schedule reminder job registered for %02d:00 daily.", r.hour)
	return nil
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (r *Reminder) Stop() error {
	return r.s.Shutdown()
}

func (r *Reminder) announceUpcoming() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schedules, err := r.scheduleService.UpcomingSchedules(ctx)
	if err != nil {
		log.Printf("ERROR: Reminder scan failed to list schedules: %v", err)
		return
	}

	cutoff := time.Now().Add(24 * time.Hour)
	announced := 0
	for _, s := range schedules {
		if !s.Reminder || s.Date.After(cutoff) {
			continue
		}
		log.Printf("INFO: Reminder: %s (%s) at %s, %s.",
			s.Title, s.Type, s.Date.Format("2006-01-02 15:04"), s.Location)
		announced++
	}
	if announced == 0 {
		log.Printf("INFO: Reminder scan found no schedules in the next 24h.")
	}
}
