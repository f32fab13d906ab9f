// club/api/handler.go
package api

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/sundayfc/club-service/club/service"
)

// ClubAPIHandlers holds references to the services that handle business logic.
type ClubAPIHandlers struct {
	UserService       *service.UserService
	PlayerService     *service.PlayerService
	MatchService      *service.MatchService
	ScheduleService   *service.ScheduleService
	AttendanceService *service.AttendanceService
	StatsService      *service.StatsService
	MigrationService  *service.MigrationService

	auth      *Authenticator
	jwtSecret string
	jwtExpiry time.Duration
}

// NewClubAPIHandlers is the constructor for the API handlers.
func NewClubAPIHandlers(
	us *service.UserService,
	ps *service.PlayerService,
	ms *service.MatchService,
	ss *service.ScheduleService,
	as *service.AttendanceService,
	sts *service.StatsService,
	mig *service.MigrationService,
	authenticator *Authenticator,
	jwtSecret string,
	jwtExpiry time.Duration,
) *ClubAPIHandlers {
	return &ClubAPIHandlers{
		UserService:       us,
		PlayerService:     ps,
		MatchService:      ms,
		ScheduleService:   ss,
		AttendanceService: as,
		StatsService:      sts,
		MigrationService:  mig,
		auth:              authenticator,
		jwtSecret:         jwtSecret,
		jwtExpiry:         jwtExpiry,
	}
}

// RegisterRoutes registers all API endpoints for the club service.
// This method is called from main.go to set up the HTTP routes.
func (ch *ClubAPIHandlers) RegisterRoutes(router *mux.Router) {
	// Auth
	router.HandleFunc("/login", ch.LoginHandler).Methods("POST")
	router.HandleFunc("/logout", ch.auth.Middleware(ch.LogoutHandler)).Methods("POST")
	router.HandleFunc("/me", ch.auth.Middleware(ch.MeHandler)).Methods("GET")
	router.HandleFunc("/me", ch.auth.Middleware(ch.UpdateProfileHandler)).Methods("PUT")

	// Players
	router.HandleFunc("/players", ch.auth.RequireAdmin(ch.CreatePlayerHandler)).Methods("POST")
	router.HandleFunc("/players", ch.auth.Middleware(ch.ListPlayersHandler)).Methods("GET")
	router.HandleFunc("/players/{id}", ch.auth.Middleware(ch.GetPlayerHandler)).Methods("GET")
	router.HandleFunc("/players/{id}", ch.auth.RequireAdmin(ch.UpdatePlayerHandler)).Methods("PUT")
	router.HandleFunc("/players/{id}", ch.auth.RequireAdmin(ch.DeletePlayerHandler)).Methods("DELETE")
	router.HandleFunc("/players/{id}/matches", ch.auth.Middleware(ch.PlayerMatchHistoryHandler)).Methods("GET")
	router.HandleFunc("/players/{id}/attendance", ch.auth.Middleware(ch.PlayerAttendanceHandler)).Methods("GET")

	// Matches and their performance records
	router.HandleFunc("/matches", ch.auth.RequireAdmin(ch.CreateMatchHandler)).Methods("POST")
	router.HandleFunc("/matches", ch.auth.Middleware(ch.ListMatchesHandler)).Methods("GET")
	router.HandleFunc("/matches/{id}", ch.auth.Middleware(ch.GetMatchHandler)).Methods("GET")
	router.HandleFunc("/matches/{id}", ch.auth.RequireAdmin(ch.UpdateMatchHandler)).Methods("PUT")
	router.HandleFunc("/matches/{id}", ch.auth.RequireAdmin(ch.DeleteMatchHandler)).Methods("DELETE")
	router.HandleFunc("/matches/{id}/records", ch.auth.Middleware(ch.MatchRecordsHandler)).Methods("GET")
	router.HandleFunc("/matches/{id}/records", ch.auth.RequireAdmin(ch.ReplaceMatchRecordsHandler)).Methods("PUT")

	// Schedules
	router.HandleFunc("/schedules", ch.auth.RequireAdmin(ch.CreateScheduleHandler)).Methods("POST")
	router.HandleFunc("/schedules", ch.auth.Middleware(ch.ListSchedulesHandler)).Methods("GET")
	router.HandleFunc("/schedules/upcoming", ch.auth.Middleware(ch.UpcomingSchedulesHandler)).Methods("GET")
	router.HandleFunc("/schedules/{id}", ch.auth.Middleware(ch.GetScheduleHandler)).Methods("GET")
	router.HandleFunc("/schedules/{id}", ch.auth.RequireAdmin(ch.UpdateScheduleHandler)).Methods("PUT")
	router.HandleFunc("/schedules/{id}", ch.auth.RequireAdmin(ch.DeleteScheduleHandler)).Methods("DELETE")

	// Attendance
	router.HandleFunc("/attendance", ch.auth.RequireAdmin(ch.RecordAttendanceHandler)).Methods("POST")
	router.HandleFunc("/attendance/{id}", ch.auth.RequireAdmin(ch.DeleteAttendanceHandler)).Methods("DELETE")

	// Statistics (read-only, no login required)
	router.HandleFunc("/stats/top-scorers", ch.TopScorersHandler).Methods("GET")
	router.HandleFunc("/stats/top-assists", ch.TopAssistsHandler).Methods("GET")
	router.HandleFunc("/stats/attendance", ch.AttendanceRankingHandler).Methods("GET")
	router.HandleFunc("/stats/season-summary", ch.SeasonSummaryHandler).Methods("GET")
	router.HandleFunc("/stats/latest-season", ch.LatestSeasonHandler).Methods("GET")

	// Administration
	router.HandleFunc("/admin/migrate-records", ch.auth.RequireAdmin(ch.MigrateRecordsHandler)).Methods("POST")
}
