// club/api/stats_handler.go
package api

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sundayfc/club-service/shared/api"
)

const defaultBoardSize = 10

// limitFromQuery parses ?limit=, falling back to the default board size.
func limitFromQuery(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultBoardSize, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, false
	}
	return limit, true
}

// TopScorersHandler handles requests for the goals leaderboard. Supports
// ?season=, ?from=, ?to= scoping and ?limit= (default 10).
// GET /stats/top-scorers
func (ch *ClubAPIHandlers) TopScorersHandler(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromQuery(r)
	if err != nil {
		api.WriteBadRequest(w, err.Error())
		return
	}
	limit, ok := limitFromQuery(r)
	if !ok {
		api.WriteBadRequest(w, "limit must be a positive integer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	board, err := ch.StatsService.TopScorers(ctx, scope, limit)
	if err != nil {
		log.Printf("ERROR: Failed to rank top scorers: %v", err)
		api.WriteInternalServerError(w, "Failed to rank top scorers")
		return
	}

	api.WriteJSON(w, http.StatusOK, board)
}

// TopAssistsHandler handles requests for the assists leaderboard.
// GET /stats/top-assists
func (ch *ClubAPIHandlers) TopAssistsHandler(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromQuery(r)
	if err != nil {
		api.WriteBadRequest(w, err.Error())
		return
	}
	limit, ok := limitFromQuery(r)
	if !ok {
		api.WriteBadRequest(w, "limit must be a positive integer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	board, err := ch.StatsService.TopAssists(ctx, scope, limit)
	if err != nil {
		log.Printf("ERROR: Failed to rank top assists: %v", err)
		api.WriteInternalServerError(w, "Failed to rank top assists")
		return
	}

	api.WriteJSON(w, http.StatusOK, board)
}

// AttendanceRankingHandler handles requests for the attendance-rate ranking
// of the active roster. Supports ?season= scoping.
// GET /stats/attendance
func (ch *ClubAPIHandlers) AttendanceRankingHandler(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	ranking, err := ch.StatsService.AttendanceRanking(ctx, season)
	if err != nil {
		if isSeasonLabelError(err) {
			api.WriteBadRequest(w, err.Error())
			return
		}
		log.Printf("ERROR: Failed to rank attendance: %v", err)
		api.WriteInternalServerError(w, "Failed to rank attendance")
		return
	}

	api.WriteJSON(w, http.StatusOK, ranking)
}

// SeasonSummaryHandler handles requests for team-level results over the
// scoped matches.
// GET /stats/season-summary
func (ch *ClubAPIHandlers) SeasonSummaryHandler(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromQuery(r)
	if err != nil {
		api.WriteBadRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	summary, err := ch.StatsService.SeasonStats(ctx, scope)
	if err != nil {
		log.Printf("ERROR: Failed to summarize season: %v", err)
		api.WriteInternalServerError(w, "Failed to summarize season")
		return
	}

	api.WriteJSON(w, http.StatusOK, summary)
}

// LatestSeasonHandler handles requests for the season label of the most
// recent match. An empty label means no season is recorded.
// GET /stats/latest-season
func (ch *ClubAPIHandlers) LatestSeasonHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	season, err := ch.StatsService.LatestSeason(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to find latest season: %v", err)
		api.WriteInternalServerError(w, "Failed to find latest season")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"season": season})
}

// MigrateRecordsHandler runs the legacy record backfill and returns its
// report. The job scans every record, so the timeout is generous.
// POST /admin/migrate-records
func (ch *ClubAPIHandlers) MigrateRecordsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	report, err := ch.MigrationService.Migrate(ctx)
	if err != nil {
		log.Printf("ERROR: Record migration failed: %v", err)
		api.WriteInternalServerError(w, "Record migration failed")
		return
	}

	api.WriteJSON(w, http.StatusOK, report)
}

func isSeasonLabelError(err error) bool {
	return strings.Contains(err.Error(), "season label")
}
