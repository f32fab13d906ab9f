// club/service/rank.go
package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/sundayfc/club-service/shared/models"
)

// placeholderName substitutes for a player or opponent whose referenced
// document no longer exists. A resolution miss is never an error.
const placeholderName = "unknown"

type rankedCount struct {
	playerID string
	count    int
}

// sumByPlayer groups canonical tuples by player and sums the picked field.
// Zero sums are dropped: a player only ranks on a board they actually scored
// on.
func sumByPlayer(tuples []models.PerformanceTuple, pick func(models.PerformanceTuple) int) map[string]int {
	sums := make(map[string]int)
	for _, t := range tuples {
		sums[t.PlayerID] += pick(t)
	}
	for id, v := range sums {
		if v <= 0 {
			delete(sums, id)
		}
	}
	return sums
}

// rankCounts sorts the per-player sums descending and truncates to n
// (n <= 0 means no truncation). The source left ties unordered; we break
// them by playerId ascending so rankings are deterministic.
func rankCounts(sums map[string]int, n int) []rankedCount {
	ranked := make([]rankedCount, 0, len(sums))
	for id, count := range sums {
		ranked = append(ranked, rankedCount{playerID: id, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].playerID < ranked[j].playerID
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// normalizeRecords converts stored records of either generation into
// canonical tuples, returning the number of unrecognizable documents
// skipped.
func normalizeRecords(records []models.MatchRecord) ([]models.PerformanceTuple, int) {
	var tuples []models.PerformanceTuple
	skipped := 0
	for i := range records {
		ts := records[i].Tuples()
		if ts == nil {
			skipped++
			continue
		}
		tuples = append(tuples, ts...)
	}
	return tuples, skipped
}

// attendanceTally is a per-player present/total count over attendance rows.
type attendanceTally struct {
	present int
	total   int
}

// tallyAttendance counts events and presences per player.
func tallyAttendance(rows []models.Attendance) map[string]attendanceTally {
	tallies := make(map[string]attendanceTally)
	for _, row := range rows {
		t := tallies[row.PlayerID]
		t.total++
		if row.Status == models.StatusPresent {
			t.present++
		}
		tallies[row.PlayerID] = t
	}
	return tallies
}

// attendanceRate converts a tally to a whole-number percentage, rounded to
// nearest. A player with no recorded events rates 0 rather than being
// excluded.
func attendanceRate(t attendanceTally) int {
	if t.total == 0 {
		return 0
	}
	return int(float64(t.present)/float64(t.total)*100 + 0.5)
}

// seasonDateRange maps a season label like "2024-2025" onto the date span
// Sep 1 of the first year through Aug 31 of the second. Labels that don't
// parse as a year pair are an error.
func seasonDateRange(season string) (time.Time, time.Time, error) {
	var startYear, endYear int
	if _, err := fmt.Sscanf(season, "%d-%d", &startYear, &endYear); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid season label %q: %w", season, err)
	}
	if endYear != startYear+1 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid season label %q: years must be consecutive", season)
	}
	start := time.Date(startYear, time.September, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(endYear, time.August, 31, 23, 59, 59, 0, time.Local)
	return start, end, nil
}

// dedupeByMatch collapses multiple tuples for the same match to one,
// first-seen wins. Kept for parity with the source behavior; if multiple
// partial stat documents for one match are ever legitimate this drops data.
func dedupeByMatch(tuples []models.PerformanceTuple) []models.PerformanceTuple {
	seen := make(map[string]bool, len(tuples))
	out := make([]models.PerformanceTuple, 0, len(tuples))
	for _, t := range tuples {
		if seen[t.MatchID] {
			continue
		}
		seen[t.MatchID] = true
		out = append(out, t)
	}
	return out
}
