package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/sundayfc/club-service/shared/models"
)

func TestSumByPlayerDropsZeroSums(t *testing.T) {
	tuples := []models.PerformanceTuple{
		{PlayerID: "a", MatchID: "m1", Goals: 2, Assists: 0},
		{PlayerID: "a", MatchID: "m2", Goals: 1, Assists: 1},
		{PlayerID: "b", MatchID: "m1", Goals: 0, Assists: 3},
	}

	goals := sumByPlayer(tuples, func(t models.PerformanceTuple) int { return t.Goals })
	if !reflect.DeepEqual(goals, map[string]int{"a": 3}) {
		t.Errorf("goal sums = %v, want map[a:3]", goals)
	}

	assists := sumByPlayer(tuples, func(t models.PerformanceTuple) int { return t.Assists })
	if !reflect.DeepEqual(assists, map[string]int{"a": 1, "b": 3}) {
		t.Errorf("assist sums = %v, want map[a:1 b:3]", assists)
	}
}

func TestRankCountsOrderAndTruncation(t *testing.T) {
	sums := map[string]int{"a": 5, "b": 9, "c": 5, "d": 1}

	ranked := rankCounts(sums, 3)
	want := []rankedCount{
		{playerID: "b", count: 9},
		{playerID: "a", count: 5}, // tie with c broken by playerId ascending
		{playerID: "c", count: 5},
	}
	if !reflect.DeepEqual(ranked, want) {
		t.Errorf("rankCounts = %v, want %v", ranked, want)
	}
}

func TestRankCountsNoTruncationWhenNNonPositive(t *testing.T) {
	sums := map[string]int{"a": 1, "b": 2}
	if got := rankCounts(sums, 0); len(got) != 2 {
		t.Errorf("n=0 should return all entries, got %d", len(got))
	}
}

func TestNormalizeRecordsCountsAnomalies(t *testing.T) {
	records := []models.MatchRecord{
		{MatchID: "m1", GoalStats: map[string]int{"a": 2}},
		{MatchID: "m2"}, // neither shape
		{MatchID: "m3", PlayerID: "b", Goals: 1},
	}
	tuples, skipped := normalizeRecords(records)
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(tuples) != 2 {
		t.Errorf("tuples = %v, want 2 entries", tuples)
	}
}

func TestAttendanceRateRounding(t *testing.T) {
	tests := []struct {
		present int
		total   int
		want    int
	}{
		{0, 0, 0},  // no events ranks 0, not excluded
		{1, 3, 33}, // 33.33 rounds down
		{2, 3, 67}, // 66.67 rounds up
		{3, 3, 100},
		{1, 2, 50},
	}
	for _, tt := range tests {
		got := attendanceRate(attendanceTally{present: tt.present, total: tt.total})
		if got != tt.want {
			t.Errorf("attendanceRate(%d/%d) = %d, want %d", tt.present, tt.total, got, tt.want)
		}
	}
}

func TestTallyAttendance(t *testing.T) {
	rows := []models.Attendance{
		{PlayerID: "a", Status: models.StatusPresent},
		{PlayerID: "a", Status: models.StatusLeave},
		{PlayerID: "a", Status: models.StatusPresent},
		{PlayerID: "b", Status: models.StatusAbsent},
	}
	tallies := tallyAttendance(rows)
	if tallies["a"] != (attendanceTally{present: 2, total: 3}) {
		t.Errorf("tally for a = %+v", tallies["a"])
	}
	if tallies["b"] != (attendanceTally{present: 0, total: 1}) {
		t.Errorf("tally for b = %+v", tallies["b"])
	}
}

func TestSeasonDateRange(t *testing.T) {
	from, to, err := seasonDateRange("2024-2025")
	if err != nil {
		t.Fatalf("seasonDateRange: %v", err)
	}
	wantFrom := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.Local)
	if !from.Equal(wantFrom) {
		t.Errorf("from = %v, want %v", from, wantFrom)
	}
	if to.Year() != 2025 || to.Month() != time.August || to.Day() != 31 {
		t.Errorf("to = %v, want end of Aug 2025", to)
	}

	if _, _, err := seasonDateRange("whenever"); err == nil {
		t.Error("unparseable label should error")
	}
	if _, _, err := seasonDateRange("2024-2026"); err == nil {
		t.Error("non-consecutive years should error")
	}
}

func TestDedupeByMatchFirstSeenWins(t *testing.T) {
	tuples := []models.PerformanceTuple{
		{PlayerID: "a", MatchID: "m1", Goals: 2},
		{PlayerID: "a", MatchID: "m1", Goals: 1}, // later duplicate dropped
		{PlayerID: "a", MatchID: "m2", Goals: 3},
	}
	got := dedupeByMatch(tuples)
	want := []models.PerformanceTuple{
		{PlayerID: "a", MatchID: "m1", Goals: 2},
		{PlayerID: "a", MatchID: "m2", Goals: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedupeByMatch = %v, want %v", got, want)
	}
}

func TestSearchPlayersFuzzyMatch(t *testing.T) {
	players := []models.Player{
		{ID: "p1", Name: "Zhao Yong"},
		{ID: "p2", Name: "Li Wei"},
		{ID: "p3", Name: "Zhang Lei"},
	}
	got := searchPlayers(players, "zhao")
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("searchPlayers(zhao) = %v, want only p1", got)
	}
	if got := searchPlayers(players, "nobody-here"); len(got) != 0 {
		t.Errorf("no-match query should return empty, got %v", got)
	}
}
