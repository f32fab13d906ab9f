package service

import (
	"testing"
	"time"

	"github.com/sundayfc/club-service/shared/models"
)

func testPlayers() []models.Player {
	return []models.Player{
		{ID: "p1", Name: "赵勇"},
		{ID: "p2", Name: "李伟"},
		{ID: "p3", Name: "张磊"},
	}
}

func TestPlayerIndexResolve(t *testing.T) {
	ix := buildPlayerIndex(testPlayers())

	tests := []struct {
		name   string
		wantID string
		wantOK bool
	}{
		{"赵勇", "p1", true},       // exact
		{"  赵勇  ", "p1", true},   // surrounding whitespace trimmed
		{"赵 勇", "p1", true},      // internal whitespace ignored
		{"勇", "p1", true},        // query contained in stored name
		{"赵勇(队长)", "p1", true},   // stored name contained in query
		{"王强", "", false},        // unknown player
		{"", "", false},          // blank name never matches
		{"   ", "", false},
	}
	for _, tt := range tests {
		id, ok := ix.resolve(tt.name)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("resolve(%q) = (%q, %v), want (%q, %v)", tt.name, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestPlayerIndexDuplicateNamesFirstWins(t *testing.T) {
	ix := buildPlayerIndex([]models.Player{
		{ID: "p1", Name: "赵勇"},
		{ID: "p2", Name: "赵勇"},
	})
	if id, ok := ix.resolve("赵勇"); !ok || id != "p1" {
		t.Errorf("resolve(赵勇) = (%q, %v), want first-loaded p1", id, ok)
	}
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-03-01T10:00:00Z", "2025-03-01"},
		{"2025-03-01 10:00", "2025-03-01"},
		{"2025-03-01", "2025-03-01"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := dateKey(tt.in); got != tt.want {
			t.Errorf("dateKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildMatchIndex(t *testing.T) {
	matches := []models.Match{
		{ID: "m1", MatchDate: time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)},
		{ID: "m2", MatchDate: time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)}, // same date, loses
		{ID: "m3", MatchDate: time.Date(2025, 3, 8, 15, 0, 0, 0, time.UTC)},
	}
	ix := buildMatchIndex(matches)
	if ix["2025-03-01"] != "m1" {
		t.Errorf("index[2025-03-01] = %q, want first-loaded m1", ix["2025-03-01"])
	}
	if ix["2025-03-08"] != "m3" {
		t.Errorf("index[2025-03-08] = %q, want m3", ix["2025-03-08"])
	}
	if len(ix) != 2 {
		t.Errorf("index has %d entries, want 2", len(ix))
	}
}

func TestStripWhitespace(t *testing.T) {
	if got := stripWhitespace(" 赵  勇 "); got != "赵勇" {
		t.Errorf("stripWhitespace = %q, want 赵勇", got)
	}
}

func TestRecordFailureCapsReport(t *testing.T) {
	ms := &MigrationService{}
	report := &MigrationReport{FailedRecords: []FailedRecord{}}
	for i := 0; i < maxFailedRecords+5; i++ {
		ms.recordFailure(report, &models.MatchRecord{ID: "r"}, "player not found")
	}
	if report.FailCount != maxFailedRecords+5 {
		t.Errorf("FailCount = %d, want %d", report.FailCount, maxFailedRecords+5)
	}
	if len(report.FailedRecords) != maxFailedRecords {
		t.Errorf("FailedRecords length = %d, want cap %d", len(report.FailedRecords), maxFailedRecords)
	}
}
