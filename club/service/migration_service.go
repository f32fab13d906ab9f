// club/service/migration_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sundayfc/club-service/club/store"
	"github.com/sundayfc/club-service/shared/models"
)

// maxFailedRecords caps the failure report returned to the caller; failures
// beyond the cap are still counted.
const maxFailedRecords = 20

// FailedRecord describes one legacy record the migration could not resolve.
type FailedRecord struct {
	RecordID   string `json:"recordId"`
	PlayerName string `json:"playerName,omitempty"`
	MatchDate  string `json:"matchDate,omitempty"`
	Reason     string `json:"reason"`
}

// MigrationReport summarizes one run of the legacy record backfill.
type MigrationReport struct {
	PlayerCount   int            `json:"playerCount"`
	MatchCount    int            `json:"matchCount"`
	TotalRecords  int            `json:"totalRecords"`
	SuccessCount  int            `json:"successCount"`
	FailCount     int            `json:"failCount"`
	FailedRecords []FailedRecord `json:"failedRecords"`
}

// MigrationService converts legacy match records keyed by free-text
// playerName/matchDate into the foreign-key shape. The job is safe to run
// repeatedly: records already carrying both IDs are skipped unconditionally.
type MigrationService struct {
	playerStore *store.PlayerStore
	matchStore  *store.MatchStore
	recordStore *store.RecordStore
}

// NewMigrationService creates a new MigrationService instance.
func NewMigrationService(ps *store.PlayerStore, ms *store.MatchStore, rs *store.RecordStore) *MigrationService {
	return &MigrationService{
		playerStore: ps,
		matchStore:  ms,
		recordStore: rs,
	}
}

// playerIndex resolves free-text player names to IDs. Lookup order: exact
// trimmed name, whitespace-stripped name (tolerating inconsistent internal
// spacing in CJK names), then substring containment in either direction with
// the first loaded player winning.
type playerIndex struct {
	exact    map[string]string
	squashed map[string]string
	ordered  []models.Player
}

func buildPlayerIndex(players []models.Player) *playerIndex {
	ix := &playerIndex{
		exact:    make(map[string]string, len(players)),
		squashed: make(map[string]string, len(players)),
		ordered:  players,
	}
	for _, p := range players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		if _, dup := ix.exact[name]; !dup {
			ix.exact[name] = p.ID
		}
		stripped := stripWhitespace(name)
		if _, dup := ix.squashed[stripped]; !dup {
			ix.squashed[stripped] = p.ID
		}
	}
	return ix
}

func (ix *playerIndex) resolve(rawName string) (string, bool) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return "", false
	}
	if id, ok := ix.exact[name]; ok {
		return id, true
	}
	if id, ok := ix.squashed[stripWhitespace(name)]; ok {
		return id, true
	}
	// Substring containment either way; ambiguous overlaps resolve to the
	// first hit.
	for _, p := range ix.ordered {
		candidate := strings.TrimSpace(p.Name)
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, name) || strings.Contains(name, candidate) {
			return p.ID, true
		}
	}
	return "", false
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// dateKey reduces a stored date string to its date portion, dropping any
// time suffix.
func dateKey(s string) string {
	if idx := strings.Index(s, "T"); idx >= 0 {
		return s[:idx]
	}
	if idx := strings.Index(s, " "); idx >= 0 {
		return s[:idx]
	}
	return s
}

// buildMatchIndex maps normalized date strings to match IDs. Two matches on
// the same date collapse to the first loaded, matching the source behavior.
func buildMatchIndex(matches []models.Match) map[string]string {
	ix := make(map[string]string, len(matches))
	for _, m := range matches {
		key := m.MatchDate.Format("2006-01-02")
		if _, dup := ix[key]; !dup {
			ix[key] = m.ID
		}
	}
	return ix
}

// Migrate runs the one-shot backfill over the whole record collection.
// Per-record failures never abort the job; they are counted and the first
// few reported.
func (ms *MigrationService) Migrate(ctx context.Context) (*MigrationReport, error) {
	players, err := ms.playerStore.ListPlayers(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("migration failed to load players: %w", err)
	}
	playerIx := buildPlayerIndex(players)
	log.Printf("INFO: Migration loaded %d players.", len(players))

	matches, err := ms.matchStore.ListMatches(ctx, store.Scope{})
	if err != nil {
		return nil, fmt.Errorf("migration failed to load matches: %w", err)
	}
	matchIx := buildMatchIndex(matches)
	log.Printf("INFO: Migration loaded %d matches.", len(matches))

	records, err := ms.recordStore.AllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration failed to load records: %w", err)
	}

	report := &MigrationReport{
		PlayerCount:   len(players),
		MatchCount:    len(matches),
		TotalRecords:  len(records),
		FailedRecords: []FailedRecord{},
	}

	for i := range records {
		record := &records[i]
		if record.Migrated() {
			continue
		}

		playerID, ok := playerIx.resolve(record.PlayerName)
		if !ok {
			ms.recordFailure(report, record, "player not found")
			continue
		}

		matchID, ok := matchIx[dateKey(record.MatchDate)]
		if !ok {
			ms.recordFailure(report, record, "match not found")
			continue
		}

		if err := ms.recordStore.ApplyMigration(ctx, record.ID, playerID, matchID); err != nil {
			log.Printf("WARN: Migration update failed for record %s: %v", record.ID, err)
			ms.recordFailure(report, record, "update failed")
			continue
		}
		report.SuccessCount++
	}

	log.Printf("INFO: Migration finished: %d converted, %d failed of %d records.",
		report.SuccessCount, report.FailCount, report.TotalRecords)
	return report, nil
}

func (ms *MigrationService) recordFailure(report *MigrationReport, record *models.MatchRecord, reason string) {
	report.FailCount++
	if len(report.FailedRecords) >= maxFailedRecords {
		return
	}
	report.FailedRecords = append(report.FailedRecords, FailedRecord{
		RecordID:   record.ID,
		PlayerName: record.PlayerName,
		MatchDate:  record.MatchDate,
		Reason:     reason,
	})
}
