// club/service/match_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sundayfc/club-service/club/store"
	"github.com/sundayfc/club-service/shared/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// MatchService encapsulates the business logic for matches and their
// per-match performance records.
type MatchService struct {
	matchStore  *store.MatchStore
	recordStore *store.RecordStore
}

// NewMatchService creates a new MatchService instance.
func NewMatchService(ms *store.MatchStore, rs *store.RecordStore) *MatchService {
	return &MatchService{
		matchStore:  ms,
		recordStore: rs,
	}
}

// validateMatch rejects a match before any remote call is made.
func validateMatch(match *models.Match) error {
	if strings.TrimSpace(match.Opponent) == "" {
		return fmt.Errorf("opponent is required")
	}
	if match.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if match.Goals < 0 || match.Conceded < 0 {
		return fmt.Errorf("goals and conceded must not be negative")
	}
	return nil
}

// CreateMatch validates, derives the result, and stores a new match.
func (ms *MatchService) CreateMatch(ctx context.Context, match *models.Match) error {
	if err := validateMatch(match); err != nil {
		return err
	}
	match.Opponent = strings.TrimSpace(match.Opponent)
	match.Result = models.ComputeResult(match.Goals, match.Conceded)
	if err := ms.matchStore.CreateMatch(ctx, match); err != nil {
		return fmt.Errorf("service failed to create match: %w", err)
	}
	return nil
}

// GetMatch retrieves a match.
func (ms *MatchService) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	match, err := ms.matchStore.GetMatch(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("service failed to get match: %w", err)
	}
	return match, nil
}

// UpdateMatch validates, re-derives the result, and overwrites a match.
func (ms *MatchService) UpdateMatch(ctx context.Context, id string, match *models.Match) error {
	if err := validateMatch(match); err != nil {
		return err
	}
	match.Opponent = strings.TrimSpace(match.Opponent)
	match.Result = models.ComputeResult(match.Goals, match.Conceded)
	if err := ms.matchStore.UpdateMatch(ctx, id, match); err != nil {
		if err.Error() == fmt.Sprintf("match %s not found for update", id) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("service failed to update match: %w", err)
	}
	return nil
}

// DeleteMatch removes a match and its performance records as an explicit
// two-phase cascade: dependents first, then the parent. The two deletes are
// independent store calls; a crash between them leaves orphaned records, not
// a dangling match.
func (ms *MatchService) DeleteMatch(ctx context.Context, id string) error {
	if err := ms.recordStore.DeleteByMatch(ctx, id); err != nil {
		return fmt.Errorf("service failed to delete match records: %w", err)
	}
	if err := ms.matchStore.DeleteMatch(ctx, id); err != nil {
		if err.Error() == fmt.Sprintf("match %s not found for delete", id) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("service failed to delete match: %w", err)
	}
	return nil
}

// ListMatches returns matches in scope, newest first.
func (ms *MatchService) ListMatches(ctx context.Context, scope store.Scope) ([]models.Match, error) {
	matches, err := ms.matchStore.ListMatches(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("service failed to list matches: %w", err)
	}
	return matches, nil
}

// RecentMatches returns the newest n matches.
func (ms *MatchService) RecentMatches(ctx context.Context, n int) ([]models.Match, error) {
	matches, err := ms.matchStore.ListMatches(ctx, store.Scope{})
	if err != nil {
		return nil, fmt.Errorf("service failed to list recent matches: %w", err)
	}
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches, nil
}

// MatchRecords returns the stored performance records for a match.
func (ms *MatchService) MatchRecords(ctx context.Context, matchID string) ([]models.MatchRecord, error) {
	records, err := ms.recordStore.FindByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("service failed to load match records: %w", err)
	}
	return records, nil
}

// ReplaceMatchRecords replaces a match's performance records wholesale after
// verifying the match exists. Records with neither recognizable shape are
// rejected up front rather than stored as anomalies.
func (ms *MatchService) ReplaceMatchRecords(ctx context.Context, matchID string, records []models.MatchRecord) error {
	if _, err := ms.GetMatch(ctx, matchID); err != nil {
		return err
	}
	for i := range records {
		records[i].MatchID = matchID
		if records[i].Tuples() == nil {
			return fmt.Errorf("record %d carries no performance data", i)
		}
	}
	if err := ms.recordStore.ReplaceForMatch(ctx, matchID, records); err != nil {
		return fmt.Errorf("service failed to replace match records: %w", err)
	}
	log.Printf("INFO: Replaced %d performance records for match %s.", len(records), matchID)
	return nil
}
