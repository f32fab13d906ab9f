// club/service/player_service.go
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sundayfc/club-service/club/store"
	"github.com/sundayfc/club-service/shared/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Custom Errors for clear communication to API layer
var (
	ErrPlayerNotFound   = fmt.Errorf("player not found")
	ErrMatchNotFound    = fmt.Errorf("match not found")
	ErrScheduleNotFound = fmt.Errorf("schedule not found")
	ErrUserNotFound     = fmt.Errorf("user not found")
)

// PlayerService encapsulates the business logic for player profiles.
type PlayerService struct {
	playerStore     *store.PlayerStore
	attendanceStore *store.AttendanceStore
}

// NewPlayerService creates a new PlayerService instance.
func NewPlayerService(ps *store.PlayerStore, as *store.AttendanceStore) *PlayerService {
	return &PlayerService{
		playerStore:     ps,
		attendanceStore: as,
	}
}

// CreatePlayer validates and stores a new player profile.
func (ps *PlayerService) CreatePlayer(ctx context.Context, player *models.Player) error {
	if strings.TrimSpace(player.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	player.Name = strings.TrimSpace(player.Name)
	if err := ps.playerStore.CreatePlayer(ctx, player); err != nil {
		return fmt.Errorf("service failed to create player: %w", err)
	}
	return nil
}

// GetPlayer retrieves a player profile.
func (ps *PlayerService) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	player, err := ps.playerStore.GetPlayer(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("service failed to get player: %w", err)
	}
	return player, nil
}

// UpdatePlayer overwrites a player's editable fields.
func (ps *PlayerService) UpdatePlayer(ctx context.Context, id string, player *models.Player) error {
	if strings.TrimSpace(player.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	player.Name = strings.TrimSpace(player.Name)
	if err := ps.playerStore.UpdatePlayer(ctx, id, player); err != nil {
		if err.Error() == fmt.Sprintf("player %s not found for update", id) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("service failed to update player: %w", err)
	}
	return nil
}

// DeletePlayer physically removes a player.
func (ps *PlayerService) DeletePlayer(ctx context.Context, id string) error {
	if err := ps.playerStore.DeletePlayer(ctx, id); err != nil {
		if err.Error() == fmt.Sprintf("player %s not found for delete", id) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("service failed to delete player: %w", err)
	}
	return nil
}

// ListPlayers returns the roster, optionally restricted to active players
// and filtered by a fuzzy name query.
func (ps *PlayerService) ListPlayers(ctx context.Context, activeOnly bool, query string) ([]models.Player, error) {
	players, err := ps.playerStore.ListPlayers(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("service failed to list players: %w", err)
	}
	if query == "" {
		return players, nil
	}
	return searchPlayers(players, query), nil
}

// searchPlayers filters the roster by fuzzy name match, best matches first.
func searchPlayers(players []models.Player, query string) []models.Player {
	type scored struct {
		player models.Player
		rank   int
	}
	var hits []scored
	for _, p := range players {
		if rank := fuzzy.RankMatchNormalizedFold(query, p.Name); rank >= 0 {
			hits = append(hits, scored{player: p, rank: rank})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].rank < hits[j].rank
	})

	out := make([]models.Player, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.player)
	}
	return out
}

// AttendanceSummary is a player's attendance breakdown by status.
type AttendanceSummary struct {
	Present int `json:"present"`
	Leave   int `json:"leave"`
	Absent  int `json:"absent"`
}

// PlayerAttendance returns a player's attendance breakdown over all events.
func (ps *PlayerService) PlayerAttendance(ctx context.Context, playerID string) (*AttendanceSummary, error) {
	rows, err := ps.attendanceStore.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("service failed to load player attendance: %w", err)
	}
	summary := &AttendanceSummary{}
	for _, row := range rows {
		switch row.Status {
		case models.StatusPresent:
			summary.Present++
		case models.StatusLeave:
			summary.Leave++
		case models.StatusAbsent:
			summary.Absent++
		}
	}
	return summary, nil
}
