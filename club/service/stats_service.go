// club/service/stats_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/sundayfc/club-service/club/store"
	"github.com/sundayfc/club-service/shared/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// ScorerRank is one leaderboard row of the top-scorers board.
type ScorerRank struct {
	PlayerID string   `json:"playerId"`
	Name     string   `json:"name"`
	Position []string `json:"position,omitempty"`
	Goals    int      `json:"goals"`
}

// AssistRank is one leaderboard row of the top-assists board.
type AssistRank struct {
	PlayerID string   `json:"playerId"`
	Name     string   `json:"name"`
	Position []string `json:"position,omitempty"`
	Assists  int      `json:"assists"`
}

// AttendanceRank is one row of the attendance-rate ranking.
type AttendanceRank struct {
	PlayerID string   `json:"playerId"`
	Name     string   `json:"name"`
	Position []string `json:"position,omitempty"`
	Present  int      `json:"present"`
	Total    int      `json:"total"`
	Rate     int      `json:"rate"`
}

// SeasonSummary aggregates team-level results over the scoped matches.
type SeasonSummary struct {
	Season   string `json:"season,omitempty"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
	Goals    int    `json:"goals"`
	Conceded int    `json:"conceded"`
}

// MatchHistoryEntry is one joined row of a player's match history.
type MatchHistoryEntry struct {
	MatchID   string `json:"matchId"`
	MatchDate string `json:"matchDate"`
	Opponent  string `json:"opponent"`
	Result    string `json:"result"`
	Goals     int    `json:"goals"`
	Assists   int    `json:"assists"`
}

// StatsService re-derives ranked statistics from the normalized record
// collections. Every aggregation runs as one sequential fetch chain: scope
// matches, fetch records batch by batch, normalize, group, join, rank.
type StatsService struct {
	playerStore     *store.PlayerStore
	matchStore      *store.MatchStore
	recordStore     *store.RecordStore
	attendanceStore *store.AttendanceStore
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(ps *store.PlayerStore, ms *store.MatchStore, rs *store.RecordStore, as *store.AttendanceStore) *StatsService {
	return &StatsService{
		playerStore:     ps,
		matchStore:      ms,
		recordStore:     rs,
		attendanceStore: as,
	}
}

// scopedTuples resolves the scope to matches, fetches their performance
// records, and normalizes them. A scope matching zero matches yields nil
// tuples and is not an error.
func (ss *StatsService) scopedTuples(ctx context.Context, scope store.Scope) ([]models.PerformanceTuple, error) {
	matches, err := ss.matchStore.ListMatches(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve aggregation scope: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	matchIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		matchIDs = append(matchIDs, m.ID)
	}

	records, err := ss.recordStore.FindByMatchIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scoped records: %w", err)
	}

	tuples, skipped := normalizeRecords(records)
	if skipped > 0 {
		log.Printf("WARN: Skipped %d match records with unrecognizable shape during aggregation.", skipped)
	}
	return tuples, nil
}

// playerLookup batch-fetches the referenced players and builds an ID map.
// Missing players are simply absent; callers substitute placeholders.
func (ss *StatsService) playerLookup(ctx context.Context, ids []string) (map[string]models.Player, error) {
	players, err := ss.playerStore.FindPlayersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve player references: %w", err)
	}
	lookup := make(map[string]models.Player, len(players))
	for _, p := range players {
		lookup[p.ID] = p
	}
	return lookup, nil
}

// TopScorers ranks players by total goals within the scope, truncated to n.
func (ss *StatsService) TopScorers(ctx context.Context, scope store.Scope, n int) ([]ScorerRank, error) {
	tuples, err := ss.scopedTuples(ctx, scope)
	if err != nil {
		return nil, err
	}

	sums := sumByPlayer(tuples, func(t models.PerformanceTuple) int { return t.Goals })
	ranked := rankCounts(sums, n)
	if len(ranked) == 0 {
		return []ScorerRank{}, nil
	}

	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.playerID)
	}
	lookup, err := ss.playerLookup(ctx, ids)
	if err != nil {
		return nil, err
	}

	board := make([]ScorerRank, 0, len(ranked))
	for _, r := range ranked {
		entry := ScorerRank{PlayerID: r.playerID, Name: placeholderName, Goals: r.count}
		if p, ok := lookup[r.playerID]; ok {
			entry.Name = p.Name
			entry.Position = p.Position
		}
		board = append(board, entry)
	}
	return board, nil
}

// TopAssists ranks players by total assists within the scope, truncated to n.
func (ss *StatsService) TopAssists(ctx context.Context, scope store.Scope, n int) ([]AssistRank, error) {
	tuples, err := ss.scopedTuples(ctx, scope)
	if err != nil {
		return nil, err
	}

	sums := sumByPlayer(tuples, func(t models.PerformanceTuple) int { return t.Assists })
	ranked := rankCounts(sums, n)
	if len(ranked) == 0 {
		return []AssistRank{}, nil
	}

	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.playerID)
	}
	lookup, err := ss.playerLookup(ctx, ids)
	if err != nil {
		return nil, err
	}

	board := make([]AssistRank, 0, len(ranked))
	for _, r := range ranked {
		entry := AssistRank{PlayerID: r.playerID, Name: placeholderName, Assists: r.count}
		if p, ok := lookup[r.playerID]; ok {
			entry.Name = p.Name
			entry.Position = p.Position
		}
		board = append(board, entry)
	}
	return board, nil
}

// AttendanceRanking ranks all active players by attendance rate within the
// season. Players with no recorded events rank with rate 0.
func (ss *StatsService) AttendanceRanking(ctx context.Context, season string) ([]AttendanceRank, error) {
	players, err := ss.playerStore.ListPlayers(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for attendance ranking: %w", err)
	}
	if len(players) == 0 {
		return []AttendanceRank{}, nil
	}

	var rows []models.Attendance
	if season != "" {
		from, to, err := seasonDateRange(season)
		if err != nil {
			return nil, err
		}
		rows, err = ss.attendanceStore.ListInRange(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to load attendance rows: %w", err)
		}
	} else {
		rows, err = ss.attendanceStore.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load attendance rows: %w", err)
		}
	}

	tallies := tallyAttendance(rows)

	ranking := make([]AttendanceRank, 0, len(players))
	for _, p := range players {
		t := tallies[p.ID]
		ranking = append(ranking, AttendanceRank{
			PlayerID: p.ID,
			Name:     p.Name,
			Position: p.Position,
			Present:  t.present,
			Total:    t.total,
			Rate:     attendanceRate(t),
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Rate != ranking[j].Rate {
			return ranking[i].Rate > ranking[j].Rate
		}
		return ranking[i].PlayerID < ranking[j].PlayerID
	})
	return ranking, nil
}

// SeasonStats aggregates team results over the scoped matches. Matches
// without a computed result are ignored.
func (ss *StatsService) SeasonStats(ctx context.Context, scope store.Scope) (*SeasonSummary, error) {
	matches, err := ss.matchStore.ListMatches(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for season stats: %w", err)
	}

	summary := &SeasonSummary{Season: scope.Season}
	for _, m := range matches {
		switch m.Result {
		case models.ResultWin:
			summary.Wins++
		case models.ResultDraw:
			summary.Draws++
		case models.ResultLoss:
			summary.Losses++
		default:
			continue
		}
		summary.Goals += m.Goals
		summary.Conceded += m.Conceded
	}
	return summary, nil
}

// LatestSeason returns the season label of the most recent match, or ""
// when no match carries one (meaning aggregates should run in "all" mode).
func (ss *StatsService) LatestSeason(ctx context.Context) (string, error) {
	match, err := ss.matchStore.LatestMatch(ctx)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", fmt.Errorf("failed to find latest match: %w", err)
	}
	return match.Season, nil
}

// PlayerMatchHistory lists every match a player appears in, joined with
// match display fields, newest first. Multiple stat documents for one match
// collapse to the first seen.
func (ss *StatsService) PlayerMatchHistory(ctx context.Context, playerID string) ([]MatchHistoryEntry, error) {
	records, err := ss.recordStore.AllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan records for player history: %w", err)
	}

	var tuples []models.PerformanceTuple
	for i := range records {
		if !records[i].Involves(playerID) {
			continue
		}
		for _, t := range records[i].Tuples() {
			if t.PlayerID == playerID {
				tuples = append(tuples, t)
			}
		}
	}
	tuples = dedupeByMatch(tuples)
	if len(tuples) == 0 {
		return []MatchHistoryEntry{}, nil
	}

	matchIDs := make([]string, 0, len(tuples))
	for _, t := range tuples {
		matchIDs = append(matchIDs, t.MatchID)
	}
	matches, err := ss.matchStore.FindMatchesByIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve match references: %w", err)
	}
	matchMap := make(map[string]models.Match, len(matches))
	for _, m := range matches {
		matchMap[m.ID] = m
	}

	history := make([]MatchHistoryEntry, 0, len(tuples))
	for _, t := range tuples {
		entry := MatchHistoryEntry{
			MatchID:  t.MatchID,
			Opponent: placeholderName,
			Result:   "",
			Goals:    t.Goals,
			Assists:  t.Assists,
		}
		if m, ok := matchMap[t.MatchID]; ok {
			entry.MatchDate = m.MatchDate.Format("2006-01-02")
			entry.Opponent = m.Opponent
			entry.Result = m.Result
		}
		history = append(history, entry)
	}
	// Newest first; unresolved matches sort last. Ties keep fetch order.
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].MatchDate > history[j].MatchDate
	})
	return history, nil
}
