// shared/models/record.go
package models

import (
	"sort"
	"time"
)

// MatchRecord is a stored per-match performance document. Two generations of
// shape coexist in the collection and both decode into this struct:
//
//   - legacy: one document per player per match, scalar playerId/goals/assists
//     (plus cards and rating), historically keyed by free-text playerName and
//     matchDate before the backfill resolved them to IDs;
//   - current: one document per match, goalStats/assistStats maps from
//     playerId to count.
//
// Downstream code never consumes a MatchRecord directly; Tuples converts it
// to canonical PerformanceTuples at the ingestion boundary.
type MatchRecord struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	MatchID string `bson:"matchId,omitempty" json:"matchId,omitempty"`

	// Legacy scalar shape.
	PlayerID   string  `bson:"playerId,omitempty" json:"playerId,omitempty"`
	Goals      int     `bson:"goals,omitempty" json:"goals,omitempty"`
	Assists    int     `bson:"assists,omitempty" json:"assists,omitempty"`
	YellowCard int     `bson:"yellowCard,omitempty" json:"yellowCard,omitempty"`
	RedCard    int     `bson:"redCard,omitempty" json:"redCard,omitempty"`
	Rating     float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Position   string  `bson:"position,omitempty" json:"position,omitempty"`

	// Current map shape.
	GoalStats   map[string]int `bson:"goalStats,omitempty" json:"goalStats,omitempty"`
	AssistStats map[string]int `bson:"assistStats,omitempty" json:"assistStats,omitempty"`

	// Pre-backfill text keys. The migration job resolves these to
	// PlayerID/MatchID and removes them.
	PlayerName string `bson:"playerName,omitempty" json:"playerName,omitempty"`
	MatchDate  string `bson:"matchDate,omitempty" json:"matchDate,omitempty"`
	Opponent   string `bson:"opponent,omitempty" json:"opponent,omitempty"`

	CreateTime *time.Time `bson:"createTime,omitempty" json:"createTime,omitempty"`
}

// PerformanceTuple is the canonical in-memory form of a player's performance
// in one match, independent of the storage generation it came from.
type PerformanceTuple struct {
	PlayerID string `json:"playerId"`
	MatchID  string `json:"matchId"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
}

// Tuples normalizes the record into zero or more canonical tuples.
//
// A legacy scalar record emits exactly one tuple. A map-shape record emits
// one merged tuple per distinct playerId appearing in goalStats or
// assistStats; a player present in only one map gets 0 for the other field.
// A record with neither shape yields nil; the caller logs it as an anomaly
// and moves on. Map-shape output is ordered by playerId for determinism.
func (r *MatchRecord) Tuples() []PerformanceTuple {
	if r.PlayerID != "" {
		return []PerformanceTuple{{
			PlayerID: r.PlayerID,
			MatchID:  r.MatchID,
			Goals:    r.Goals,
			Assists:  r.Assists,
		}}
	}

	if len(r.GoalStats) == 0 && len(r.AssistStats) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(r.GoalStats)+len(r.AssistStats))
	var playerIDs []string
	for id := range r.GoalStats {
		if !seen[id] {
			seen[id] = true
			playerIDs = append(playerIDs, id)
		}
	}
	for id := range r.AssistStats {
		if !seen[id] {
			seen[id] = true
			playerIDs = append(playerIDs, id)
		}
	}
	sort.Strings(playerIDs)

	tuples := make([]PerformanceTuple, 0, len(playerIDs))
	for _, id := range playerIDs {
		tuples = append(tuples, PerformanceTuple{
			PlayerID: id,
			MatchID:  r.MatchID,
			Goals:    r.GoalStats[id],
			Assists:  r.AssistStats[id],
		})
	}
	return tuples
}

// Involves reports whether the record carries any performance data for the
// given player, in either storage generation.
func (r *MatchRecord) Involves(playerID string) bool {
	if r.PlayerID == playerID {
		return true
	}
	if _, ok := r.GoalStats[playerID]; ok {
		return true
	}
	_, ok := r.AssistStats[playerID]
	return ok
}

// Migrated reports whether the record already carries both foreign keys and
// therefore needs no backfill.
func (r *MatchRecord) Migrated() bool {
	return r.PlayerID != "" && r.MatchID != ""
}
