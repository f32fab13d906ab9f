// shared/models/match.go
package models

import "time"

// Match results, derived from team goals vs conceded at save time.
const (
	ResultWin  = "win"
	ResultDraw = "draw"
	ResultLoss = "loss"
)

// ComputeResult derives the match result from the team's goals for and
// against. Equal totals are a draw.
func ComputeResult(goals, conceded int) string {
	switch {
	case goals > conceded:
		return ResultWin
	case goals < conceded:
		return ResultLoss
	default:
		return ResultDraw
	}
}

// StatLine is a per-player entry of the historical goalRecords/assistRecords
// breakdown some Match documents carry. Newer data lives in match_records
// instead; this shape is read-only.
type StatLine struct {
	PlayerID     string `bson:"playerId,omitempty" json:"playerId,omitempty"`
	PlayerName   string `bson:"playerName,omitempty" json:"playerName,omitempty"`
	PlayerNumber int    `bson:"playerNumber,omitempty" json:"playerNumber,omitempty"`
	Count        int    `bson:"count" json:"count"`
}

// Match represents one fixture stored in MongoDB.
type Match struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Opponent  string    `bson:"opponent" json:"opponent"`
	MatchDate time.Time `bson:"matchDate" json:"matchDate"`
	IsHome    bool      `bson:"isHome" json:"isHome"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Goals     int       `bson:"goals" json:"goals"`
	Conceded  int       `bson:"conceded" json:"conceded"`
	Result    string    `bson:"result" json:"result"`

	// Season is a free-text label ("2024-2025"). A match without a season is
	// excluded from season-scoped aggregates unless the aggregate runs in
	// "all" mode.
	Season string `bson:"season,omitempty" json:"season,omitempty"`
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"`

	GoalRecords   []StatLine `bson:"goalRecords,omitempty" json:"goalRecords,omitempty"`
	AssistRecords []StatLine `bson:"assistRecords,omitempty" json:"assistRecords,omitempty"`

	CreateTime *time.Time `bson:"createTime,omitempty" json:"createTime,omitempty"`
	UpdateTime *time.Time `bson:"updateTime,omitempty" json:"updateTime,omitempty"`
}
