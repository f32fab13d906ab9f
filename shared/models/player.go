// shared/models/player.go
package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Player positions. Legacy documents store a single string, current documents
// a list; Positions decodes both.
const (
	PositionForward    = "forward"
	PositionMidfielder = "midfielder"
	PositionDefender   = "defender"
	PositionFullback   = "fullback"
	PositionGoalkeeper = "goalkeeper"
)

// Ability attribute keys stored in Player.Ability.
const (
	AbilityPower     = "power"
	AbilityStamina   = "stamina"
	AbilityShooting  = "shooting"
	AbilityDribbling = "dribbling"
	AbilityTechnique = "technique"
	AbilityIQ        = "iq"
)

// Positions is a list of playing positions that tolerates the legacy storage
// shape: a BSON string holds one or more comma-separated positions, a BSON
// array holds them as elements. Anything else decodes to an empty list.
type Positions []string

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (p *Positions) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("positions: malformed BSON string")
		}
		*p = ParsePositions(s)
		return nil
	case bsontype.Array:
		var list []string
		if err := bson.UnmarshalValue(t, data, &list); err != nil {
			// Mixed-type array from a hand-edited document; treat as absent.
			*p = nil
			return nil
		}
		*p = list
		return nil
	default:
		*p = nil
		return nil
	}
}

// ParsePositions splits a comma-separated position string into a trimmed
// list, dropping empty segments.
func ParsePositions(s string) Positions {
	var out Positions
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Player represents a club member's profile stored persistently in MongoDB.
type Player struct {
	ID       string         `bson:"_id,omitempty" json:"id"`
	Name     string         `bson:"name" json:"name"`
	Number   int            `bson:"number" json:"number"`
	Position Positions      `bson:"position,omitempty" json:"position"`
	IsActive bool           `bson:"isActive" json:"isActive"`
	Ability  map[string]int `bson:"ability,omitempty" json:"ability,omitempty"`
	Tags     []string       `bson:"tags,omitempty" json:"tags,omitempty"`
	Phone    string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar   string         `bson:"avatar,omitempty" json:"avatar,omitempty"`
	JoinDate *time.Time     `bson:"joinDate,omitempty" json:"joinDate,omitempty"`

	// LegacyPositions is the historical field name for Position. It is only
	// read when Position is missing; Normalize folds it in.
	LegacyPositions Positions `bson:"positions,omitempty" json:"-"`

	CreateTime *time.Time `bson:"createTime,omitempty" json:"createTime,omitempty"`
	UpdatedAt  *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Normalize folds legacy field aliases into the canonical fields. Stores call
// it on every decoded Player so downstream code never sees the legacy shape.
func (p *Player) Normalize() {
	if len(p.Position) == 0 && len(p.LegacyPositions) > 0 {
		p.Position = p.LegacyPositions
	}
	p.LegacyPositions = nil
}

// AbilityAverage returns the rounded mean of the player's recorded ability
// attributes, or 0 if none are recorded.
func (p *Player) AbilityAverage() int {
	if len(p.Ability) == 0 {
		return 0
	}
	total := 0
	for _, v := range p.Ability {
		total += v
	}
	return int(float64(total)/float64(len(p.Ability)) + 0.5)
}
