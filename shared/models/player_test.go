package models

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func decodePlayer(t *testing.T, doc bson.M) Player {
	t.Helper()
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal test document: %v", err)
	}
	var p Player
	if err := bson.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal player: %v", err)
	}
	return p
}

func TestPositionsDecodeLegacyString(t *testing.T) {
	p := decodePlayer(t, bson.M{"name": "Zhao", "position": "forward, midfielder"})
	want := Positions{"forward", "midfielder"}
	if !reflect.DeepEqual(p.Position, want) {
		t.Errorf("position = %v, want %v", p.Position, want)
	}
}

func TestPositionsDecodeArray(t *testing.T) {
	p := decodePlayer(t, bson.M{"name": "Zhao", "position": bson.A{"defender", "fullback"}})
	want := Positions{"defender", "fullback"}
	if !reflect.DeepEqual(p.Position, want) {
		t.Errorf("position = %v, want %v", p.Position, want)
	}
}

func TestPositionsDecodeWrongTypeDefaultsEmpty(t *testing.T) {
	p := decodePlayer(t, bson.M{"name": "Zhao", "position": 7})
	if len(p.Position) != 0 {
		t.Errorf("wrong-typed position should decode empty, got %v", p.Position)
	}
}

func TestNormalizeFallsBackToLegacyPositionsField(t *testing.T) {
	p := decodePlayer(t, bson.M{"name": "Zhao", "positions": "goalkeeper"})
	p.Normalize()
	want := Positions{"goalkeeper"}
	if !reflect.DeepEqual(p.Position, want) {
		t.Errorf("position after normalize = %v, want %v", p.Position, want)
	}
	if p.LegacyPositions != nil {
		t.Error("legacy alias should be cleared after normalize")
	}
}

func TestNormalizePrefersCanonicalField(t *testing.T) {
	p := Player{Position: Positions{"forward"}, LegacyPositions: Positions{"defender"}}
	p.Normalize()
	if !reflect.DeepEqual(p.Position, Positions{"forward"}) {
		t.Errorf("canonical position must win, got %v", p.Position)
	}
}

func TestParsePositions(t *testing.T) {
	tests := []struct {
		in   string
		want Positions
	}{
		{"forward", Positions{"forward"}},
		{"forward,midfielder", Positions{"forward", "midfielder"}},
		{" defender , fullback ", Positions{"defender", "fullback"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tt := range tests {
		if got := ParsePositions(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParsePositions(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAbilityAverage(t *testing.T) {
	p := Player{Ability: map[string]int{AbilityPower: 80, AbilityStamina: 70, AbilityShooting: 75}}
	if got := p.AbilityAverage(); got != 75 {
		t.Errorf("AbilityAverage() = %d, want 75", got)
	}
	empty := Player{}
	if got := empty.AbilityAverage(); got != 0 {
		t.Errorf("AbilityAverage() with no abilities = %d, want 0", got)
	}
}
