package models

import (
	"reflect"
	"testing"
)

func TestTuplesLegacyScalarShape(t *testing.T) {
	rec := MatchRecord{
		ID:       "r1",
		MatchID:  "m1",
		PlayerID: "p1",
		Goals:    2,
		Assists:  1,
	}
	got := rec.Tuples()
	want := []PerformanceTuple{{PlayerID: "p1", MatchID: "m1", Goals: 2, Assists: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("legacy record tuples = %v, want %v", got, want)
	}
}

func TestTuplesMapShapeMergesPlayers(t *testing.T) {
	rec := MatchRecord{
		ID:          "r1",
		MatchID:     "m1",
		GoalStats:   map[string]int{"p1": 2},
		AssistStats: map[string]int{"p1": 1, "p2": 3},
	}
	got := rec.Tuples()
	want := []PerformanceTuple{
		{PlayerID: "p1", MatchID: "m1", Goals: 2, Assists: 1},
		{PlayerID: "p2", MatchID: "m1", Goals: 0, Assists: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("map record tuples = %v, want %v", got, want)
	}
}

func TestTuplesGoalOnlyPlayerDefaultsAssistsToZero(t *testing.T) {
	rec := MatchRecord{
		MatchID:   "m9",
		GoalStats: map[string]int{"p7": 1},
	}
	got := rec.Tuples()
	want := []PerformanceTuple{{PlayerID: "p7", MatchID: "m9", Goals: 1, Assists: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("goal-only tuples = %v, want %v", got, want)
	}
}

func TestTuplesUnrecognizableShapeYieldsNothing(t *testing.T) {
	rec := MatchRecord{ID: "r1", MatchID: "m1"}
	if got := rec.Tuples(); got != nil {
		t.Errorf("record with neither shape should yield no tuples, got %v", got)
	}
}

func TestInvolves(t *testing.T) {
	legacy := MatchRecord{PlayerID: "p1", MatchID: "m1"}
	current := MatchRecord{MatchID: "m1", AssistStats: map[string]int{"p2": 1}}

	if !legacy.Involves("p1") || legacy.Involves("p2") {
		t.Error("legacy record should only involve its scalar playerId")
	}
	if !current.Involves("p2") || current.Involves("p1") {
		t.Error("map record should only involve players keyed in its stat maps")
	}
}

func TestMigrated(t *testing.T) {
	tests := []struct {
		name string
		rec  MatchRecord
		want bool
	}{
		{"both ids set", MatchRecord{PlayerID: "p1", MatchID: "m1"}, true},
		{"missing matchId", MatchRecord{PlayerID: "p1"}, false},
		{"missing playerId", MatchRecord{MatchID: "m1"}, false},
		{"text-keyed record", MatchRecord{PlayerName: "Zhao Yong", MatchDate: "2025-03-01"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Migrated(); got != tt.want {
				t.Errorf("Migrated() = %v, want %v", got, tt.want)
			}
		})
	}
}
