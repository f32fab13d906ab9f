package models

import "testing"

func TestComputeResult(t *testing.T) {
	tests := []struct {
		goals    int
		conceded int
		want     string
	}{
		{3, 1, ResultWin},
		{2, 2, ResultDraw},
		{0, 2, ResultLoss},
		{0, 0, ResultDraw},
		{1, 0, ResultWin},
	}
	for _, tt := range tests {
		if got := ComputeResult(tt.goals, tt.conceded); got != tt.want {
			t.Errorf("ComputeResult(%d, %d) = %q, want %q", tt.goals, tt.conceded, got, tt.want)
		}
	}
}
