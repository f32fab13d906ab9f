package pagination

import (
	"reflect"
	"testing"
)

func TestPageOffsets(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		pageCap int64
		want    []int64
	}{
		{"empty collection", 0, 20, nil},
		{"single partial page", 7, 20, []int64{0}},
		{"exact page boundary", 40, 20, []int64{0, 20}},
		{"45 docs at cap 20 need three pages", 45, 20, []int64{0, 20, 40}},
		{"cap of one", 3, 1, []int64{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageOffsets(tt.total, tt.pageCap)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("pageOffsets(%d, %d) = %v, want %v", tt.total, tt.pageCap, got, tt.want)
			}
		})
	}
}

func TestChunkStrings(t *testing.T) {
	ids := make([]string, 45)
	for i := range ids {
		ids[i] = string(rune('a' + i%26))
	}
	chunks := chunkStrings(ids, 20)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks for 45 ids at size 20, got %d", len(chunks))
	}
	if len(chunks[0]) != 20 || len(chunks[1]) != 20 || len(chunks[2]) != 5 {
		t.Errorf("unexpected chunk sizes: %d, %d, %d", len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}

	var flattened []string
	for _, c := range chunks {
		flattened = append(flattened, c...)
	}
	if !reflect.DeepEqual(flattened, ids) {
		t.Error("chunking must preserve order and content")
	}

	if got := chunkStrings(nil, 20); got != nil {
		t.Errorf("chunking an empty list should yield no chunks, got %v", got)
	}
}
