package repositories

import (
	"reflect"
	"testing"
)

func TestRoundRating(t *testing.T) {
	tests := []struct {
		name string
		avg  float64
		want float64
	}{
		{"whole number", 4.0, 4.0},
		{"rounds down", 4.44, 4.4},
		{"rounds up", 4.45, 4.5},
		{"repeating third", 11.0 / 3.0, 3.7},
		{"single review", 5.0, 5.0},
		{"low average", 1.24, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundRating(tt.avg); got != tt.want {
				t.Fatalf("roundRating(%v) = %v, want %v", tt.avg, got, tt.want)
			}
		})
	}
}

func TestBuildDistribution(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    map[int]int
	}{
		{
			name:    "empty has all buckets",
			ratings: nil,
			want:    map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		},
		{
			name:    "counts each bucket",
			ratings: []int{5, 5, 4, 1},
			want:    map[int]int{1: 1, 2: 0, 3: 0, 4: 1, 5: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildDistribution(tt.ratings); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("buildDistribution(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}
