package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRating(t *testing.T) {
	tests := []struct {
		name     string
		oldAvg   float64
		oldCount int
		rating   int
		want     float64
	}{
		{"first review", 0, 0, 5, 5},
		{"nine threes plus a four", 3.0, 9, 4, 3.1},
		{"pulls average down", 5.0, 1, 1, 3},
		{"stable when equal", 4.0, 3, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NextRating(tt.oldAvg, tt.oldCount, tt.rating), 1e-9)
		})
	}
}
