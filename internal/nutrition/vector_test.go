package nutrition_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/nutrition"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     float64
	}{
		{"half rounds away from zero", 26.25, 1, 26.3},
		{"half rounds away from zero when negative", -26.25, 1, -26.3},
		{"integer precision", 427.5, 0, 428},
		{"already exact", 13.5, 1, 13.5},
		{"two decimals keeps quarters", 0.75, 2, 0.75},
		{"zero", 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nutrition.Round(tt.value, tt.decimals))
		})
	}
}

func TestScale(t *testing.T) {
	v := nutrition.Vector{Calories: 450, Protein: 25, Fat: 15, Carbs: 50, Fiber: 8, Salt: 1.5}

	t.Run("halving keeps quarter-gram salt", func(t *testing.T) {
		got := nutrition.Scale(v, 0.5)
		assert.Equal(t, nutrition.Vector{Calories: 225, Protein: 12.5, Fat: 7.5, Carbs: 25, Fiber: 4, Salt: 0.75}, got)
	})

	t.Run("identity ratio", func(t *testing.T) {
		assert.Equal(t, v, nutrition.Scale(v, 1))
	})

	t.Run("non-finite ratio propagates unguarded", func(t *testing.T) {
		got := nutrition.Scale(v, math.Inf(1))
		assert.True(t, math.IsInf(got.Calories, 1))
		assert.True(t, math.IsInf(got.Salt, 1))
	})
}
