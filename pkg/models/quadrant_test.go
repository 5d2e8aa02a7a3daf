package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentmapper/agentmapper/pkg/models"
)

func TestClassifyQuadrant(t *testing.T) {
	tests := []struct {
		name       string
		value      int
		complexity int
		want       models.Quadrant
	}{
		{"high value low complexity", 5, 1, models.QuadrantQuickWin},
		{"both at threshold", 3, 3, models.QuadrantQuickWin},
		{"high value high complexity", 5, 5, models.QuadrantStrategic},
		{"value at threshold complexity above", 3, 4, models.QuadrantStrategic},
		{"low value low complexity", 1, 1, models.QuadrantFillIn},
		{"value below complexity at threshold", 2, 3, models.QuadrantFillIn},
		{"low value high complexity", 1, 5, models.QuadrantDeprioritize},
		{"both just past threshold", 2, 4, models.QuadrantDeprioritize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.ClassifyQuadrant(tt.value, tt.complexity))
		})
	}
}

func TestClassifyQuadrantCoversFullGrid(t *testing.T) {
	// Every score pair lands in exactly one of the four quadrants.
	for value := 1; value <= 5; value++ {
		for complexity := 1; complexity <= 5; complexity++ {
			q := models.ClassifyQuadrant(value, complexity)
			switch {
			case value >= 3 && complexity <= 3:
				assert.Equal(t, models.QuadrantQuickWin, q)
			case value >= 3:
				assert.Equal(t, models.QuadrantStrategic, q)
			case complexity <= 3:
				assert.Equal(t, models.QuadrantFillIn, q)
			default:
				assert.Equal(t, models.QuadrantDeprioritize, q)
			}
		}
	}
}
