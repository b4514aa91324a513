package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForPercentageThresholds(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "A+"},
		{90, "A+"},
		{89, "A"},
		{80, "A"},
		{79, "B+"},
		{70, "B+"},
		{69, "B"},
		{60, "B"},
		{59, "C+"},
		{50, "C+"},
		{49, "C"},
		{40, "C"},
		{39, "D"},
		{30, "D"},
		{29, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, ForPercentage(tt.pct), "percentage %d", tt.pct)
	}
}

func TestGamePercentage(t *testing.T) {
	assert.Equal(t, 100, GamePercentage(100, 5, 20))
	assert.Equal(t, 80, GamePercentage(80, 5, 20))
	assert.Equal(t, 20, GamePercentage(20, 5, 20))
	assert.Equal(t, 0, GamePercentage(0, 5, 20))
	assert.Equal(t, 0, GamePercentage(50, 0, 20))
}

func TestAveragePercentage(t *testing.T) {
	// The per-game max is fixed at 100, so the aggregate percentage is the
	// rounded average itself.
	assert.Equal(t, 100, AveragePercentage(100))
	assert.Equal(t, 67, AveragePercentage(66.67))
	assert.Equal(t, 50, AveragePercentage(50))
	assert.Equal(t, 0, AveragePercentage(0))
}

func TestPerfectGameIsAPlus(t *testing.T) {
	assert.Equal(t, "A+", GameGrade(100, 5, 20))
	assert.Equal(t, "F", GameGrade(20, 5, 20))
	assert.Equal(t, "A", AverageGrade(80))
}
