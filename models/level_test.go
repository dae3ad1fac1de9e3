// models/level_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestValidateLevelTable(t *testing.T) {
	valid := []LevelDefinition{
		{Rank: 1, Name: "Novice", MinPoints: 0, MaxPoints: intPtr(1000)},
		{Rank: 2, Name: "Explorer", MinPoints: 1000},
	}
	assert.NoError(t, ValidateLevelTable(valid))

	assert.Error(t, ValidateLevelTable(nil), "empty table")

	assert.Error(t, ValidateLevelTable([]LevelDefinition{
		{Rank: 1, Name: "Novice", MinPoints: 100},
	}), "must start at zero")

	assert.Error(t, ValidateLevelTable([]LevelDefinition{
		{Rank: 1, Name: "Novice", MinPoints: 0, MaxPoints: intPtr(1000)},
		{Rank: 2, Name: "Explorer", MinPoints: 1500},
	}), "gap between ranges")

	assert.Error(t, ValidateLevelTable([]LevelDefinition{
		{Rank: 1, Name: "Novice", MinPoints: 0, MaxPoints: intPtr(1000)},
		{Rank: 2, Name: "Explorer", MinPoints: 1000, MaxPoints: intPtr(5000)},
	}), "last level must be unbounded")

	assert.Error(t, ValidateLevelTable([]LevelDefinition{
		{Rank: 1, Name: "Novice", MinPoints: 0},
		{Rank: 2, Name: "Explorer", MinPoints: 1000},
	}), "unbounded level before the end")
}

func TestLevelContains(t *testing.T) {
	bounded := LevelDefinition{MinPoints: 1000, MaxPoints: intPtr(5000)}
	assert.False(t, bounded.Contains(999))
	assert.True(t, bounded.Contains(1000))
	assert.True(t, bounded.Contains(4999))
	assert.False(t, bounded.Contains(5000))

	open := LevelDefinition{MinPoints: 15000}
	assert.True(t, open.Contains(15000))
	assert.True(t, open.Contains(1000000))
	assert.False(t, open.Contains(14999))
}
