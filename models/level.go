// models/level.go
package models

import (
	"fmt"
	"sort"
)

// LevelDefinition is one row of the level table: a [MinPoints, MaxPoints)
// range with a display name. MaxPoints == nil means unbounded above.
type LevelDefinition struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Rank      int    `json:"rank" gorm:"not null;uniqueIndex"`
	Name      string `json:"name" gorm:"not null"`
	Color     string `json:"color"`
	MinPoints int    `json:"min_points" gorm:"not null;uniqueIndex"`
	MaxPoints *int   `json:"max_points,omitempty"`
}

func (LevelDefinition) TableName() string {
	return "level_definitions"
}

// Contains reports whether points falls inside this level's range.
func (l *LevelDefinition) Contains(points int) bool {
	if points < l.MinPoints {
		return false
	}
	return l.MaxPoints == nil || points < *l.MaxPoints
}

// ValidateLevelTable checks the invariants that make LevelOf total: the table
// is non-empty, starts at 0, ranges are contiguous, and the last range is
// unbounded. Violations are configuration errors and abort startup.
func ValidateLevelTable(levels []LevelDefinition) error {
	if len(levels) == 0 {
		return fmt.Errorf("level table is empty")
	}

	sorted := make([]LevelDefinition, len(levels))
	copy(sorted, levels)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinPoints < sorted[j].MinPoints })

	if sorted[0].MinPoints != 0 {
		return fmt.Errorf("level table must start at 0 points, starts at %d", sorted[0].MinPoints)
	}

	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i].MaxPoints == nil {
			return fmt.Errorf("level %q is unbounded but not the last level", sorted[i].Name)
		}
		if *sorted[i].MaxPoints != sorted[i+1].MinPoints {
			return fmt.Errorf("gap in level table between %q (ends %d) and %q (starts %d)",
				sorted[i].Name, *sorted[i].MaxPoints, sorted[i+1].Name, sorted[i+1].MinPoints)
		}
	}

	last := sorted[len(sorted)-1]
	if last.MaxPoints != nil {
		return fmt.Errorf("last level %q must be unbounded above", last.Name)
	}

	return nil
}
