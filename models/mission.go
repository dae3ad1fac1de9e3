// models/mission.go
package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Mission struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null;size:200"`
	Description string     `json:"description" gorm:"type:text"`
	Difficulty  Difficulty `json:"difficulty" gorm:"not null;default:'easy';index"`
	Category    string     `json:"category" gorm:"not null;index"` // Recycling, Repair, Collection, Awareness
	Points      int        `json:"points" gorm:"not null"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	IsActive    bool       `json:"is_active" gorm:"default:true;index"`
	CreatedByID uint       `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Mission) TableName() string {
	return "missions"
}

// OpenFor reports whether the mission accepts submissions at t.
func (m *Mission) OpenFor(t time.Time) bool {
	if !m.IsActive {
		return false
	}
	if m.Deadline != nil && t.After(*m.Deadline) {
		return false
	}
	return true
}
