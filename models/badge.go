// models/badge.go
package models

import "time"

// Badge unlock criteria are data, not code: a new badge is a new row, not an
// engine change. A zero threshold means that criterion is not checked.
type Badge struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null;uniqueIndex"`
	Description string `json:"description" gorm:"not null"`
	Icon        string `json:"icon"`

	// Unlock criteria
	MinPoints   int    `json:"min_points" gorm:"default:0"`
	MinMissions int    `json:"min_missions" gorm:"default:0"`
	Category    string `json:"category,omitempty"` // scopes MinMissions to one mission category
	BonusPoints int    `json:"bonus_points" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Badge) TableName() string {
	return "badges"
}

// WellFormed rejects badges no user could ever earn.
func (b *Badge) WellFormed() bool {
	if b.MinPoints < 0 || b.MinMissions < 0 || b.BonusPoints < 0 {
		return false
	}
	if b.Category != "" && b.MinMissions == 0 {
		return false
	}
	return b.MinPoints > 0 || b.MinMissions > 0
}

// UserBadge records an earned badge. The composite unique index is the sole
// record of "earned" and the guard that makes evaluation idempotent.
type UserBadge struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_badge"`
	BadgeID  uint      `json:"badge_id" gorm:"not null;uniqueIndex:idx_user_badge"`
	EarnedAt time.Time `json:"earned_at"`

	User  *User  `json:"-" gorm:"foreignKey:UserID"`
	Badge *Badge `json:"badge,omitempty" gorm:"foreignKey:BadgeID"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
