// models/activity.go
package models

import "time"

type ActivityType string

const (
	ActivityMemberJoined       ActivityType = "member_joined"
	ActivityMemberLeft         ActivityType = "member_left"
	ActivitySubmissionApproved ActivityType = "submission_approved"
	ActivityBadgeEarned        ActivityType = "badge_earned"
)

// TeamActivity is an append-only feed event. Rows are immutable once written.
type TeamActivity struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	EventID   string       `json:"event_id" gorm:"uniqueIndex;size:36"`
	TeamID    uint         `json:"team_id" gorm:"not null;index"`
	UserID    uint         `json:"user_id" gorm:"not null"`
	User      *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Type      ActivityType `json:"type" gorm:"not null"`
	Detail    string       `json:"detail"`
	Points    int          `json:"points" gorm:"default:0"`
	CreatedAt time.Time    `json:"created_at" gorm:"index"`
}

func (TeamActivity) TableName() string {
	return "team_activities"
}
