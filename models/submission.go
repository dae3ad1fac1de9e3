// models/submission.go
package models

import "time"

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission is the audit row for one mission attempt. Status moves out of
// pending exactly once and the row is never deleted. PointsAwarded is written
// once, at approval, from the mission's points at that moment.
type Submission struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Reference string `json:"reference" gorm:"uniqueIndex;size:36"`

	UserID    uint     `json:"user_id" gorm:"not null;index:idx_submissions_user_mission"`
	User      *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MissionID uint     `json:"mission_id" gorm:"not null;index:idx_submissions_user_mission"`
	Mission   *Mission `json:"mission,omitempty" gorm:"foreignKey:MissionID"`

	// Team at submission time, not at review time.
	TeamID *uint `json:"team_id,omitempty" gorm:"index"`

	Status        SubmissionStatus `json:"status" gorm:"not null;default:'pending';index"`
	Notes         string           `json:"notes" gorm:"type:text"`
	PointsAwarded int              `json:"points_awarded" gorm:"not null;default:0"`

	SubmittedAt time.Time  `json:"submitted_at" gorm:"not null"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewerID  *uint      `json:"reviewer_id,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

// Open submissions block a second submit for the same mission. Rejected ones
// do not, so a student can try again.
func (s *Submission) IsOpen() bool {
	return s.Status == SubmissionPending || s.Status == SubmissionApproved
}
