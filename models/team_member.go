// models/team_member.go
package models

import "time"

type TeamRole string

const (
	TeamRoleCaptain TeamRole = "captain"
	TeamRoleMember  TeamRole = "member"
)

// TeamMember links a user to a team. The unique index on UserID enforces
// exclusive membership: a user is on at most one team, and leaving deletes
// the row so departed members stop counting toward team totals.
type TeamMember struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	TeamID   uint      `json:"team_id" gorm:"not null;index"`
	Team     *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role     TeamRole  `json:"role" gorm:"not null;default:'member'"`
	JoinedAt time.Time `json:"joined_at" gorm:"not null"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
