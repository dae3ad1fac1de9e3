// models/team.go
package models

import "time"

type Team struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null;size:100"`
	Description string       `json:"description" gorm:"type:text"`
	TeamCode    string       `json:"team_code" gorm:"unique;size:10"`
	MaxMembers  int          `json:"max_members" gorm:"not null;default:6"`
	CreatorID   uint         `json:"creator_id" gorm:"not null"`
	Creator     *User        `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Members     []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Derived on read, never the source of truth.
	TotalPoints int `json:"total_points" gorm:"-"`
	Rank        int `json:"rank,omitempty" gorm:"-"`
}

func (Team) TableName() string {
	return "teams"
}
