// models/user.go
package models

import (
	"time"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	Role        Role    `gorm:"not null;default:'student';index" json:"role"`

	// Progression. Points is the balance derived from approved submissions
	// plus badge bonuses; Level is always rewritten from Points, never
	// advanced independently.
	Points int `gorm:"default:0" json:"points"`
	Level  int `gorm:"default:1" json:"level"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Badges      []UserBadge  `gorm:"foreignKey:UserID" json:"badges,omitempty"`
	Submissions []Submission `gorm:"foreignKey:UserID" json:"submissions,omitempty"`
}

func (u *User) IsReviewer() bool {
	return u.Role == RoleTeacher || u.Role == RoleAdmin
}
