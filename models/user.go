// models/user.go
package models

import (
	"time"
)

// User roles
const (
	RoleChild = "child"
	RoleAdult = "adult"
	RoleAdmin = "admin"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:child" json:"role"`
	Avatar   string `gorm:"default:default.png" json:"avatar"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`

	// Economy
	Coins  int `gorm:"default:0" json:"coins"`
	Energy int `gorm:"default:100" json:"energy"`

	// Progression
	Streak     int `gorm:"default:0" json:"streak"`
	Level      int `gorm:"default:1" json:"level"`
	Experience int `gorm:"default:0" json:"experience"`

	// Timestamps
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	LastDailyReset *time.Time `json:"last_daily_reset,omitempty"`
}
