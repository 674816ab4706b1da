// models/notification.go
package models

import (
	"time"
)

// Notification kinds
const (
	NotificationTask   = "task"
	NotificationQuiz   = "quiz"
	NotificationShop   = "shop"
	NotificationEnergy = "energy"
	NotificationStreak = "streak"
)

type Notification struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	Title            string    `gorm:"not null" json:"title"`
	Message          string    `gorm:"not null" json:"message"`
	NotificationType string    `gorm:"not null" json:"notification_type"`
	IsRead           bool      `gorm:"default:false" json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}
