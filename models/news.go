// models/news.go
package models

import (
	"time"
)

type News struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"not null" json:"content"`
	Category   string    `gorm:"not null" json:"category"`
	ImagePath  string    `json:"image_path"`
	AuthorID   uint      `gorm:"not null" json:"author_id"`
	Status     string    `gorm:"default:active" json:"status"`
	ViewsCount int       `gorm:"default:0" json:"views_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Announcement struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"not null" json:"title"`
	Content          string    `gorm:"not null" json:"content"`
	AnnouncementType string    `gorm:"not null" json:"announcement_type"`
	StartDate        time.Time `gorm:"not null" json:"start_date"`
	EndDate          time.Time `gorm:"not null" json:"end_date"`
	AuthorID         uint      `gorm:"not null" json:"author_id"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}
