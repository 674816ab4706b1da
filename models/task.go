// models/task.go
package models

import (
	"time"
)

// Task types
const (
	TaskTypeDaily   = "daily"
	TaskTypeRegular = "regular"
	TaskTypeQuiz    = "quiz"
)

type Task struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"not null" json:"description"`
	RewardCoins  int    `gorm:"default:10" json:"reward_coins"`
	EnergyCost   int    `gorm:"default:10" json:"energy_cost"`
	Difficulty   string `gorm:"default:easy" json:"difficulty"`
	QuizRequired bool   `gorm:"default:true" json:"quiz_required"`
	DailyReset   bool   `gorm:"default:false" json:"daily_reset"`
	TaskType     string `gorm:"default:regular;index" json:"task_type"`
	Category     string `gorm:"default:eco" json:"category"`
	IsActive     bool   `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DailyTask is the day's rotation: three daily tasks and one quiz task.
// At most one row per calendar date, immutable after creation.
type DailyTask struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"uniqueIndex;not null" json:"date"`
	Task1ID   uint      `gorm:"not null" json:"task_1_id"`
	Task2ID   uint      `gorm:"not null" json:"task_2_id"`
	Task3ID   uint      `gorm:"not null" json:"task_3_id"`
	Quiz1ID   uint      `gorm:"not null" json:"quiz_1_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Task1 Task `gorm:"foreignKey:Task1ID" json:"task_1,omitempty"`
	Task2 Task `gorm:"foreignKey:Task2ID" json:"task_2,omitempty"`
	Task3 Task `gorm:"foreignKey:Task3ID" json:"task_3,omitempty"`
	Quiz1 Task `gorm:"foreignKey:Quiz1ID" json:"quiz_1,omitempty"`
}

// UserTask tracks per-user completion of a task. One row per (user, task).
type UserTask struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_user_task" json:"user_id"`
	TaskID      uint       `gorm:"not null;uniqueIndex:idx_user_task" json:"task_id"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// DailyProgress accumulates per-user counters for one day. One row per (user, date).
type DailyProgress struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;uniqueIndex:idx_user_date" json:"user_id"`
	Date              time.Time `gorm:"not null;uniqueIndex:idx_user_date" json:"date"`
	TasksCompleted    int       `gorm:"default:0" json:"tasks_completed"`
	QuizzesCompleted  int       `gorm:"default:0" json:"quizzes_completed"`
	CoinsEarned       int       `gorm:"default:0" json:"coins_earned"`
	CreatedAt         time.Time `json:"created_at"`
}
