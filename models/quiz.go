// models/quiz.go
package models

import (
	"time"
)

// QuizResult is append-only, one row per submission.
type QuizResult struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Score          int       `gorm:"not null" json:"score"`
	CorrectAnswers int       `gorm:"not null" json:"correct_answers"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CoinsEarned    int       `gorm:"not null" json:"coins_earned"`
	TaskID         *uint     `json:"task_id,omitempty"`
	Difficulty     string    `gorm:"default:medium" json:"difficulty"`
	CompletedAt    time.Time `json:"completed_at"`
}
