// services/rotation.go - Daily rotation and day-boundary reset
package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"ecoverse/models"
)

// Energy restored to every user at the day boundary, capped at MaxEnergy.
const (
	MaxEnergy        = 100
	DailyEnergyRegen = 50
)

// DateOnly truncates t to its UTC calendar date. All rotation and progress
// rows are keyed by this value.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EnsureTodayRotation creates today's DailyTask row if it does not exist:
// 3 distinct active daily tasks and 1 active quiz task, picked at random.
// Idempotent; returns ErrRotationUnavailable when the catalog is too small.
func EnsureTodayRotation(db *gorm.DB) (*models.DailyTask, error) {
	today := DateOnly(time.Now())

	var existing models.DailyTask
	err := db.Where("date = ?", today).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var dailyTasks []models.Task
	if err := db.Where("task_type = ? AND is_active = ?", models.TaskTypeDaily, true).Find(&dailyTasks).Error; err != nil {
		return nil, err
	}
	var quizTasks []models.Task
	if err := db.Where("task_type = ? AND is_active = ?", models.TaskTypeQuiz, true).Find(&quizTasks).Error; err != nil {
		return nil, err
	}

	if len(dailyTasks) < 3 || len(quizTasks) < 1 {
		return nil, ErrRotationUnavailable
	}

	perm := rand.Perm(len(dailyTasks))
	quiz := quizTasks[rand.Intn(len(quizTasks))]

	rotation := models.DailyTask{
		Date:    today,
		Task1ID: dailyTasks[perm[0]].ID,
		Task2ID: dailyTasks[perm[1]].ID,
		Task3ID: dailyTasks[perm[2]].ID,
		Quiz1ID: quiz.ID,
	}

	if err := db.Create(&rotation).Error; err != nil {
		// A concurrent caller may have won the unique-date race; re-read.
		if readErr := db.Where("date = ?", today).First(&existing).Error; readErr == nil {
			return &existing, nil
		}
		return nil, err
	}

	log.Printf("✅ Kunlik topshiriqlar yaratildi: %s", today.Format("2006-01-02"))
	return &rotation, nil
}

// TodayRotation returns today's rotation with its tasks preloaded, creating
// it on demand.
func TodayRotation(db *gorm.DB) (*models.DailyTask, error) {
	if _, err := EnsureTodayRotation(db); err != nil {
		return nil, err
	}

	today := DateOnly(time.Now())
	var rotation models.DailyTask
	err := db.Preload("Task1").Preload("Task2").Preload("Task3").Preload("Quiz1").
		Where("date = ?", today).First(&rotation).Error
	if err != nil {
		return nil, err
	}
	return &rotation, nil
}

// RunDailyReset applies the day-boundary rollover: regenerates the rotation,
// then for every user not yet reset today creates a zeroed DailyProgress row
// and restores energy. Idempotent per user via last_daily_reset, so a missed
// or repeated tick is safe.
func RunDailyReset(db *gorm.DB) error {
	now := time.Now().UTC()
	today := DateOnly(now)
	log.Printf("🔄 Kunlik yangilanish boshlandi: %s", today.Format("2006-01-02"))

	if _, err := EnsureTodayRotation(db); err != nil && !errors.Is(err, ErrRotationUnavailable) {
		return fmt.Errorf("ensure rotation: %w", err)
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return err
	}

	for i := range users {
		user := &users[i]
		if user.LastDailyReset != nil && !DateOnly(*user.LastDailyReset).Before(today) {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			progress := models.DailyProgress{UserID: user.ID, Date: today}
			if err := tx.Where("user_id = ? AND date = ?", user.ID, today).
				FirstOrCreate(&progress).Error; err != nil {
				return err
			}

			energy := user.Energy + DailyEnergyRegen
			if energy > MaxEnergy {
				energy = MaxEnergy
			}
			return tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
				"energy":           energy,
				"last_daily_reset": now,
			}).Error
		})
		if err != nil {
			log.Printf("Daily reset failed for user %d: %v", user.ID, err)
			continue
		}
		user.LastDailyReset = &now
	}

	log.Printf("✅ Kunlik yangilanish bajarildi: %s", today.Format("2006-01-02"))
	return nil
}

// RearmUserTasks re-arms the user's completion records for today's rotation:
// records completed on an earlier day are cleared, missing records are
// created pending. Called when the user loads their task list.
func RearmUserTasks(db *gorm.DB, userID uint) error {
	rotation, err := EnsureTodayRotation(db)
	if err != nil {
		if errors.Is(err, ErrRotationUnavailable) {
			return nil
		}
		return err
	}

	today := DateOnly(time.Now())
	taskIDs := []uint{rotation.Task1ID, rotation.Task2ID, rotation.Task3ID, rotation.Quiz1ID}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, taskID := range taskIDs {
			var userTask models.UserTask
			err := tx.Where("user_id = ? AND task_id = ?", userID, taskID).First(&userTask).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&models.UserTask{UserID: userID, TaskID: taskID}).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			if userTask.CompletedAt != nil && !DateOnly(*userTask.CompletedAt).Equal(today) {
				if err := tx.Model(&userTask).Updates(map[string]interface{}{
					"completed":    false,
					"completed_at": nil,
				}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
