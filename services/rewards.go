// services/rewards.go - Coin/experience arithmetic for tasks and quizzes
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecoverse/models"
)

// Level N requires N*100 experience. Each level gained pays level*50 coins.
const (
	expPerLevel        = 100
	levelUpCoinsFactor = 50
)

// TaskReward is the result of completing a task.
type TaskReward struct {
	Message       string `json:"message"`
	CoinsEarned   int    `json:"coins_earned"`
	ExpGained     int    `json:"experience_gained"`
	LevelsGained  int    `json:"levels_gained"`
	NewCoins      int    `json:"new_coins"`
	NewEnergy     int    `json:"new_energy"`
	NewLevel      int    `json:"new_level"`
	NewExperience int    `json:"new_experience"`
}

// QuizSubmission carries a quiz result for reward calculation.
type QuizSubmission struct {
	Score          int
	CorrectCount   int
	TotalQuestions int
	TaskID         *uint
	Difficulty     string
}

// QuizReward is the result of submitting a quiz.
type QuizReward struct {
	Message       string `json:"message"`
	CoinsEarned   int    `json:"coins_earned"`
	EnergyUsed    int    `json:"energy_used"`
	ExpGained     int    `json:"experience_gained"`
	LevelUp       bool   `json:"level_up"`
	TaskCompleted bool   `json:"task_completed"`
	NewCoins      int    `json:"new_coins"`
	NewEnergy     int    `json:"new_energy"`
	NewLevel      int    `json:"new_level"`
	NewExperience int    `json:"new_experience"`
}

// applyLevelUps drains experience into levels while the current threshold is
// met. Multiple levels can be gained from a single award; leftover experience
// carries over. Returns levels gained and the coin bonus paid out.
func applyLevelUps(user *models.User) (int, int) {
	levels := 0
	bonus := 0
	for user.Experience >= user.Level*expPerLevel {
		user.Experience -= user.Level * expPerLevel
		user.Level++
		levels++
		bonus += user.Level * levelUpCoinsFactor
	}
	user.Coins += bonus
	return levels, bonus
}

// CompleteTask marks the task done for the user and applies the reward:
// energy down by the cost, coins up by the reward, experience up by half the
// reward. Fails without mutation when energy is short or the task is already
// completed. All writes happen in one transaction.
func CompleteTask(db *gorm.DB, userID, taskID uint) (*TaskReward, error) {
	var reward *TaskReward

	err := db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("Topshiriq %w", ErrNotFound)
			}
			return err
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if user.Energy < task.EnergyCost {
			return fmt.Errorf("%w! Kerak: %d, Sizda: %d", ErrInsufficientEnergy, task.EnergyCost, user.Energy)
		}

		var userTask models.UserTask
		err := tx.Where("user_id = ? AND task_id = ?", userID, taskID).First(&userTask).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && userTask.Completed {
			return ErrAlreadyCompleted
		}

		expGained := task.RewardCoins / 2

		user.Energy -= task.EnergyCost
		user.Coins += task.RewardCoins
		user.Experience += expGained
		levels, _ := applyLevelUps(&user)

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		if userTask.ID != 0 {
			if err := tx.Model(&userTask).Updates(map[string]interface{}{
				"completed":    true,
				"completed_at": now,
			}).Error; err != nil {
				return err
			}
		} else {
			userTask = models.UserTask{UserID: userID, TaskID: taskID, Completed: true, CompletedAt: &now}
			if err := tx.Create(&userTask).Error; err != nil {
				return err
			}
		}

		if err := bumpDailyProgress(tx, userID, 1, 0, task.RewardCoins); err != nil {
			return err
		}

		notification := models.Notification{
			UserID:           userID,
			Title:            "✅ Topshiriq Bajarildi!",
			Message:          fmt.Sprintf("\"%s\" topshirig'i bajarildi! +%d coin, +%d tajriba", task.Title, task.RewardCoins, expGained),
			NotificationType: models.NotificationTask,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}

		reward = &TaskReward{
			Message:       fmt.Sprintf("Topshiriq bajarildi! +%d coin, +%d tajriba", task.RewardCoins, expGained),
			CoinsEarned:   task.RewardCoins,
			ExpGained:     expGained,
			LevelsGained:  levels,
			NewCoins:      user.Coins,
			NewEnergy:     user.Energy,
			NewLevel:      user.Level,
			NewExperience: user.Experience,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// quizTier returns the coin award, energy cost and experience for a quiz
// submission by difficulty. Easy is the fallback for unknown strings.
func quizTier(difficulty string, correct int) (coins, energy, exp int) {
	const baseCoins = 20
	const baseEnergy = 15

	switch difficulty {
	case "medium":
		return baseCoins + correct*3, baseEnergy + 5, correct * 8
	case "hard":
		return baseCoins + correct*5, baseEnergy + 10, correct * 12
	default:
		return baseCoins + correct*2, baseEnergy, correct * 5
	}
}

// taskDifficultyBonus is the flat coin bonus for finishing a task-linked quiz.
func taskDifficultyBonus(difficulty string) int {
	switch difficulty {
	case "easy":
		return 10
	case "medium":
		return 15
	case "hard":
		return 20
	}
	return 0
}

// SubmitQuiz applies the quiz reward: coins and experience scale with the
// difficulty tier and correct answers; a linked task adds its own reward plus
// a flat difficulty bonus. The energy cost is checked before any mutation.
// Level-ups use the same carrying loop as CompleteTask.
func SubmitQuiz(db *gorm.DB, userID uint, sub QuizSubmission) (*QuizReward, error) {
	var reward *QuizReward

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		coinsEarned, energyCost, expGained := quizTier(sub.Difficulty, sub.CorrectCount)

		var task *models.Task
		if sub.TaskID != nil {
			var t models.Task
			if err := tx.First(&t, *sub.TaskID).Error; err == nil {
				task = &t
				coinsEarned += t.RewardCoins + taskDifficultyBonus(t.Difficulty)
			}
		}

		if user.Energy < energyCost {
			return fmt.Errorf("%w! Sizda %d energiya bor, kerak: %d", ErrInsufficientEnergy, user.Energy, energyCost)
		}

		user.Coins += coinsEarned
		user.Energy -= energyCost
		if user.Energy < 0 {
			user.Energy = 0
		}
		user.Experience += expGained
		levels, _ := applyLevelUps(&user)

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		result := models.QuizResult{
			UserID:         userID,
			Score:          sub.Score,
			CorrectAnswers: sub.CorrectCount,
			TotalQuestions: sub.TotalQuestions,
			CoinsEarned:    coinsEarned,
			TaskID:         sub.TaskID,
			Difficulty:     sub.Difficulty,
			CompletedAt:    time.Now().UTC(),
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		if task != nil {
			if err := markTaskCompleted(tx, userID, task.ID); err != nil {
				return err
			}
		}

		if err := bumpDailyProgress(tx, userID, 0, 1, coinsEarned); err != nil {
			return err
		}

		message := fmt.Sprintf("Test muvaffaqiyatli yakunlandi! %d/%d savolga to'g'ri javob berdingiz. %d coin yutib oldingiz!",
			sub.CorrectCount, sub.TotalQuestions, coinsEarned)
		if levels > 0 {
			message += fmt.Sprintf(" Tabriklaymiz! Siz %d-darajaga ko'tarildingiz!", user.Level)
		}
		if task != nil {
			message += fmt.Sprintf(" \"%s\" topshirig'i uchun test tamomlandi!", task.Title)
		}

		notification := models.Notification{
			UserID:           userID,
			Title:            "🧠 Test yakunlandi!",
			Message:          message,
			NotificationType: models.NotificationQuiz,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}

		reward = &QuizReward{
			Message:       message,
			CoinsEarned:   coinsEarned,
			EnergyUsed:    energyCost,
			ExpGained:     expGained,
			LevelUp:       levels > 0,
			TaskCompleted: task != nil,
			NewCoins:      user.Coins,
			NewEnergy:     user.Energy,
			NewLevel:      user.Level,
			NewExperience: user.Experience,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// markTaskCompleted flips the user's row for the task to completed, creating
// it when absent.
func markTaskCompleted(tx *gorm.DB, userID, taskID uint) error {
	now := time.Now().UTC()

	var userTask models.UserTask
	err := tx.Where("user_id = ? AND task_id = ?", userID, taskID).First(&userTask).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		userTask = models.UserTask{UserID: userID, TaskID: taskID, Completed: true, CompletedAt: &now}
		return tx.Create(&userTask).Error
	}
	if userTask.Completed {
		return nil
	}
	return tx.Model(&userTask).Updates(map[string]interface{}{
		"completed":    true,
		"completed_at": now,
	}).Error
}

// bumpDailyProgress increments today's counters, creating the row when the
// day's reset has not touched this user yet.
func bumpDailyProgress(tx *gorm.DB, userID uint, tasks, quizzes, coins int) error {
	today := DateOnly(time.Now())

	progress := models.DailyProgress{UserID: userID, Date: today}
	if err := tx.Where("user_id = ? AND date = ?", userID, today).FirstOrCreate(&progress).Error; err != nil {
		return err
	}

	return tx.Model(&progress).Updates(map[string]interface{}{
		"tasks_completed":   gorm.Expr("tasks_completed + ?", tasks),
		"quizzes_completed": gorm.Expr("quizzes_completed + ?", quizzes),
		"coins_earned":      gorm.Expr("coins_earned + ?", coins),
	}).Error
}
