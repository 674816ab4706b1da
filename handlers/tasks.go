// handlers/tasks.go
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/middleware"
	"ecoverse/models"
	"ecoverse/services"
)

// GetTodayTasks re-arms the user's daily completion flags and returns today's
// rotation alongside the full active catalog.
func GetTodayTasks(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := database.GetDB()

	if err := services.RearmUserTasks(db, userID); err != nil {
		return serviceError(c, err)
	}

	rotation, err := services.TodayRotation(db)
	if err != nil {
		return serviceError(c, err)
	}

	var completed []models.UserTask
	if err := db.Where("user_id = ? AND completed = ?", userID, true).Find(&completed).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load completion state"})
	}
	completedIDs := make([]uint, 0, len(completed))
	for _, ut := range completed {
		completedIDs = append(completedIDs, ut.TaskID)
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"daily_tasks":        []models.Task{rotation.Task1, rotation.Task2, rotation.Task3},
		"daily_quiz":         rotation.Quiz1,
		"completed_task_ids": completedIDs,
	})
}

// GetTasks lists active tasks, optionally filtered by type.
func GetTasks(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Where("is_active = ?", true)
	if taskType := c.Query("type"); taskType != "" {
		query = query.Where("task_type = ?", taskType)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load tasks"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"tasks":   tasks,
		"total":   len(tasks),
	})
}

// CompleteTask applies the task reward for the authenticated user.
func CompleteTask(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task id"})
	}

	reward, err := services.CompleteTask(database.GetDB(), userID, uint(taskID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        reward.Message,
		"new_coins":      reward.NewCoins,
		"new_energy":     reward.NewEnergy,
		"new_level":      reward.NewLevel,
		"new_experience": reward.NewExperience,
	})
}

// GetUserStats returns the authenticated user's economy snapshot.
func GetUserStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"coins":      user.Coins,
		"energy":     user.Energy,
		"streak":     user.Streak,
		"level":      user.Level,
		"experience": user.Experience,
	})
}

// GetDailyProgress returns today's counters for the authenticated user,
// zeros when no row exists yet.
func GetDailyProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := database.GetDB()
	today := services.DateOnly(time.Now())

	var progress models.DailyProgress
	if err := db.Where("user_id = ? AND date = ?", userID, today).First(&progress).Error; err != nil {
		return c.JSON(fiber.Map{
			"success":           true,
			"tasks_completed":   0,
			"quizzes_completed": 0,
			"coins_earned":      0,
		})
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"tasks_completed":   progress.TasksCompleted,
		"quizzes_completed": progress.QuizzesCompleted,
		"coins_earned":      progress.CoinsEarned,
	})
}
