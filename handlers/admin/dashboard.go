// handlers/admin/dashboard.go
package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/models"
	"ecoverse/services"
)

// GetDashboard returns the counters the admin panel's front page shows.
func GetDashboard(c *fiber.Ctx) error {
	db := database.GetDB()
	today := services.DateOnly(time.Now())

	var userCount, childCount, taskCount, itemCount, newsCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.User{}).Where("role = ?", models.RoleChild).Count(&childCount)
	db.Model(&models.Task{}).Where("is_active = ?", true).Count(&taskCount)
	db.Model(&models.Item{}).Where("is_active = ?", true).Count(&itemCount)
	db.Model(&models.News{}).Where("status = ?", "active").Count(&newsCount)

	type todayTotals struct {
		TasksCompleted   int `json:"tasks_completed"`
		QuizzesCompleted int `json:"quizzes_completed"`
		CoinsEarned      int `json:"coins_earned"`
	}
	var totals todayTotals
	db.Model(&models.DailyProgress{}).
		Select("COALESCE(SUM(tasks_completed),0) as tasks_completed, COALESCE(SUM(quizzes_completed),0) as quizzes_completed, COALESCE(SUM(coins_earned),0) as coins_earned").
		Where("date = ?", today).
		Scan(&totals)

	var quizzesToday int64
	db.Model(&models.QuizResult{}).Where("completed_at >= ?", today).Count(&quizzesToday)

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"total_users":   userCount,
			"total_children": childCount,
			"active_tasks":  taskCount,
			"active_items":  itemCount,
			"active_news":   newsCount,
		},
		"today": fiber.Map{
			"tasks_completed":   totals.TasksCompleted,
			"quizzes_completed": totals.QuizzesCompleted,
			"coins_earned":      totals.CoinsEarned,
			"quiz_submissions":  quizzesToday,
		},
	})
}

// GetUsers lists accounts for the admin panel.
func GetUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var users []models.User
	if err := database.GetDB().Order("id").Limit(limit).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load users"})
	}

	return c.JSON(fiber.Map{"success": true, "users": users, "total": len(users)})
}
