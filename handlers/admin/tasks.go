// handlers/admin/tasks.go
package admin

import (
	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/models"
)

type TaskRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	RewardCoins  int    `json:"reward_coins"`
	EnergyCost   int    `json:"energy_cost"`
	Difficulty   string `json:"difficulty"`
	QuizRequired *bool  `json:"quiz_required"`
	DailyReset   *bool  `json:"daily_reset"`
	TaskType     string `json:"task_type"`
	Category     string `json:"category"`
}

func validDifficulty(d string) bool {
	return d == "easy" || d == "medium" || d == "hard"
}

func validTaskType(t string) bool {
	return t == models.TaskTypeDaily || t == models.TaskTypeRegular || t == models.TaskTypeQuiz
}

// GetTasks lists every task including inactive ones.
func GetTasks(c *fiber.Ctx) error {
	var tasks []models.Task
	if err := database.GetDB().Order("id").Find(&tasks).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load tasks"})
	}

	return c.JSON(fiber.Map{"success": true, "tasks": tasks, "total": len(tasks)})
}

// AddTask creates a task.
func AddTask(c *fiber.Ctx) error {
	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Title == "" || req.Description == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Nomi va tavsifi majburiy!"})
	}
	if req.RewardCoins <= 0 || req.EnergyCost < 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Mukofot va energiya qiymatlari noto'g'ri!"})
	}
	if !validDifficulty(req.Difficulty) {
		req.Difficulty = "easy"
	}
	if !validTaskType(req.TaskType) {
		req.TaskType = models.TaskTypeRegular
	}
	if req.Category == "" {
		req.Category = "eco"
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		RewardCoins: req.RewardCoins,
		EnergyCost:  req.EnergyCost,
		Difficulty:  req.Difficulty,
		TaskType:    req.TaskType,
		Category:    req.Category,
		IsActive:    true,
	}
	if req.QuizRequired != nil {
		task.QuizRequired = *req.QuizRequired
	}
	if req.DailyReset != nil {
		task.DailyReset = *req.DailyReset
	}

	if err := database.GetDB().Create(&task).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create task"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "task": task, "message": "Topshiriq qo'shildi!"})
}

// UpdateTask updates an existing task's fields.
func UpdateTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task id"})
	}

	db := database.GetDB()
	var task models.Task
	if err := db.First(&task, taskID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Topshiriq topilmadi!"})
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.RewardCoins > 0 {
		updates["reward_coins"] = req.RewardCoins
	}
	if req.EnergyCost >= 0 {
		updates["energy_cost"] = req.EnergyCost
	}
	if validDifficulty(req.Difficulty) {
		updates["difficulty"] = req.Difficulty
	}
	if validTaskType(req.TaskType) {
		updates["task_type"] = req.TaskType
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.QuizRequired != nil {
		updates["quiz_required"] = *req.QuizRequired
	}
	if req.DailyReset != nil {
		updates["daily_reset"] = *req.DailyReset
	}

	if err := db.Model(&task).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update task"})
	}

	return c.JSON(fiber.Map{"success": true, "task": task, "message": "Topshiriq yangilandi!"})
}

// ToggleTask flips a task's active flag instead of deleting it.
func ToggleTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task id"})
	}

	db := database.GetDB()
	var task models.Task
	if err := db.First(&task, taskID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Topshiriq topilmadi!"})
	}

	if err := db.Model(&task).Update("is_active", !task.IsActive).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to toggle task"})
	}

	return c.JSON(fiber.Map{"success": true, "is_active": !task.IsActive})
}

// DeleteTask removes a task. Rows in today's rotation keep their foreign keys,
// so prefer ToggleTask for anything that has ever rotated.
func DeleteTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task id"})
	}

	db := database.GetDB()
	var task models.Task
	if err := db.First(&task, taskID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Topshiriq topilmadi!"})
	}

	if err := db.Delete(&task).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete task"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Topshiriq o'chirildi!"})
}
