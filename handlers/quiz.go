// handlers/quiz.go
package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/middleware"
	"ecoverse/models"
	"ecoverse/services"
)

type SubmitQuizRequest struct {
	Results        []map[string]interface{} `json:"results"`
	Score          int                      `json:"score"`
	CorrectCount   int                      `json:"correct_count"`
	TotalQuestions int                      `json:"total_questions"`
	TaskID         *uint                    `json:"task_id"`
	Difficulty     string                   `json:"difficulty"`
}

// GetQuestions serves up to 5 quiz questions. Difficulty comes from the
// query, the linked task, or the user's level, in that order.
func GetQuestions(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	difficulty := strings.ToLower(c.Query("difficulty"))
	if difficulty == "" {
		difficulty = services.DefaultDifficultyForLevel(user.Level)
	}

	if taskID := c.QueryInt("task_id"); taskID > 0 {
		var task models.Task
		if err := db.First(&task, taskID).Error; err == nil {
			difficulty = task.Difficulty
		}
	}

	questions := services.SelectQuestions(services.LoadQuestions(), difficulty)
	if len(questions) == 0 {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Savollar topilmadi!"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"questions":  questions,
		"total":      len(questions),
		"difficulty": difficulty,
		"user_level": user.Level,
	})
}

// SubmitQuiz records a quiz result and applies the reward.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	reward, err := services.SubmitQuiz(database.GetDB(), userID, services.QuizSubmission{
		Score:          req.Score,
		CorrectCount:   req.CorrectCount,
		TotalQuestions: req.TotalQuestions,
		TaskID:         req.TaskID,
		Difficulty:     difficulty,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"score":             req.Score,
		"correct_answers":   req.CorrectCount,
		"total_questions":   req.TotalQuestions,
		"coins_earned":      reward.CoinsEarned,
		"energy_used":       reward.EnergyUsed,
		"experience_gained": reward.ExpGained,
		"new_coins":         reward.NewCoins,
		"new_energy":        reward.NewEnergy,
		"new_experience":    reward.NewExperience,
		"new_level":         reward.NewLevel,
		"level_up":          reward.LevelUp,
		"difficulty":        difficulty,
		"task_completed":    reward.TaskCompleted,
		"message":           reward.Message,
	})
}

// GetQuizHistory lists the user's quiz results, newest first.
func GetQuizHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var results []models.QuizResult
	if err := database.GetDB().Where("user_id = ?", userID).
		Order("completed_at DESC").Limit(50).Find(&results).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load quiz history"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"results": results,
		"total":   len(results),
	})
}
