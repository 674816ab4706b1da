// handlers/leaderboard.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/models"
)

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Coins    int    `json:"coins"`
	Level    int    `json:"level"`
	Streak   int    `json:"streak"`
}

// GetLeaderboard returns the top 20 children ranked by coins.
func GetLeaderboard(c *fiber.Ctx) error {
	var users []models.User
	if err := database.GetDB().
		Where("role = ?", models.RoleChild).
		Order("coins DESC").Limit(20).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load leaderboard"})
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			Username: u.Username,
			Avatar:   u.Avatar,
			Coins:    u.Coins,
			Level:    u.Level,
			Streak:   u.Streak,
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"leaderboard": entries,
		"total":       len(entries),
	})
}
