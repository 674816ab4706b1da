// handlers/news.go
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoverse/database"
	"ecoverse/models"
)

// GetNews lists active news, newest first.
func GetNews(c *fiber.Ctx) error {
	var news []models.News
	if err := database.GetDB().Where("status = ?", "active").
		Order("created_at DESC").Find(&news).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load news"})
	}

	return c.JSON(fiber.Map{"success": true, "news": news, "total": len(news)})
}

// GetNewsDetail returns one news item and bumps its view counter.
func GetNewsDetail(c *fiber.Ctx) error {
	newsID, err := c.ParamsInt("id")
	if err != nil || newsID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid news id"})
	}

	db := database.GetDB()
	var item models.News
	if err := db.Where("id = ? AND status = ?", newsID, "active").First(&item).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Yangilik topilmadi!"})
	}

	if err := db.Model(&item).Update("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update views"})
	}
	item.ViewsCount++

	return c.JSON(fiber.Map{"success": true, "news": item})
}

// GetAnnouncements lists announcements active for the current time window.
func GetAnnouncements(c *fiber.Ctx) error {
	now := time.Now().UTC()

	var announcements []models.Announcement
	if err := database.GetDB().
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("start_date DESC").Find(&announcements).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load announcements"})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"announcements": announcements,
		"total":         len(announcements),
	})
}
