// handlers/notifications.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/middleware"
	"ecoverse/models"
)

// GetNotifications lists the user's notifications, newest first.
func GetNotifications(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var notifications []models.Notification
	if err := database.GetDB().Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&notifications).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load notifications"})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"notifications": notifications,
		"total":         len(notifications),
	})
}

// GetUnreadCount returns the user's unread notification count.
func GetUnreadCount(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var count int64
	if err := database.GetDB().Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to count notifications"})
	}

	return c.JSON(fiber.Map{"success": true, "unread_count": count})
}

// MarkNotificationRead marks one notification as read. Only the owner can.
func MarkNotificationRead(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	notificationID, err := c.ParamsInt("id")
	if err != nil || notificationID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid notification id"})
	}

	db := database.GetDB()
	var notification models.Notification
	if err := db.Where("id = ? AND user_id = ?", notificationID, userID).First(&notification).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Bildirishnoma topilmadi!"})
	}

	if err := db.Model(&notification).Update("is_read", true).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update notification"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// MarkAllNotificationsRead marks every unread notification as read.
func MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	result := database.GetDB().Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update notifications"})
	}

	return c.JSON(fiber.Map{"success": true, "marked": result.RowsAffected})
}
