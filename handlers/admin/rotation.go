// handlers/admin/rotation.go
package admin

import (
	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/services"
)

// GenerateDailyTasks creates today's rotation if it does not exist yet.
func GenerateDailyTasks(c *fiber.Ctx) error {
	rotation, err := services.EnsureTodayRotation(database.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Bugungi topshiriqlar tayyor!",
		"daily_tasks": rotation,
	})
}

// RunDailyReset triggers the midnight reset by hand. Users already reset today
// are skipped, so repeated calls are harmless.
func RunDailyReset(c *fiber.Ctx) error {
	if err := services.RunDailyReset(database.GetDB()); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Kunlik yangilash bajarildi!"})
}
