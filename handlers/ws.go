// handlers/ws.go - Live unread-notification feed
package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"ecoverse/database"
	"ecoverse/middleware"
	"ecoverse/models"
)

// WebSocketUpgrade authenticates the upgrade request. The token rides in the
// ?token= query because browsers cannot set headers on websocket connects.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	claims, err := middleware.ParseTokenString(c.Query("token"))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or missing token"})
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token claims"})
	}

	c.Locals("wsUserId", uint(userID))
	return c.Next()
}

// NotificationFeed pushes the unread count every few seconds until the client
// disconnects.
var NotificationFeed = websocket.New(func(conn *websocket.Conn) {
	userID, ok := conn.Locals("wsUserId").(uint)
	if !ok {
		conn.Close()
		return
	}

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	defer conn.Close()

	send := func() bool {
		var count int64
		if err := database.GetDB().Model(&models.Notification{}).
			Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error; err != nil {
			log.Printf("⚠️ websocket count failed for user %d: %v", userID, err)
			return false
		}
		return conn.WriteJSON(fiber.Map{"type": "unread_count", "unread_count": count}) == nil
	}

	if !send() {
		return
	}

	// Reads only serve to detect the close frame.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-ticker.C:
			if !send() {
				return
			}
		}
	}
})
