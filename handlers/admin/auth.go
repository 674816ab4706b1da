// handlers/admin/auth.go
package admin

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ecoverse/database"
	"ecoverse/middleware"
	"ecoverse/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an admin account and issues a short-lived token.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	var user models.User
	if err := database.GetDB().Where("username = ?", req.Username).First(&user).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Login yoki parol noto'g'ri!"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Login yoki parol noto'g'ri!"})
	}

	if !user.IsAdmin {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Admin huquqi yo'q"})
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "ecoverse-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": true,
		"jti":      uuid.New().String(),
		"exp":      time.Now().Add(8 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"is_admin": true,
		},
	})
}

// VerifyToken confirms the caller's token still grants admin access.
func VerifyToken(c *fiber.Ctx) error {
	username, err := middleware.GetUsername(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"username": username,
		"is_admin": middleware.IsAdmin(c),
	})
}
