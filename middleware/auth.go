// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "ecoverse-secret-change-in-production"
	}
	return []byte(secret)
}

func parseToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(401, "Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fiber.NewError(401, "Invalid authorization header format")
	}

	return ParseTokenString(parts[1])
}

// ParseTokenString validates a raw JWT. Used where there is no Authorization
// header to read from, like websocket upgrades carrying the token in the query.
func ParseTokenString(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(401, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(401, "Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, fiber.NewError(401, "Token expired")
	}

	return claims, nil
}

func AuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("isAdmin", claims["is_admin"])

	return c.Next()
}

func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	isAdmin, ok := claims["is_admin"].(bool)
	if !ok || !isAdmin {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Admin huquqi yo'q"})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("isAdmin", true)

	return c.Next()
}

func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	if id, ok := userID.(float64); ok {
		return uint(id), nil
	}

	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

func GetUsername(c *fiber.Ctx) (string, error) {
	username := c.Locals("username")
	if username == nil {
		return "", fiber.NewError(401, "User not authenticated")
	}

	if name, ok := username.(string); ok {
		return name, nil
	}

	return "", fiber.NewError(401, "Invalid username format")
}

func IsAdmin(c *fiber.Ctx) bool {
	isAdmin := c.Locals("isAdmin")
	if isAdmin == nil {
		return false
	}

	if admin, ok := isAdmin.(bool); ok {
		return admin
	}

	return false
}
