// handlers/auth.go
package handlers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ecoverse/database"
	"ecoverse/models"
	"ecoverse/services"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Success     bool     `json:"success"`
	Token       string   `json:"token,omitempty"`
	User        UserInfo `json:"user,omitempty"`
	StreakBonus int      `json:"streak_bonus,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type UserInfo struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsAdmin    bool   `json:"is_admin"`
	Coins      int    `json:"coins"`
	Energy     int    `json:"energy"`
	Streak     int    `json:"streak"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
}

func userInfo(user models.User) UserInfo {
	return UserInfo{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		IsAdmin:    user.IsAdmin,
		Coins:      user.Coins,
		Energy:     user.Energy,
		Streak:     user.Streak,
		Level:      user.Level,
		Experience: user.Experience,
	}
}

// Login authenticates a user and applies the daily login streak.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username and password required",
		})
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Login yoki parol noto'g'ri!",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Error:   "Login yoki parol noto'g'ri!",
		})
	}

	now := time.Now().UTC()
	bonus := services.ApplyLoginStreak(&user, now)
	user.LastLogin = &now

	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to update login state",
		})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success:     true,
		Token:       token,
		User:        userInfo(user),
		StreakBonus: bonus,
	})
}

// Register creates a new user account. Children start with 100 coins,
// adults with 50, everyone with full energy.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Username, email and password required",
		})
	}

	if len(req.Password) < 6 {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Password must be at least 6 characters",
		})
	}

	role := req.Role
	if role != models.RoleChild && role != models.RoleAdult {
		role = models.RoleChild
	}

	db := database.GetDB()

	var existing models.User
	if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Bu foydalanuvchi nomi band!",
		})
	}
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   "Bu email band!",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to hash password",
		})
	}

	startingCoins := 50
	if role == models.RoleChild {
		startingCoins = 100
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
		Coins:    startingCoins,
		Energy:   100,
		Level:    1,
	}

	if err := db.Create(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to create account",
		})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User:    userInfo(user),
	})
}

func generateToken(user models.User) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "ecoverse-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
		"jti":      uuid.New().String(),
		"exp":      time.Now().Add(time.Hour * 720).Unix(), // 30 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
