// services/service_test.go - Shared test fixtures
package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecoverse/database"
	"ecoverse/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, coins, energy int) *models.User {
	t.Helper()

	user := models.User{
		Username: "test_user",
		Email:    "test@example.com",
		Password: "hashed",
		Role:     models.RoleChild,
		Coins:    coins,
		Energy:   energy,
		Level:    1,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func createTask(t *testing.T, db *gorm.DB, taskType string, rewardCoins, energyCost int) *models.Task {
	t.Helper()

	task := models.Task{
		Title:       "Chiqindilarni saralash",
		Description: "Uy chiqindilarini turlarga ajrating",
		RewardCoins: rewardCoins,
		EnergyCost:  energyCost,
		Difficulty:  "easy",
		TaskType:    taskType,
		Category:    "eco",
		IsActive:    true,
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return &task
}

func createItem(t *testing.T, db *gorm.DB, price, energyBoost int) *models.Item {
	t.Helper()

	item := models.Item{
		Name:        "Eko shlyapa",
		Price:       price,
		ItemType:    models.ItemTypeHat,
		EnergyBoost: energyBoost,
		IsActive:    true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	return &item
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	t.Helper()

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	return &user
}
