// database/seed.go - Demo data, mirrors the original EcoVerse catalog
package database

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ecoverse/models"
)

// SeedDemoData populates demo users, the task catalog, shop items, energy
// packs, news and announcements. Runs only against an empty users table so
// restarts keep existing state unless DB_RESET forced a wipe.
func SeedDemoData(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("🌱 Seeding demo data...")

	users := []models.User{
		{Username: "admin", Email: "admin@ecoverse.com", Password: mustHash("admin123"), Role: models.RoleAdmin, Coins: 1000, Energy: 100, IsAdmin: true},
		{Username: "eco_bola", Email: "bola@ecoverse.com", Password: mustHash("bola123"), Role: models.RoleChild, Coins: 150, Energy: 100},
		{Username: "eco_katta", Email: "katta@ecoverse.com", Password: mustHash("katta123"), Role: models.RoleAdult, Coins: 80, Energy: 100},
	}

	tasks := []models.Task{
		// Kunlik topshiriqlar
		{Title: "Suv tejash", Description: "Bugun dush vaqtingizni 5 daqiqaga kamaytiring", RewardCoins: 15, EnergyCost: 8, Difficulty: "easy", QuizRequired: false, DailyReset: true, TaskType: models.TaskTypeDaily, Category: "water", IsActive: true},
		{Title: "Energiya tejash", Description: "1 soat davomida keraksiz qurilmalarni o'chiring", RewardCoins: 20, EnergyCost: 10, Difficulty: "easy", QuizRequired: false, DailyReset: true, TaskType: models.TaskTypeDaily, Category: "energy", IsActive: true},
		{Title: "Plastikni qayta ishlash", Description: "3 ta plastik idishni qayta ishlash uchun ajrating", RewardCoins: 25, EnergyCost: 12, Difficulty: "medium", QuizRequired: false, DailyReset: true, TaskType: models.TaskTypeDaily, Category: "recycling", IsActive: true},

		// Doimiy topshiriqlar
		{Title: "Daraxt ekish", Description: "Yashil maydonga 1 ta daraxt eking", RewardCoins: 50, EnergyCost: 25, Difficulty: "hard", QuizRequired: true, TaskType: models.TaskTypeRegular, Category: "planting", IsActive: true},
		{Title: "Kompost yaratish", Description: "Oziq-ovqat chiqindilaridan kompost tayyorlang", RewardCoins: 40, EnergyCost: 20, Difficulty: "medium", QuizRequired: true, TaskType: models.TaskTypeRegular, Category: "composting", IsActive: true},
		{Title: "Velosiped haydash", Description: "1 kun davomida mashina o'rniga velosiped haydang", RewardCoins: 35, EnergyCost: 18, Difficulty: "medium", QuizRequired: true, TaskType: models.TaskTypeRegular, Category: "transport", IsActive: true},

		// Test topshiriqlari
		{Title: "Ekologik bilim testi", Description: "Ekologiya haqidagi bilimingizni sinab ko'ring", RewardCoins: 30, EnergyCost: 15, Difficulty: "easy", QuizRequired: true, TaskType: models.TaskTypeQuiz, Category: "knowledge", IsActive: true},
		{Title: "Qayta ishlash testi", Description: "Qayta ishlash qoidalarini bilasizmi?", RewardCoins: 45, EnergyCost: 22, Difficulty: "medium", QuizRequired: true, TaskType: models.TaskTypeQuiz, Category: "recycling", IsActive: true},
		{Title: "Energiya tejash testi", Description: "Energiya tejash usullarini bilasizmi?", RewardCoins: 60, EnergyCost: 30, Difficulty: "hard", QuizRequired: true, TaskType: models.TaskTypeQuiz, Category: "energy", IsActive: true},
	}

	items := []models.Item{
		{Name: "Yashil Kepka", Price: 30, ItemType: models.ItemTypeHat, ImagePath: "images/hat_green.png", IsActive: true},
		{Name: "Ko'k Kepka", Price: 35, ItemType: models.ItemTypeHat, ImagePath: "images/hat_blue.png", IsActive: true},
		{Name: "Qizil Kepka", Price: 40, ItemType: models.ItemTypeHat, ImagePath: "images/hat_red.png", IsActive: true},
		{Name: "Yashil Futbolka", Price: 45, ItemType: models.ItemTypeClothes, ImagePath: "images/shirt_green.png", IsActive: true},
		{Name: "Ko'k Futbolka", Price: 50, ItemType: models.ItemTypeClothes, ImagePath: "images/shirt_blue.png", IsActive: true},
		{Name: "Qora Futbolka", Price: 55, ItemType: models.ItemTypeClothes, ImagePath: "images/shirt_black.png", IsActive: true},
		{Name: "Krossovka", Price: 60, ItemType: models.ItemTypeShoes, ImagePath: "images/shoes_sneakers.png", IsActive: true},
		{Name: "Qizil krossovka", Price: 65, ItemType: models.ItemTypeShoes, ImagePath: "images/shoes_red.png", IsActive: true},
		{Name: "Oq Krossovka", Price: 70, ItemType: models.ItemTypeShoes, ImagePath: "images/shoes_white.png", IsActive: true},
		{Name: "Jins Shim", Price: 70, ItemType: models.ItemTypeClothes, ImagePath: "images/pants_jeans.png", IsActive: true},
		{Name: "Yashil Shim", Price: 75, ItemType: models.ItemTypeClothes, ImagePath: "images/pants_green.png", IsActive: true},
		{Name: "Rukzak", Price: 80, ItemType: models.ItemTypeAccessory, ImagePath: "images/backpack.png", IsActive: true},
		{Name: "Quyosh ko'zoynak", Price: 85, ItemType: models.ItemTypeAccessory, ImagePath: "images/sunglasses.png", IsActive: true},
		{Name: "Sport soati", Price: 90, ItemType: models.ItemTypeAccessory, ImagePath: "images/sport_watch.png", IsActive: true},
	}

	packs := []models.EnergyPack{
		{Name: "Kichik Energiya Paketi", EnergyAmount: 20, Price: 15, Description: "20 energiya", IsActive: true},
		{Name: "O'rta Energiya Paketi", EnergyAmount: 50, Price: 35, Description: "50 energiya", IsActive: true},
		{Name: "Katta Energiya Paketi", EnergyAmount: 100, Price: 60, Description: "100 energiya", IsActive: true},
	}

	now := time.Now().UTC()
	news := []models.News{
		{Title: "EcoVerse yangi kunlik topshiriqlar bilan yangilandi!", Content: "Har kuni yangi ekologik topshiriqlar va testlar bilan tajribangizni boyiting!", Category: "yangilik", AuthorID: 1, ImagePath: "images/news_update.jpg", Status: "active"},
		{Title: "Yangi ekologik kiyimlar do'konda", Content: "Do'konimizda yangi ekologik toza materiallardan tayyorlangan kiyimlar paydo bo'ldi", Category: "yangilik", AuthorID: 1, ImagePath: "images/new_clothes.jpg", Status: "active"},
	}

	announcements := []models.Announcement{
		{Title: "Tizim yangilanishi", Content: "30-dekabr kuni soat 23:00 dan 31-dekabr soat 02:00 gacha tizimda texnik ishlar olib boriladi.", AnnouncementType: "warning", StartDate: now, EndDate: now.AddDate(0, 0, 7), AuthorID: 1, IsActive: true},
		{Title: "Yangi yil aksiyasi", Content: "Yangi yil munosabati bilan barcha topshiriqlardan olinadigan coinlar 2 baravar oshirildi!", AnnouncementType: "success", StartDate: now, EndDate: now.AddDate(0, 0, 14), AuthorID: 1, IsActive: true},
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return err
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if err := tx.Create(&packs).Error; err != nil {
			return err
		}
		if err := tx.Create(&news).Error; err != nil {
			return err
		}
		if err := tx.Create(&announcements).Error; err != nil {
			return err
		}
		return nil
	})
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}
	return string(hash)
}
