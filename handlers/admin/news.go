// handlers/admin/news.go
package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/middleware"
	"ecoverse/models"
)

type NewsRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	ImagePath string `json:"image_path"`
	Status    string `json:"status"`
}

type AnnouncementRequest struct {
	Title            string `json:"title"`
	Content          string `json:"content"`
	AnnouncementType string `json:"announcement_type"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}

// GetNews lists all news regardless of status.
func GetNews(c *fiber.Ctx) error {
	var news []models.News
	if err := database.GetDB().Order("created_at DESC").Find(&news).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load news"})
	}

	return c.JSON(fiber.Map{"success": true, "news": news, "total": len(news)})
}

// AddNews creates a news item authored by the calling admin.
func AddNews(c *fiber.Ctx) error {
	authorID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Title == "" || req.Content == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Sarlavha va matn majburiy!"})
	}
	if req.Category == "" {
		req.Category = "eco"
	}
	if req.Status != "active" && req.Status != "draft" && req.Status != "archived" {
		req.Status = "active"
	}

	item := models.News{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		ImagePath: req.ImagePath,
		AuthorID:  authorID,
		Status:    req.Status,
	}
	if err := database.GetDB().Create(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create news"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "news": item, "message": "Yangilik qo'shildi!"})
}

// UpdateNews updates a news item's fields.
func UpdateNews(c *fiber.Ctx) error {
	newsID, err := c.ParamsInt("id")
	if err != nil || newsID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid news id"})
	}

	db := database.GetDB()
	var item models.News
	if err := db.First(&item, newsID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Yangilik topilmadi!"})
	}

	var req NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.ImagePath != "" {
		updates["image_path"] = req.ImagePath
	}
	if req.Status == "active" || req.Status == "draft" || req.Status == "archived" {
		updates["status"] = req.Status
	}

	if err := db.Model(&item).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update news"})
	}

	return c.JSON(fiber.Map{"success": true, "news": item, "message": "Yangilik yangilandi!"})
}

// DeleteNews removes a news item.
func DeleteNews(c *fiber.Ctx) error {
	newsID, err := c.ParamsInt("id")
	if err != nil || newsID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid news id"})
	}

	db := database.GetDB()
	var item models.News
	if err := db.First(&item, newsID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Yangilik topilmadi!"})
	}

	if err := db.Delete(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete news"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Yangilik o'chirildi!"})
}

// GetAnnouncements lists all announcements regardless of window.
func GetAnnouncements(c *fiber.Ctx) error {
	var announcements []models.Announcement
	if err := database.GetDB().Order("start_date DESC").Find(&announcements).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load announcements"})
	}

	return c.JSON(fiber.Map{"success": true, "announcements": announcements, "total": len(announcements)})
}

// AddAnnouncement creates an announcement with an active date window.
func AddAnnouncement(c *fiber.Ctx) error {
	authorID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Title == "" || req.Content == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Sarlavha va matn majburiy!"})
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Boshlanish sanasi noto'g'ri (YYYY-MM-DD)"})
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Tugash sanasi noto'g'ri (YYYY-MM-DD)"})
	}
	if end.Before(start) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Tugash sanasi boshlanishdan oldin bo'lishi mumkin emas!"})
	}

	announcementType := req.AnnouncementType
	if announcementType == "" {
		announcementType = "info"
	}

	item := models.Announcement{
		Title:            req.Title,
		Content:          req.Content,
		AnnouncementType: announcementType,
		StartDate:        start,
		EndDate:          end.Add(24*time.Hour - time.Second),
		AuthorID:         authorID,
		IsActive:         true,
	}
	if err := database.GetDB().Create(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create announcement"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "announcement": item, "message": "E'lon qo'shildi!"})
}

// ToggleAnnouncement flips an announcement's active flag.
func ToggleAnnouncement(c *fiber.Ctx) error {
	announcementID, err := c.ParamsInt("id")
	if err != nil || announcementID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid announcement id"})
	}

	db := database.GetDB()
	var item models.Announcement
	if err := db.First(&item, announcementID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "E'lon topilmadi!"})
	}

	if err := db.Model(&item).Update("is_active", !item.IsActive).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to toggle announcement"})
	}

	return c.JSON(fiber.Map{"success": true, "is_active": !item.IsActive})
}

// DeleteAnnouncement removes an announcement.
func DeleteAnnouncement(c *fiber.Ctx) error {
	announcementID, err := c.ParamsInt("id")
	if err != nil || announcementID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid announcement id"})
	}

	db := database.GetDB()
	var item models.Announcement
	if err := db.First(&item, announcementID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "E'lon topilmadi!"})
	}

	if err := db.Delete(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete announcement"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "E'lon o'chirildi!"})
}
