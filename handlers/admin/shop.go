// handlers/admin/shop.go
package admin

import (
	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/models"
)

type ItemRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	ItemType    string `json:"item_type"`
	ImagePath   string `json:"image_path"`
	EnergyBoost int    `json:"energy_boost"`
}

type EnergyPackRequest struct {
	Name         string `json:"name"`
	EnergyAmount int    `json:"energy_amount"`
	Price        int    `json:"price"`
	Description  string `json:"description"`
}

func validItemType(t string) bool {
	switch t {
	case models.ItemTypeHat, models.ItemTypeClothes, models.ItemTypeShoes, models.ItemTypeAccessory:
		return true
	}
	return false
}

// GetItems lists all shop items including inactive ones.
func GetItems(c *fiber.Ctx) error {
	var items []models.Item
	if err := database.GetDB().Order("id").Find(&items).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load items"})
	}

	return c.JSON(fiber.Map{"success": true, "items": items, "total": len(items)})
}

// AddItem creates a shop item.
func AddItem(c *fiber.Ctx) error {
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Name == "" || req.Price <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Nomi va narxi majburiy!"})
	}
	if !validItemType(req.ItemType) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Mahsulot turi noto'g'ri!"})
	}

	item := models.Item{
		Name:        req.Name,
		Price:       req.Price,
		ItemType:    req.ItemType,
		ImagePath:   req.ImagePath,
		EnergyBoost: req.EnergyBoost,
		IsActive:    true,
	}
	if err := database.GetDB().Create(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create item"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "item": item, "message": "Mahsulot qo'shildi!"})
}

// UpdateItem updates a shop item's fields.
func UpdateItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil || itemID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid item id"})
	}

	db := database.GetDB()
	var item models.Item
	if err := db.First(&item, itemID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Mahsulot topilmadi!"})
	}

	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if validItemType(req.ItemType) {
		updates["item_type"] = req.ItemType
	}
	if req.ImagePath != "" {
		updates["image_path"] = req.ImagePath
	}
	if req.EnergyBoost >= 0 {
		updates["energy_boost"] = req.EnergyBoost
	}

	if err := db.Model(&item).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update item"})
	}

	return c.JSON(fiber.Map{"success": true, "item": item, "message": "Mahsulot yangilandi!"})
}

// ToggleItem flips an item's active flag.
func ToggleItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil || itemID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid item id"})
	}

	db := database.GetDB()
	var item models.Item
	if err := db.First(&item, itemID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Mahsulot topilmadi!"})
	}

	if err := db.Model(&item).Update("is_active", !item.IsActive).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to toggle item"})
	}

	return c.JSON(fiber.Map{"success": true, "is_active": !item.IsActive})
}

// DeleteItem removes a shop item. Inventory rows keep the dangling item id, so
// toggling is usually the safer call.
func DeleteItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil || itemID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid item id"})
	}

	db := database.GetDB()
	var item models.Item
	if err := db.First(&item, itemID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Mahsulot topilmadi!"})
	}

	if err := db.Delete(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete item"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Mahsulot o'chirildi!"})
}

// GetAllEnergyPacks lists all energy packs including inactive ones.
func GetAllEnergyPacks(c *fiber.Ctx) error {
	var packs []models.EnergyPack
	if err := database.GetDB().Order("id").Find(&packs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load energy packs"})
	}

	return c.JSON(fiber.Map{"success": true, "energy_packs": packs, "total": len(packs)})
}

// AddEnergyPack creates an energy pack.
func AddEnergyPack(c *fiber.Ctx) error {
	var req EnergyPackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Name == "" || req.EnergyAmount <= 0 || req.Price <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Nomi, energiya va narxi majburiy!"})
	}

	pack := models.EnergyPack{
		Name:         req.Name,
		EnergyAmount: req.EnergyAmount,
		Price:        req.Price,
		Description:  req.Description,
		IsActive:     true,
	}
	if err := database.GetDB().Create(&pack).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create energy pack"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "energy_pack": pack, "message": "Energiya paketi qo'shildi!"})
}

// UpdateEnergyPack updates an energy pack's fields.
func UpdateEnergyPack(c *fiber.Ctx) error {
	packID, err := c.ParamsInt("id")
	if err != nil || packID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid pack id"})
	}

	db := database.GetDB()
	var pack models.EnergyPack
	if err := db.First(&pack, packID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Energiya paketi topilmadi!"})
	}

	var req EnergyPackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.EnergyAmount > 0 {
		updates["energy_amount"] = req.EnergyAmount
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	if err := db.Model(&pack).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update energy pack"})
	}

	return c.JSON(fiber.Map{"success": true, "energy_pack": pack, "message": "Energiya paketi yangilandi!"})
}

// DeleteEnergyPack removes an energy pack.
func DeleteEnergyPack(c *fiber.Ctx) error {
	packID, err := c.ParamsInt("id")
	if err != nil || packID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid pack id"})
	}

	db := database.GetDB()
	var pack models.EnergyPack
	if err := db.First(&pack, packID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Energiya paketi topilmadi!"})
	}

	if err := db.Delete(&pack).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete energy pack"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Energiya paketi o'chirildi!"})
}
