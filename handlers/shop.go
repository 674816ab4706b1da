// handlers/shop.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecoverse/database"
	"ecoverse/middleware"
	"ecoverse/models"
	"ecoverse/services"
)

type BuyEnergyRequest struct {
	Energy int `json:"energy"`
	Price  int `json:"price"`
}

// GetShopItems lists active shop items.
func GetShopItems(c *fiber.Ctx) error {
	var items []models.Item
	if err := database.GetDB().Where("is_active = ?", true).Find(&items).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load items"})
	}

	return c.JSON(fiber.Map{"success": true, "items": items, "total": len(items)})
}

// GetEnergyPacks lists active energy packs.
func GetEnergyPacks(c *fiber.Ctx) error {
	var packs []models.EnergyPack
	if err := database.GetDB().Where("is_active = ?", true).Find(&packs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load energy packs"})
	}

	return c.JSON(fiber.Map{"success": true, "energy_packs": packs, "total": len(packs)})
}

// BuyItem purchases a shop item for the authenticated user.
func BuyItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	itemID, err := c.ParamsInt("id")
	if err != nil || itemID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid item id"})
	}

	result, err := services.BuyItem(database.GetDB(), userID, uint(itemID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    result.Message,
		"new_coins":  result.NewCoins,
		"new_energy": result.NewEnergy,
	})
}

// BuyEnergy purchases energy for coins.
func BuyEnergy(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req BuyEnergyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Ma'lumotlar yetarli emas!"})
	}

	if req.Energy <= 0 || req.Price <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Energiya miqdori yoki narx ko'rsatilmagan!"})
	}

	result, err := services.BuyEnergy(database.GetDB(), userID, req.Energy, req.Price)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    result.Message,
		"new_coins":  result.NewCoins,
		"new_energy": result.NewEnergy,
	})
}

// GetInventory lists the user's purchased items with equip state.
func GetInventory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var entries []models.Inventory
	if err := database.GetDB().Preload("Item").Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load inventory"})
	}

	return c.JSON(fiber.Map{"success": true, "inventory": entries, "total": len(entries)})
}

// EquipItem equips an inventory entry, unequipping same-type items.
func EquipItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	inventoryID, err := c.ParamsInt("id")
	if err != nil || inventoryID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid inventory id"})
	}

	message, err := services.EquipItem(database.GetDB(), userID, uint(inventoryID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": message})
}

// UnequipItem clears the equipped flag on an inventory entry.
func UnequipItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	inventoryID, err := c.ParamsInt("id")
	if err != nil || inventoryID <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid inventory id"})
	}

	message, err := services.UnequipItem(database.GetDB(), userID, uint(inventoryID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": message})
}
