// services/shop.go - Purchases, inventory and equipping
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecoverse/models"
)

// PurchaseResult reports the user's balances after a shop operation.
type PurchaseResult struct {
	Message   string `json:"message"`
	NewCoins  int    `json:"new_coins"`
	NewEnergy int    `json:"new_energy"`
}

// BuyItem debits the item price, credits any energy boost (capped) and adds
// an unequipped inventory row. Fails on inactive items, short funds or an
// existing row for the pair.
func BuyItem(db *gorm.DB, userID, itemID uint) (*PurchaseResult, error) {
	var result *PurchaseResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("Mahsulot %w", ErrNotFound)
			}
			return err
		}
		if !item.IsActive {
			return fmt.Errorf("Bu mahsulot hozir mavjud emas (%w)", ErrNotFound)
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if user.Coins < item.Price {
			return fmt.Errorf("%w! Sizda %d coin bor, kerak: %d", ErrInsufficientFunds, user.Coins, item.Price)
		}

		var existing models.Inventory
		err := tx.Where("user_id = ? AND item_id = ?", userID, itemID).First(&existing).Error
		if err == nil {
			return ErrAlreadyOwned
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user.Coins -= item.Price
		if item.EnergyBoost > 0 {
			user.Energy += item.EnergyBoost
			if user.Energy > MaxEnergy {
				user.Energy = MaxEnergy
			}
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		entry := models.Inventory{UserID: userID, ItemID: itemID, PurchasedAt: time.Now().UTC()}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		notification := models.Notification{
			UserID:           userID,
			Title:            "🛍️ Yangi mahsulot!",
			Message:          fmt.Sprintf("Siz %s ni %d coinga sotib oldingiz!", item.Name, item.Price),
			NotificationType: models.NotificationShop,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}

		message := fmt.Sprintf("%s muvaffaqiyatli sotib olindi!", item.Name)
		if item.EnergyBoost > 0 {
			message += fmt.Sprintf(" +%d energiya", item.EnergyBoost)
		}
		result = &PurchaseResult{Message: message, NewCoins: user.Coins, NewEnergy: user.Energy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BuyEnergy debits coins and credits energy, capped at MaxEnergy.
func BuyEnergy(db *gorm.DB, userID uint, energyAmount, price int) (*PurchaseResult, error) {
	var result *PurchaseResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if user.Coins < price {
			return fmt.Errorf("%w! Sizda %d coin bor, kerak: %d", ErrInsufficientFunds, user.Coins, price)
		}

		user.Coins -= price
		user.Energy += energyAmount
		if user.Energy > MaxEnergy {
			user.Energy = MaxEnergy
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		notification := models.Notification{
			UserID:           userID,
			Title:            "⚡ Energiya to'ldirildi!",
			Message:          fmt.Sprintf("Siz %d energiya sotib oldingiz! -%d coin", energyAmount, price),
			NotificationType: models.NotificationEnergy,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}

		result = &PurchaseResult{
			Message:   fmt.Sprintf("%d energiya muvaffaqiyatli sotib olindi!", energyAmount),
			NewCoins:  user.Coins,
			NewEnergy: user.Energy,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EquipItem equips the inventory entry and unequips every other owned item of
// the same slot type, keeping at most one equipped per type.
func EquipItem(db *gorm.DB, userID, inventoryID uint) (string, error) {
	var message string

	err := db.Transaction(func(tx *gorm.DB) error {
		var entry models.Inventory
		err := tx.Preload("Item").Where("user_id = ? AND id = ?", userID, inventoryID).First(&entry).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("Element %w", ErrNotFound)
			}
			return err
		}

		err = tx.Model(&models.Inventory{}).
			Where("user_id = ? AND equipped = ? AND item_id IN (?)",
				userID, true,
				tx.Model(&models.Item{}).Select("id").Where("item_type = ?", entry.Item.ItemType),
			).
			Update("equipped", false).Error
		if err != nil {
			return err
		}

		if err := tx.Model(&entry).Update("equipped", true).Error; err != nil {
			return err
		}

		message = fmt.Sprintf("%s muvaffaqiyatli kiyildi!", entry.Item.Name)
		return nil
	})
	return message, err
}

// UnequipItem clears the equipped flag on the entry.
func UnequipItem(db *gorm.DB, userID, inventoryID uint) (string, error) {
	var message string

	err := db.Transaction(func(tx *gorm.DB) error {
		var entry models.Inventory
		err := tx.Preload("Item").Where("user_id = ? AND id = ?", userID, inventoryID).First(&entry).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("Element %w", ErrNotFound)
			}
			return err
		}
		if !entry.Equipped {
			return errors.New("Bu element kiyilmagan!")
		}

		if err := tx.Model(&entry).Update("equipped", false).Error; err != nil {
			return err
		}

		message = fmt.Sprintf("%s muvaffaqiyatli echildi!", entry.Item.Name)
		return nil
	})
	return message, err
}
