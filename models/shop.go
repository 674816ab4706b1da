// models/shop.go
package models

import (
	"time"
)

// Item slot types
const (
	ItemTypeHat       = "hat"
	ItemTypeClothes   = "clothes"
	ItemTypeShoes     = "shoes"
	ItemTypeAccessory = "accessory"
)

type Item struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Price       int    `gorm:"not null" json:"price"`
	ItemType    string `gorm:"not null;index" json:"item_type"`
	ImagePath   string `json:"image_path"`
	EnergyBoost int    `gorm:"default:0" json:"energy_boost"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

type EnergyPack struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	EnergyAmount int    `gorm:"not null" json:"energy_amount"`
	Price        int    `gorm:"not null" json:"price"`
	Description  string `json:"description"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}

// Inventory holds purchased items. One row per (user, item); equipping
// toggles the flag, never duplicates the row.
type Inventory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_item" json:"user_id"`
	ItemID      uint      `gorm:"not null;uniqueIndex:idx_user_item" json:"item_id"`
	Equipped    bool      `gorm:"default:false" json:"equipped"`
	PurchasedAt time.Time `json:"purchased_at"`

	// Relationships
	Item Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}
