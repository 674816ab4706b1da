package services

import (
	"errors"
	"strings"
	"testing"

	"ecoverse/models"
)

func TestBuyItemDebitsCoins(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 200, 100)
	item := createItem(t, db, 100, 0)

	result, err := BuyItem(db, user.ID, item.ID)
	if err != nil {
		t.Fatalf("BuyItem failed: %v", err)
	}

	if result.NewCoins != 100 {
		t.Errorf("new coins = %d, want 100", result.NewCoins)
	}

	var entry models.Inventory
	if err := db.Where("user_id = ? AND item_id = ?", user.ID, item.ID).First(&entry).Error; err != nil {
		t.Fatalf("inventory row missing: %v", err)
	}
	if entry.Equipped {
		t.Error("freshly bought item should not be equipped")
	}
}

func TestBuyItemInsufficientFunds(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 80, 100)
	item := createItem(t, db, 100, 0)

	_, err := BuyItem(db, user.ID, item.ID)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("error = %v, want ErrInsufficientFunds", err)
	}
	if !strings.Contains(err.Error(), "yetarli emas") {
		t.Errorf("error text = %q, want it to mention yetarli emas", err.Error())
	}

	after := reloadUser(t, db, user.ID)
	if after.Coins != 80 {
		t.Errorf("coins = %d, want untouched 80", after.Coins)
	}

	var count int64
	db.Model(&models.Inventory{}).Count(&count)
	if count != 0 {
		t.Errorf("inventory rows = %d, want 0", count)
	}
}

func TestBuyItemTwiceFails(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 500, 100)
	item := createItem(t, db, 100, 0)

	if _, err := BuyItem(db, user.ID, item.ID); err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}

	_, err := BuyItem(db, user.ID, item.ID)
	if !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("error = %v, want ErrAlreadyOwned", err)
	}

	after := reloadUser(t, db, user.ID)
	if after.Coins != 400 {
		t.Errorf("coins = %d, want 400 (charged once)", after.Coins)
	}
}

func TestBuyItemEnergyBoostIsCapped(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 500, 90)
	item := createItem(t, db, 100, 30)

	result, err := BuyItem(db, user.ID, item.ID)
	if err != nil {
		t.Fatalf("BuyItem failed: %v", err)
	}

	if result.NewEnergy != MaxEnergy {
		t.Errorf("energy = %d, want capped at %d", result.NewEnergy, MaxEnergy)
	}
}

func TestBuyInactiveItemFails(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 500, 100)
	item := createItem(t, db, 100, 0)
	if err := db.Model(item).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate item: %v", err)
	}

	_, err := BuyItem(db, user.ID, item.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestBuyEnergyCapsAtMax(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 200, 70)

	result, err := BuyEnergy(db, user.ID, 50, 100)
	if err != nil {
		t.Fatalf("BuyEnergy failed: %v", err)
	}

	if result.NewEnergy != MaxEnergy {
		t.Errorf("energy = %d, want capped at %d", result.NewEnergy, MaxEnergy)
	}
	if result.NewCoins != 100 {
		t.Errorf("coins = %d, want 100", result.NewCoins)
	}
}

func TestBuyEnergyInsufficientFunds(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 30, 50)

	_, err := BuyEnergy(db, user.ID, 50, 100)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("error = %v, want ErrInsufficientFunds", err)
	}

	after := reloadUser(t, db, user.ID)
	if after.Coins != 30 || after.Energy != 50 {
		t.Errorf("balances changed on rejected purchase: %d coins / %d energy", after.Coins, after.Energy)
	}
}

func TestEquipItemUnequipsSameSlot(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 1000, 100)

	hat1 := createItem(t, db, 100, 0)
	hat2 := models.Item{Name: "Qishki shlyapa", Price: 150, ItemType: models.ItemTypeHat, IsActive: true}
	if err := db.Create(&hat2).Error; err != nil {
		t.Fatalf("failed to create second hat: %v", err)
	}
	shoes := models.Item{Name: "Eko poyabzal", Price: 120, ItemType: models.ItemTypeShoes, IsActive: true}
	if err := db.Create(&shoes).Error; err != nil {
		t.Fatalf("failed to create shoes: %v", err)
	}

	for _, id := range []uint{hat1.ID, hat2.ID, shoes.ID} {
		if _, err := BuyItem(db, user.ID, id); err != nil {
			t.Fatalf("purchase failed: %v", err)
		}
	}

	var entries []models.Inventory
	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&entries).Error; err != nil {
		t.Fatalf("failed to load inventory: %v", err)
	}

	byItem := map[uint]uint{}
	for _, e := range entries {
		byItem[e.ItemID] = e.ID
	}

	for _, inv := range []uint{byItem[hat1.ID], byItem[shoes.ID], byItem[hat2.ID]} {
		if _, err := EquipItem(db, user.ID, inv); err != nil {
			t.Fatalf("equip failed: %v", err)
		}
	}

	// Equipping the second hat must have unequipped the first; shoes stay on.
	check := func(invID uint, want bool) {
		t.Helper()
		var e models.Inventory
		if err := db.First(&e, invID).Error; err != nil {
			t.Fatalf("failed to reload inventory entry: %v", err)
		}
		if e.Equipped != want {
			t.Errorf("entry %d equipped = %v, want %v", invID, e.Equipped, want)
		}
	}
	check(byItem[hat1.ID], false)
	check(byItem[hat2.ID], true)
	check(byItem[shoes.ID], true)
}

func TestEquipForeignInventoryFails(t *testing.T) {
	db := openTestDB(t)
	owner := createUser(t, db, 500, 100)
	other := models.User{Username: "other", Email: "other@example.com", Password: "x", Role: models.RoleChild, Level: 1}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("failed to create second user: %v", err)
	}

	item := createItem(t, db, 100, 0)
	if _, err := BuyItem(db, owner.ID, item.ID); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	var entry models.Inventory
	if err := db.Where("user_id = ?", owner.ID).First(&entry).Error; err != nil {
		t.Fatalf("inventory row missing: %v", err)
	}

	_, err := EquipItem(db, other.ID, entry.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUnequipItem(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 500, 100)
	item := createItem(t, db, 100, 0)

	if _, err := BuyItem(db, user.ID, item.ID); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	var entry models.Inventory
	if err := db.Where("user_id = ?", user.ID).First(&entry).Error; err != nil {
		t.Fatalf("inventory row missing: %v", err)
	}

	if _, err := EquipItem(db, user.ID, entry.ID); err != nil {
		t.Fatalf("equip failed: %v", err)
	}
	if _, err := UnequipItem(db, user.ID, entry.ID); err != nil {
		t.Fatalf("unequip failed: %v", err)
	}

	var after models.Inventory
	if err := db.First(&after, entry.ID).Error; err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if after.Equipped {
		t.Error("entry still equipped after unequip")
	}
}
