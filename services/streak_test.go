package services

import (
	"testing"
	"time"

	"ecoverse/models"
)

func TestFirstLoginStartsStreak(t *testing.T) {
	user := &models.User{Coins: 0}

	bonus := ApplyLoginStreak(user, time.Now().UTC())

	if user.Streak != 1 {
		t.Errorf("streak = %d, want 1", user.Streak)
	}
	if bonus != 0 {
		t.Errorf("bonus = %d, want 0", bonus)
	}
}

func TestSameDayLoginKeepsStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	earlier := now.Add(-3 * time.Hour)
	user := &models.User{Streak: 4, LastLogin: &earlier}

	bonus := ApplyLoginStreak(user, now)

	if user.Streak != 4 {
		t.Errorf("streak = %d, want 4", user.Streak)
	}
	if bonus != 0 {
		t.Errorf("bonus = %d, want 0", bonus)
	}
}

func TestNextDayLoginExtendsStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	yesterday := now.Add(-20 * time.Hour) // still the previous calendar day
	user := &models.User{Streak: 4, LastLogin: &yesterday}

	ApplyLoginStreak(user, now)

	if user.Streak != 5 {
		t.Errorf("streak = %d, want 5", user.Streak)
	}
}

func TestSeventhDayPaysBonus(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	user := &models.User{Streak: 6, Coins: 50, LastLogin: &yesterday}

	bonus := ApplyLoginStreak(user, now)

	if user.Streak != 7 {
		t.Errorf("streak = %d, want 7", user.Streak)
	}
	if bonus != 100 {
		t.Errorf("bonus = %d, want 100", bonus)
	}
	if user.Coins != 150 {
		t.Errorf("coins = %d, want 150", user.Coins)
	}
}

func TestMissedDayResetsStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	twoDaysAgo := now.AddDate(0, 0, -2)
	user := &models.User{Streak: 13, LastLogin: &twoDaysAgo}

	bonus := ApplyLoginStreak(user, now)

	if user.Streak != 1 {
		t.Errorf("streak = %d, want 1", user.Streak)
	}
	if bonus != 0 {
		t.Errorf("bonus = %d, want 0", bonus)
	}
}
