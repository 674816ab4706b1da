// services/streak.go - Login streak accounting
package services

import (
	"time"

	"ecoverse/models"
)

// Every 7th consecutive login day pays this flat coin bonus.
const streakBonusCoins = 100

// ApplyLoginStreak updates the user's streak for a login at now and returns
// the coin bonus awarded (0 or streakBonusCoins). A repeat login on the same
// day leaves the streak untouched; a gap of exactly one day extends it; any
// other gap, or the first-ever login, resets it to 1. The caller persists the
// user and sets last_login.
func ApplyLoginStreak(user *models.User, now time.Time) int {
	today := DateOnly(now)

	if user.LastLogin == nil {
		user.Streak = 1
		return 0
	}

	lastDay := DateOnly(*user.LastLogin)
	if lastDay.Equal(today) {
		return 0
	}

	if today.Sub(lastDay) == 24*time.Hour {
		user.Streak++
		if user.Streak%7 == 0 {
			user.Coins += streakBonusCoins
			return streakBonusCoins
		}
		return 0
	}

	user.Streak = 1
	return 0
}
