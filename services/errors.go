// services/errors.go - business error taxonomy
package services

import (
	"errors"
)

// Sentinel errors returned by the reward/shop/rotation paths. Wrapped
// variants carry the user-facing detail, so handlers match with errors.Is
// and surface err.Error() directly.
var (
	ErrInsufficientEnergy  = errors.New("Energiya yetarli emas")
	ErrInsufficientFunds   = errors.New("Coin yetarli emas")
	ErrAlreadyCompleted    = errors.New("Bu topshiriq allaqachon bajarilgan!")
	ErrAlreadyOwned        = errors.New("Sizda bu mahsulot allaqachon bor!")
	ErrNotFound            = errors.New("topilmadi")
	ErrRotationUnavailable = errors.New("Yetarli topshiriqlar mavjud emas")
)
