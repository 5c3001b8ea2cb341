package models

import "time"

type Coupon struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code       string    `gorm:"uniqueIndex;not null" json:"code"`
	PercentOff float64   `gorm:"not null" json:"percent_off"`
	ExpiresAt  time.Time `json:"expires_at"`
	Active     bool      `gorm:"default:true" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// Usable reports whether the coupon can be applied at the given time.
func (c Coupon) Usable(now time.Time) bool {
	if !c.Active {
		return false
	}
	if !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt) {
		return false
	}
	return c.PercentOff > 0 && c.PercentOff <= 100
}
