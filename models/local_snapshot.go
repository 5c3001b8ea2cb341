package models

import "time"

// LocalSnapshot is one row of the guest-scoped snapshot store: a JSON blob
// per (owner, key) pair, where key is "cart" or "wishlist". It is the
// server-side home for shopping state of unauthenticated sessions.
type LocalSnapshot struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   string `gorm:"uniqueIndex:idx_local_snapshot_owner_key;not null"`
	Key       string `gorm:"uniqueIndex:idx_local_snapshot_owner_key;not null"`
	Data      string // JSON-serialized snapshot
	UpdatedAt time.Time
}
