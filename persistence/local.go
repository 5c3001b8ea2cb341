package persistence

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

// LocalStore keeps snapshots as JSON blobs in the local_snapshots table, one
// row per (owner, key). It backs guest sessions and doubles as the fallback
// target when a remote write fails.
type LocalStore struct {
	db *gorm.DB
}

func NewLocalStore(db *gorm.DB) *LocalStore {
	return &LocalStore{db: db}
}

func (s *LocalStore) ReadCart(ctx context.Context, ownerID string) models.CartSnapshot {
	var snap models.CartSnapshot
	s.read(ctx, ownerID, KeyCart, &snap)
	return snap
}

func (s *LocalStore) WriteCart(ctx context.Context, ownerID string, snap models.CartSnapshot) {
	s.write(ctx, ownerID, KeyCart, snap)
}

func (s *LocalStore) ReadWishlist(ctx context.Context, ownerID string) models.WishlistSnapshot {
	var snap models.WishlistSnapshot
	s.read(ctx, ownerID, KeyWishlist, &snap)
	return snap
}

func (s *LocalStore) WriteWishlist(ctx context.Context, ownerID string, snap models.WishlistSnapshot) {
	s.write(ctx, ownerID, KeyWishlist, snap)
}

// Clear deletes both the cart and wishlist rows for the owner.
func (s *LocalStore) Clear(ctx context.Context, ownerID string) {
	if err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.LocalSnapshot{}).Error; err != nil {
		log.Printf("❌ Failed to clear local snapshots for %s: %v", ownerID, err)
	}
}

// read fills out from the stored blob. A missing row or a blob that does not
// parse both leave out at its zero value (empty snapshot).
func (s *LocalStore) read(ctx context.Context, ownerID, key string, out interface{}) {
	var row models.LocalSnapshot
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND key = ?", ownerID, key).
		First(&row).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("❌ Failed to read local %s snapshot for %s: %v", key, ownerID, err)
		}
		return
	}
	if err := json.Unmarshal([]byte(row.Data), out); err != nil {
		log.Printf("❌ Malformed local %s snapshot for %s, treating as empty: %v", key, ownerID, err)
	}
}

func (s *LocalStore) write(ctx context.Context, ownerID, key string, snap interface{}) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("❌ Failed to serialize %s snapshot for %s: %v", key, ownerID, err)
		return
	}

	row := models.LocalSnapshot{OwnerID: ownerID, Key: key, Data: string(data)}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error; err != nil {
		log.Printf("❌ Failed to write local %s snapshot for %s: %v", key, ownerID, err)
	}
}
