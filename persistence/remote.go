package persistence

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

const snapshotCollection = "users"

// RemoteStore keeps per-user snapshots in Firestore: collection "users",
// docId = userID, fields "cart" and "wishlist", each {items: [...]}. Fields
// are upserted whole; cart and wishlist are written independently, so a
// partial failure can leave one field stale.
//
// A failed remote write falls back to the local store so the data survives
// on this device, at the cost of brief cross-device inconsistency. Single
// attempt per call, no retry.
type RemoteStore struct {
	client   *firestore.Client
	fallback Adapter
}

func NewRemoteStore(client *firestore.Client, fallback Adapter) *RemoteStore {
	return &RemoteStore{client: client, fallback: fallback}
}

func (s *RemoteStore) ReadCart(ctx context.Context, userID string) models.CartSnapshot {
	var snap models.CartSnapshot
	s.readField(ctx, userID, KeyCart, &snap)
	return snap
}

func (s *RemoteStore) WriteCart(ctx context.Context, userID string, snap models.CartSnapshot) {
	if err := s.writeField(ctx, userID, KeyCart, snap); err != nil {
		log.Printf("❌ Remote cart write failed for %s, falling back to local: %v", userID, err)
		if s.fallback != nil {
			s.fallback.WriteCart(ctx, userID, snap)
		}
	}
}

func (s *RemoteStore) ReadWishlist(ctx context.Context, userID string) models.WishlistSnapshot {
	var snap models.WishlistSnapshot
	s.readField(ctx, userID, KeyWishlist, &snap)
	return snap
}

func (s *RemoteStore) WriteWishlist(ctx context.Context, userID string, snap models.WishlistSnapshot) {
	if err := s.writeField(ctx, userID, KeyWishlist, snap); err != nil {
		log.Printf("❌ Remote wishlist write failed for %s, falling back to local: %v", userID, err)
		if s.fallback != nil {
			s.fallback.WriteWishlist(ctx, userID, snap)
		}
	}
}

// Clear overwrites both fields with empty snapshots.
func (s *RemoteStore) Clear(ctx context.Context, userID string) {
	if err := s.writeField(ctx, userID, KeyCart, models.CartSnapshot{}); err != nil {
		log.Printf("❌ Failed to clear remote cart for %s: %v", userID, err)
	}
	if err := s.writeField(ctx, userID, KeyWishlist, models.WishlistSnapshot{}); err != nil {
		log.Printf("❌ Failed to clear remote wishlist for %s: %v", userID, err)
	}
}

// readField leaves out at its zero value when the document or field is
// absent, the client is unconfigured, or the read fails. Outages are thus
// indistinguishable from a new user; that is the accepted policy.
func (s *RemoteStore) readField(ctx context.Context, userID, field string, out interface{}) {
	if s.client == nil {
		return
	}

	doc, err := s.client.Collection(snapshotCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			log.Printf("❌ Remote %s read failed for %s, treating as empty: %v", field, userID, err)
		}
		return
	}

	raw, err := doc.DataAt(field)
	if err != nil || raw == nil {
		return
	}
	if err := decodeField(raw, out); err != nil {
		log.Printf("❌ Malformed remote %s snapshot for %s, treating as empty: %v", field, userID, err)
	}
}

func (s *RemoteStore) writeField(ctx context.Context, userID, field string, snap interface{}) error {
	if s.client == nil {
		return errFirestoreUnconfigured
	}
	_, err := s.client.Collection(snapshotCollection).Doc(userID).Set(ctx, map[string]interface{}{
		field: snap,
	}, firestore.MergeAll)
	return err
}
