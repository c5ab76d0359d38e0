package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// ItemRepository defines persistence operations for owner-scoped items.
// Every single-item operation takes the owner id as a mandatory filter
// predicate alongside the item id — an item is never looked up by id alone.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	// ListByOwner returns the owner's items ordered newest-first by creation time.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error)
	FindByOwnerAndID(ctx context.Context, ownerID, itemID string) (*domain.Item, error)
	// Update persists title/description changes for item.ID owned by item.OwnerID.
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, ownerID, itemID string) error
}
