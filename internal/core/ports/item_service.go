package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// CreateItemInput carries a new item's content.
type CreateItemInput struct {
	Title       string
	Description string
}

// UpdateItemInput carries a partial item update. Nil fields are left untouched.
type UpdateItemInput struct {
	Title       *string
	Description *string
}

// ItemService provides CRUD over items scoped to the resolved owner identity.
type ItemService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Item, error)
	Create(ctx context.Context, ownerID string, input CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, ownerID, itemID string) (*domain.Item, error)
	Update(ctx context.Context, ownerID, itemID string, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, ownerID, itemID string) error
}
