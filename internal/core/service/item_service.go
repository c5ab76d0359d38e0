package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// ItemService implements CRUD over items scoped to their owner. The owner id
// travels into every repository call as part of the lookup predicate; there
// is no id-only lookup to drop an ownership check from.
type ItemService struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

func (s *ItemService) List(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ItemService) Create(ctx context.Context, ownerID string, input ports.CreateItemInput) (*domain.Item, error) {
	now := time.Now().UTC()
	item := &domain.Item{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create item")
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID).Str("owner_id", ownerID).Msg("item created")
	return created, nil
}

func (s *ItemService) Get(ctx context.Context, ownerID, itemID string) (*domain.Item, error) {
	return s.repo.FindByOwnerAndID(ctx, ownerID, itemID)
}

func (s *ItemService) Update(ctx context.Context, ownerID, itemID string, input ports.UpdateItemInput) (*domain.Item, error) {
	item, err := s.repo.FindByOwnerAndID(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	item.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, item)
}

func (s *ItemService) Delete(ctx context.Context, ownerID, itemID string) error {
	if err := s.repo.Delete(ctx, ownerID, itemID); err != nil {
		return err
	}
	s.logger.Info().Str("item_id", itemID).Str("owner_id", ownerID).Msg("item deleted")
	return nil
}
