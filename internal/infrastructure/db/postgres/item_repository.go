package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recordkeep/records-api/internal/core/domain"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = "id, title, description, owner_id, created_at, updated_at"

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `INSERT INTO items (` + itemColumns + `)
	          VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Description, item.OwnerID, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	return item, nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
	          WHERE owner_id = $1
	          ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

func (r *ItemRepository) FindByOwnerAndID(ctx context.Context, ownerID, itemID string) (*domain.Item, error) {
	// Owner id is part of the predicate, not a post-hoc check: a foreign
	// item and a missing item are the same ErrItemNotFound.
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND owner_id = $2`
	return scanItem(r.db.QueryRowContext(ctx, query, itemID, ownerID))
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `UPDATE items
	          SET title = $3, description = NULLIF($4, ''), updated_at = $5
	          WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.OwnerID, item.Title, item.Description, item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	} else if n == 0 {
		return nil, domain.ErrItemNotFound
	}

	return item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, ownerID, itemID string) error {
	query := `DELETE FROM items WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, itemID, ownerID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete item: %w", err)
	} else if n == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func scanItem(row rowScanner) (*domain.Item, error) {
	item := &domain.Item{}
	var description sql.NullString

	err := row.Scan(&item.ID, &item.Title, &description, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	item.Description = description.String
	return item, nil
}
