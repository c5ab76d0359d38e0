package domain

import "time"

// Item is a record owned by exactly one user. OwnerID is set at creation and
// immutable afterwards; every lookup carries it as a filter predicate.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
