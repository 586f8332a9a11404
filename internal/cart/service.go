package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service defines the per-user cart operations. The cart is advisory state:
// concurrent replaces race and the last write wins.
type Service interface {
	// Get returns the user's cart, lazily creating an empty one.
	Get(ctx context.Context, userID string) (*Cart, error)
	// Replace swaps the whole item list and recomputes the total server-side
	// from the submitted snapshots.
	Replace(ctx context.Context, userID string, items []Item) (*Cart, error)
	// Clear removes the cart; idempotent.
	Clear(ctx context.Context, userID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, userID string) (*Cart, error) {
	c, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	c = &Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []Item{},
		Total:     0,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Replace(ctx context.Context, userID string, items []Item) (*Cart, error) {
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}
	if items == nil {
		items = []Item{}
	}

	c := &Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     TotalOf(items),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Clear(ctx context.Context, userID string) error {
	return s.repo.DeleteByUser(ctx, userID)
}
