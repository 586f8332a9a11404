package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wellnest-be/internal/cart"
	"wellnest-be/internal/logger"
)

const (
	mineCap = 100
	allCap  = 1000
)

// Service defines order placement and status management.
type Service interface {
	// Create persists the order snapshot, then clears the user's cart. The
	// two writes are sequential, not transactional: a failure after the
	// insert leaves the cart behind and never rolls back the order.
	Create(ctx context.Context, userID string, params CreateParams) (*Order, error)
	ListMine(ctx context.Context, userID string) ([]*Order, error)
	// Get is scoped to the requesting user.
	Get(ctx context.Context, id, userID string) (*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	SetStatus(ctx context.Context, id string, status Status) error
}

type service struct {
	repo  Repository
	carts cart.Repository
}

func NewService(repo Repository, carts cart.Repository) Service {
	return &service{repo: repo, carts: carts}
}

func (s *service) Create(ctx context.Context, userID string, params CreateParams) (*Order, error) {
	items := params.Items
	if items == nil {
		items = []cart.Item{}
	}

	o := &Order{
		ID:             uuid.NewString(),
		UserID:         userID,
		Items:          items,
		Total:          params.Total,
		Status:         StatusPending,
		Address:        params.Address,
		PrescriptionID: params.PrescriptionID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, o); err != nil {
		return nil, err
	}

	// Cart state is advisory; the order stands even if the clear fails.
	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		logger.L().Warn("cart clear after order create failed",
			zap.String("order_id", o.ID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	logger.L().Info("order created",
		zap.String("order_id", o.ID),
		zap.String("user_id", userID),
		zap.Float64("total", o.Total),
	)
	return o, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID, mineCap)
}

func (s *service) Get(ctx context.Context, id, userID string) (*Order, error) {
	o, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Order, error) {
	return s.repo.ListAll(ctx, allCap)
}

func (s *service) SetStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	matched, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}
