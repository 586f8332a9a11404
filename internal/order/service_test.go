package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wellnest-be/internal/cart"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]*Order, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context, limit int64) ([]*Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id string, status Status) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

// MockCartRepository is a mock for the cart repository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetByUser(ctx context.Context, userID string) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Upsert(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	items := []cart.Item{{ProductID: "p-1", Quantity: 2, Name: "Amoxicillin 500mg", Price: 12.99}}
	params := CreateParams{Items: items, Total: 25.98, Address: Address{Street: "1 Main St", City: "Springfield", Country: "USA"}}

	t.Run("Persists Snapshot And Clears Cart", func(t *testing.T) {
		repo := new(MockRepository)
		carts := new(MockCartRepository)
		repo.On("Insert", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
		carts.On("DeleteByUser", ctx, "u-1").Return(nil)

		svc := NewService(repo, carts)
		o, err := svc.Create(ctx, "u-1", params)

		require.NoError(t, err)
		assert.NotEmpty(t, o.ID)
		assert.Equal(t, "u-1", o.UserID)
		assert.Equal(t, items, o.Items)
		assert.Equal(t, 25.98, o.Total)
		assert.Equal(t, StatusPending, o.Status)
		repo.AssertExpectations(t)
		carts.AssertExpectations(t)
	})

	t.Run("Cart Clear Failure Does Not Roll Back", func(t *testing.T) {
		repo := new(MockRepository)
		carts := new(MockCartRepository)
		repo.On("Insert", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
		carts.On("DeleteByUser", ctx, "u-1").Return(errors.New("store down"))

		svc := NewService(repo, carts)
		o, err := svc.Create(ctx, "u-1", params)

		require.NoError(t, err)
		assert.NotNil(t, o)
	})

	t.Run("Insert Failure Skips Cart Clear", func(t *testing.T) {
		repo := new(MockRepository)
		carts := new(MockCartRepository)
		repo.On("Insert", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("store down"))

		svc := NewService(repo, carts)
		_, err := svc.Create(ctx, "u-1", params)

		assert.Error(t, err)
		carts.AssertNotCalled(t, "DeleteByUser")
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Cross User Looks Like Absence", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByIDAndUser", ctx, "o-1", "intruder").Return(nil, nil)

		svc := NewService(repo, new(MockCartRepository))
		_, err := svc.Get(ctx, "o-1", "intruder")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Owner", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByIDAndUser", ctx, "o-1", "u-1").Return(&Order{ID: "o-1", UserID: "u-1"}, nil)

		svc := NewService(repo, new(MockCartRepository))
		o, err := svc.Get(ctx, "o-1", "u-1")

		require.NoError(t, err)
		assert.Equal(t, "o-1", o.ID)
	})
}

func TestService_ListCaps(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("ListByUser", ctx, "u-1", int64(100)).Return([]*Order{}, nil)
	repo.On("ListAll", ctx, int64(1000)).Return([]*Order{}, nil)

	svc := NewService(repo, new(MockCartRepository))

	_, err := svc.ListMine(ctx, "u-1")
	require.NoError(t, err)
	_, err = svc.ListAll(ctx)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects Unknown Status", func(t *testing.T) {
		repo := new(MockRepository)

		svc := NewService(repo, new(MockCartRepository))
		err := svc.SetStatus(ctx, "o-1", Status("lost"))

		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Any Transition Between Valid Statuses", func(t *testing.T) {
		// No transition table: delivered back to pending is accepted.
		repo := new(MockRepository)
		repo.On("UpdateStatus", ctx, "o-1", StatusPending).Return(true, nil)

		svc := NewService(repo, new(MockCartRepository))
		assert.NoError(t, svc.SetStatus(ctx, "o-1", StatusPending))
	})

	t.Run("Missing Order", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpdateStatus", ctx, "ghost", StatusShipped).Return(false, nil)

		svc := NewService(repo, new(MockCartRepository))
		assert.ErrorIs(t, svc.SetStatus(ctx, "ghost", StatusShipped), ErrNotFound)
	})
}
