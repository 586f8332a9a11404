package product

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wellnest-be/internal/logger"
)

const listCap = 1000

// Service defines catalog browsing plus the admin-only mutations.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, fields Fields) (*Product, error)
	Replace(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]*Product, error) {
	return s.repo.List(ctx, filter, listCap)
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, fields Fields) (*Product, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	p := &Product{
		ID:                   uuid.NewString(),
		Name:                 fields.Name,
		Description:          fields.Description,
		Price:                fields.Price,
		Stock:                fields.Stock,
		Image:                fields.Image,
		Category:             fields.Category,
		RequiresPrescription: fields.RequiresPrescription,
		Strength:             fields.Strength,
		Manufacturer:         fields.Manufacturer,
		SideEffects:          fields.SideEffects,
		Usage:                fields.Usage,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *service) Replace(ctx context.Context, id string, fields Fields) error {
	if err := validateFields(fields); err != nil {
		return err
	}

	matched, err := s.repo.Replace(ctx, id, fields)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func validateFields(fields Fields) error {
	if fields.Name == "" {
		return ErrNameRequired
	}
	if fields.Price < 0 {
		return ErrInvalidPrice
	}
	if fields.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
