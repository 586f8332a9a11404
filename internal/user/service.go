package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wellnest-be/internal/auth"
	"wellnest-be/internal/logger"
)

const listCap = 1000

// Service defines account registration, login and lookup.
type Service interface {
	Register(ctx context.Context, params RegisterParams) (token string, u *User, err error)
	Login(ctx context.Context, email, password string) (token string, u *User, err error)
	GetByID(ctx context.Context, id string) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
}

type service struct {
	repo   Repository
	tokens *auth.TokenManager
}

func NewService(repo Repository, tokens *auth.TokenManager) Service {
	return &service{repo: repo, tokens: tokens}
}

// Register creates a customer account. Email uniqueness is an exact match on
// the stored value.
func (s *service) Register(ctx context.Context, params RegisterParams) (string, *User, error) {
	existing, err := s.repo.GetByEmail(ctx, params.Email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailExists
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return "", nil, err
	}

	u := &User{
		ID:        uuid.NewString(),
		Email:     params.Email,
		Password:  hash,
		Name:      params.Name,
		Phone:     params.Phone,
		Role:      auth.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return "", nil, err
	}

	logger.L().Info("user registered", zap.String("user_id", u.ID))
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || !auth.CheckPasswordHash(password, u.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *service) ListAll(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx, listCap)
}
