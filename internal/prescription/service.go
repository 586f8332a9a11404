package prescription

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wellnest-be/internal/logger"
)

const (
	mineCap = 100
	allCap  = 1000
)

// Service defines upload, user-scoped reads and the pharmacist review flow.
type Service interface {
	Upload(ctx context.Context, userID, patientName, fileName string, file []byte) (*Prescription, error)
	ListMine(ctx context.Context, userID string) ([]*Summary, error)
	// Get includes the file payload and is scoped to the requesting user.
	Get(ctx context.Context, id, userID string) (*Prescription, error)
	// ListAll is the reviewer queue; reviewers see every user's uploads.
	ListAll(ctx context.Context) ([]*Summary, error)
	// Review sets status, notes and the reviewing actor. Review is the
	// pharmacist's job function, so there is no ownership check.
	Review(ctx context.Context, id string, params ReviewParams) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Upload(ctx context.Context, userID, patientName, fileName string, file []byte) (*Prescription, error) {
	if len(file) == 0 {
		return nil, ErrEmptyFile
	}

	now := time.Now().UTC()
	p := &Prescription{
		ID:          uuid.NewString(),
		UserID:      userID,
		PatientName: patientName,
		FileData:    base64.StdEncoding.EncodeToString(file),
		FileName:    fileName,
		Status:      StatusReceived,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("prescription uploaded",
		zap.String("prescription_id", p.ID),
		zap.String("user_id", userID),
		zap.String("file_name", fileName),
	)
	return p, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]*Summary, error) {
	return s.repo.ListByUser(ctx, userID, mineCap)
}

func (s *service) Get(ctx context.Context, id, userID string) (*Prescription, error) {
	p, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Summary, error) {
	return s.repo.ListAll(ctx, allCap)
}

func (s *service) Review(ctx context.Context, id string, params ReviewParams) error {
	if !params.Status.Valid() {
		return ErrInvalidStatus
	}

	matched, err := s.repo.Update(ctx, id, params, time.Now().UTC())
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}

	logger.L().Info("prescription reviewed",
		zap.String("prescription_id", id),
		zap.String("reviewed_by", params.ReviewedBy),
		zap.String("status", string(params.Status)),
	)
	return nil
}
