package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

// CreateNoticeRequest holds payload for publishing an announcement.
type CreateNoticeRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Audience string `json:"audience" validate:"required,oneof=All Parents Teachers"`
	Date     string `json:"date" validate:"required"`
}

// NoticeService handles school announcements.
type NoticeService struct {
	store     store.Notices
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoticeService constructs the notice service.
func NewNoticeService(st store.Notices, validate *validator.Validate, logger *zap.Logger) *NoticeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoticeService{store: st, validator: validate, logger: logger}
}

// List returns every notice.
func (s *NoticeService) List(ctx context.Context) ([]models.Notice, error) {
	notices, err := s.store.ListNotices(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notices")
	}
	return notices, nil
}

// Create publishes a notice.
func (s *NoticeService) Create(ctx context.Context, req CreateNoticeRequest) (models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Notice{}, validationError(err)
	}
	notice := models.Notice{
		Title:    req.Title,
		Content:  req.Content,
		Audience: req.Audience,
		Date:     req.Date,
	}
	if err := s.store.CreateNotice(ctx, &notice); err != nil {
		return models.Notice{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create notice")
	}
	return notice, nil
}
