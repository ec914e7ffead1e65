package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

// CreateParentRequest holds payload for registering a guardian. Students is
// a list of admission numbers; the link is not referentially enforced.
type CreateParentRequest struct {
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName" validate:"required"`
	Phone     string   `json:"phone" validate:"required"`
	Email     *string  `json:"email"`
	Students  []string `json:"students"`
}

// ParentService handles guardian records.
type ParentService struct {
	store     store.Parents
	validator *validator.Validate
	logger    *zap.Logger
}

// NewParentService constructs the parent service.
func NewParentService(st store.Parents, validate *validator.Validate, logger *zap.Logger) *ParentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParentService{store: st, validator: validate, logger: logger}
}

// List returns every guardian.
func (s *ParentService) List(ctx context.Context) ([]models.Parent, error) {
	parents, err := s.store.ListParents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list parents")
	}
	return parents, nil
}

// Create registers a guardian.
func (s *ParentService) Create(ctx context.Context, req CreateParentRequest) (models.Parent, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Parent{}, validationError(err)
	}
	parent := models.Parent{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Students:  req.Students,
	}
	if err := s.store.CreateParent(ctx, &parent); err != nil {
		return models.Parent{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create parent")
	}
	return parent, nil
}
