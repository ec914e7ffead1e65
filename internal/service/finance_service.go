package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

// CreateFeeRequest holds payload for defining a fee line.
type CreateFeeRequest struct {
	LevelID     string  `json:"levelId" validate:"required"`
	GradeID     *string `json:"gradeId"`
	Term        string  `json:"term" validate:"required"`
	Amount      int     `json:"amount" validate:"required"`
	Description *string `json:"description"`
}

// RecordPaymentRequest holds payload for recording money received.
type RecordPaymentRequest struct {
	StudentID int     `json:"studentId" validate:"required"`
	Amount    int     `json:"amount" validate:"required"`
	Method    string  `json:"method" validate:"required"`
	Reference *string `json:"reference"`
	Date      string  `json:"date" validate:"required"`
	Term      string  `json:"term" validate:"required"`
}

// FinanceService handles fee definitions and payment records.
type FinanceService struct {
	fees      store.Fees
	payments  store.Payments
	students  store.Students
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFinanceService constructs the finance service.
func NewFinanceService(fees store.Fees, payments store.Payments, students store.Students, validate *validator.Validate, logger *zap.Logger) *FinanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceService{fees: fees, payments: payments, students: students, validator: validate, logger: logger}
}

// ListFees returns every fee line.
func (s *FinanceService) ListFees(ctx context.Context) ([]models.Fee, error) {
	fees, err := s.fees.ListFees(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list fees")
	}
	return fees, nil
}

// CreateFee defines a fee line.
func (s *FinanceService) CreateFee(ctx context.Context, req CreateFeeRequest) (models.Fee, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Fee{}, validationError(err)
	}
	fee := models.Fee{
		LevelID:     req.LevelID,
		GradeID:     req.GradeID,
		Term:        req.Term,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := s.fees.CreateFee(ctx, &fee); err != nil {
		return models.Fee{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create fee")
	}
	return fee, nil
}

// ListPayments returns every payment record.
func (s *FinanceService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.payments.ListPayments(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	return payments, nil
}

// RecordPayment stores a payment after confirming the student exists. A
// receipt reference is generated when the caller supplies none.
func (s *FinanceService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Payment{}, validationError(err)
	}
	if _, err := s.students.GetStudent(ctx, req.StudentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Payment{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("studentId %d does not resolve to a student", req.StudentID))
		}
		return models.Payment{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify student")
	}
	reference := req.Reference
	if reference == nil || *reference == "" {
		generated := "RCP-" + strings.ToUpper(uuid.NewString()[:8])
		reference = &generated
	}
	payment := models.Payment{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: reference,
		Date:      req.Date,
		Term:      req.Term,
	}
	if err := s.payments.CreatePayment(ctx, &payment); err != nil {
		return models.Payment{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record payment")
	}
	s.logger.Info("payment recorded", zap.Int("student_id", payment.StudentID), zap.Int("amount", payment.Amount))
	return payment, nil
}
