package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

// MarkAttendanceRequest holds one register entry.
type MarkAttendanceRequest struct {
	StudentID int    `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
}

// AttendanceService handles the daily register.
type AttendanceService struct {
	store     store.Attendance
	students  store.Students
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(st store.Attendance, students store.Students, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{store: st, students: students, validator: validate, logger: logger}
}

// List returns every register entry.
func (s *AttendanceService) List(ctx context.Context) ([]models.Attendance, error) {
	register, err := s.store.ListAttendance(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return register, nil
}

// Mark records a register entry after confirming the student exists.
// Marking the same student twice on one date produces two records; the
// register has no uniqueness rule.
func (s *AttendanceService) Mark(ctx context.Context, req MarkAttendanceRequest) (models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Attendance{}, validationError(err)
	}
	if _, err := s.students.GetStudent(ctx, req.StudentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Attendance{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("studentId %d does not resolve to a student", req.StudentID))
		}
		return models.Attendance{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify student")
	}
	entry := models.Attendance{
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    req.Status,
	}
	if err := s.store.CreateAttendance(ctx, &entry); err != nil {
		return models.Attendance{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark attendance")
	}
	return entry, nil
}
