package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

const defaultPhotoURL = "https://placehold.co/400"

// CreateStudentRequest holds payload for enrolling a student.
type CreateStudentRequest struct {
	AdmissionNo      string  `json:"admissionNo" validate:"required"`
	FirstName        string  `json:"firstName" validate:"required"`
	LastName         string  `json:"lastName" validate:"required"`
	LevelID          string  `json:"levelId" validate:"required"`
	GradeID          string  `json:"gradeId" validate:"required"`
	StreamID         *string `json:"streamId"`
	DOB              string  `json:"dob" validate:"required"`
	Gender           string  `json:"gender" validate:"required"`
	Status           string  `json:"status"`
	Photo            *string `json:"photo"`
	ParentContact    *string `json:"parentContact"`
	EmergencyContact *string `json:"emergencyContact"`
	MedicalNotes     *string `json:"medicalNotes"`
}

// StudentService handles student use-cases.
type StudentService struct {
	store     store.Students
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(st store.Students, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: st, validator: validate, logger: logger}
}

// List returns every student.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns one student by id.
func (s *StudentService) Get(ctx context.Context, id int) (models.Student, error) {
	student, err := s.store.GetStudent(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create enrols a new student, applying the status and photo defaults.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, validationError(err)
	}
	if req.Status == "" {
		req.Status = "active"
	}
	if req.Photo == nil {
		photo := defaultPhotoURL
		req.Photo = &photo
	}
	student := models.Student{
		AdmissionNo:      req.AdmissionNo,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		LevelID:          req.LevelID,
		GradeID:          req.GradeID,
		StreamID:         req.StreamID,
		DOB:              req.DOB,
		Gender:           req.Gender,
		Status:           req.Status,
		Photo:            req.Photo,
		ParentContact:    req.ParentContact,
		EmergencyContact: req.EmergencyContact,
		MedicalNotes:     req.MedicalNotes,
	}
	if err := s.store.CreateStudent(ctx, &student); err != nil {
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	s.logger.Info("student enrolled", zap.Int("id", student.ID), zap.String("admission_no", student.AdmissionNo))
	return student, nil
}

// Update merges the provided fields onto an existing record.
func (s *StudentService) Update(ctx context.Context, id int, patch models.StudentPatch) (models.Student, error) {
	student, err := s.store.UpdateStudent(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return student, nil
}

// Delete removes a student record. Absent ids are a no-op so the operation
// stays idempotent.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	if err := s.store.DeleteStudent(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	return nil
}
