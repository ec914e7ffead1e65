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

// CreateExamRequest holds payload for scheduling an exam sitting.
type CreateExamRequest struct {
	Name    string `json:"name" validate:"required"`
	Term    string `json:"term" validate:"required"`
	Year    int    `json:"year" validate:"required"`
	LevelID string `json:"levelId" validate:"required"`
}

// RecordMarkRequest holds one subject result. Score carries primary-level
// results, Remark kindergarten ones; neither is mandatory.
type RecordMarkRequest struct {
	StudentID int     `json:"studentId" validate:"required"`
	ExamID    int     `json:"examId" validate:"required"`
	SubjectID string  `json:"subjectId" validate:"required"`
	Score     *int    `json:"score"`
	Remark    *string `json:"remark"`
}

// AcademicService handles exams and marks.
type AcademicService struct {
	exams     store.Exams
	marks     store.Marks
	students  store.Students
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAcademicService constructs the academic service.
func NewAcademicService(exams store.Exams, marks store.Marks, students store.Students, validate *validator.Validate, logger *zap.Logger) *AcademicService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AcademicService{exams: exams, marks: marks, students: students, validator: validate, logger: logger}
}

// ListExams returns every exam sitting.
func (s *AcademicService) ListExams(ctx context.Context) ([]models.Exam, error) {
	exams, err := s.exams.ListExams(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exams")
	}
	return exams, nil
}

// CreateExam schedules an exam sitting.
func (s *AcademicService) CreateExam(ctx context.Context, req CreateExamRequest) (models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Exam{}, validationError(err)
	}
	exam := models.Exam{Name: req.Name, Term: req.Term, Year: req.Year, LevelID: req.LevelID}
	if err := s.exams.CreateExam(ctx, &exam); err != nil {
		return models.Exam{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create exam")
	}
	return exam, nil
}

// ListMarks returns every recorded result.
func (s *AcademicService) ListMarks(ctx context.Context) ([]models.Mark, error) {
	marks, err := s.marks.ListMarks(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list marks")
	}
	return marks, nil
}

// RecordMark stores a result after confirming both the student and the exam
// exist.
func (s *AcademicService) RecordMark(ctx context.Context, req RecordMarkRequest) (models.Mark, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Mark{}, validationError(err)
	}
	if _, err := s.students.GetStudent(ctx, req.StudentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Mark{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("studentId %d does not resolve to a student", req.StudentID))
		}
		return models.Mark{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify student")
	}
	if _, err := s.exams.GetExam(ctx, req.ExamID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Mark{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("examId %d does not resolve to an exam", req.ExamID))
		}
		return models.Mark{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify exam")
	}
	mark := models.Mark{
		StudentID: req.StudentID,
		ExamID:    req.ExamID,
		SubjectID: req.SubjectID,
		Score:     req.Score,
		Remark:    req.Remark,
	}
	if err := s.marks.CreateMark(ctx, &mark); err != nil {
		return models.Mark{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record mark")
	}
	return mark, nil
}
