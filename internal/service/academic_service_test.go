package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/store/memory"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

func TestAcademicServiceCreateExam(t *testing.T) {
	st := memory.New()
	svc := NewAcademicService(st, st, st, validator.New(), zap.NewNop())

	exam, err := svc.CreateExam(context.Background(), CreateExamRequest{
		Name:    "End of Term 1",
		Term:    "term1",
		Year:    2026,
		LevelID: "primary",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, exam.ID)
}

func TestAcademicServiceRecordMarkUnknownExam(t *testing.T) {
	st := memory.New()
	studentSvc := NewStudentService(st, validator.New(), zap.NewNop())
	student := newTestStudent(t, studentSvc)

	svc := NewAcademicService(st, st, st, validator.New(), zap.NewNop())
	score := 64
	_, err := svc.RecordMark(context.Background(), RecordMarkRequest{
		StudentID: student.ID,
		ExamID:    12,
		SubjectID: "math",
		Score:     &score,
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "examId 12")
}

func TestAcademicServiceRecordMark(t *testing.T) {
	st := memory.New()
	studentSvc := NewStudentService(st, validator.New(), zap.NewNop())
	student := newTestStudent(t, studentSvc)

	svc := NewAcademicService(st, st, st, validator.New(), zap.NewNop())
	exam, err := svc.CreateExam(context.Background(), CreateExamRequest{
		Name: "Mid-Term", Term: "term1", Year: 2026, LevelID: "primary",
	})
	require.NoError(t, err)

	remark := "Excellent progress"
	mark, err := svc.RecordMark(context.Background(), RecordMarkRequest{
		StudentID: student.ID,
		ExamID:    exam.ID,
		SubjectID: "eng",
		Remark:    &remark,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, mark.ID)
	assert.Nil(t, mark.Score)
	require.NotNil(t, mark.Remark)
	assert.Equal(t, "Excellent progress", *mark.Remark)
}

// Scores are stored as given; the service does not clamp or reject ranges.
func TestAcademicServiceRecordMarkScoreUnbounded(t *testing.T) {
	st := memory.New()
	studentSvc := NewStudentService(st, validator.New(), zap.NewNop())
	student := newTestStudent(t, studentSvc)

	svc := NewAcademicService(st, st, st, validator.New(), zap.NewNop())
	exam, err := svc.CreateExam(context.Background(), CreateExamRequest{
		Name: "Mid-Term", Term: "term1", Year: 2026, LevelID: "primary",
	})
	require.NoError(t, err)

	score := 150
	mark, err := svc.RecordMark(context.Background(), RecordMarkRequest{
		StudentID: student.ID,
		ExamID:    exam.ID,
		SubjectID: "math",
		Score:     &score,
	})
	require.NoError(t, err)
	require.NotNil(t, mark.Score)
	assert.Equal(t, 150, *mark.Score)
}
