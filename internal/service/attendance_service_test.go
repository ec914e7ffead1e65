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

func TestAttendanceServiceMarkInvalidStatus(t *testing.T) {
	st := memory.New()
	svc := NewAttendanceService(st, st, validator.New(), zap.NewNop())

	_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		StudentID: 1,
		Date:      "2026-02-03",
		Status:    "sick",
	})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestAttendanceServiceMarkUnknownStudent(t *testing.T) {
	st := memory.New()
	svc := NewAttendanceService(st, st, validator.New(), zap.NewNop())

	_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		StudentID: 5,
		Date:      "2026-02-03",
		Status:    "present",
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "studentId 5")
}

func TestAttendanceServiceMarkAllowsDuplicates(t *testing.T) {
	st := memory.New()
	studentSvc := NewStudentService(st, validator.New(), zap.NewNop())
	student := newTestStudent(t, studentSvc)

	svc := NewAttendanceService(st, st, validator.New(), zap.NewNop())
	req := MarkAttendanceRequest{StudentID: student.ID, Date: "2026-02-03", Status: "present"}

	first, err := svc.Mark(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Mark(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	register, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, register, 2)
}
