package service

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/store/memory"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

func TestFinanceServiceCreateFee(t *testing.T) {
	st := memory.New()
	svc := NewFinanceService(st, st, st, validator.New(), zap.NewNop())

	fee, err := svc.CreateFee(context.Background(), CreateFeeRequest{
		LevelID: "kg",
		Term:    "term1",
		Amount:  200000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fee.ID)
	assert.Nil(t, fee.GradeID)
}

func TestFinanceServiceRecordPaymentUnknownStudent(t *testing.T) {
	st := memory.New()
	svc := NewFinanceService(st, st, st, validator.New(), zap.NewNop())

	_, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		StudentID: 77,
		Amount:    50000,
		Method:    "cash",
		Date:      "2026-02-01",
		Term:      "term1",
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "studentId 77")
}

func TestFinanceServiceRecordPaymentGeneratesReference(t *testing.T) {
	st := memory.New()
	studentSvc := NewStudentService(st, validator.New(), zap.NewNop())
	student := newTestStudent(t, studentSvc)

	svc := NewFinanceService(st, st, st, validator.New(), zap.NewNop())
	payment, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		StudentID: student.ID,
		Amount:    50000,
		Method:    "mobile_money",
		Date:      "2026-02-01",
		Term:      "term1",
	})
	require.NoError(t, err)
	require.NotNil(t, payment.Reference)
	assert.True(t, strings.HasPrefix(*payment.Reference, "RCP-"))
	assert.Len(t, *payment.Reference, 12)
}

func TestFinanceServiceRecordPaymentKeepsReference(t *testing.T) {
	st := memory.New()
	studentSvc := NewStudentService(st, validator.New(), zap.NewNop())
	student := newTestStudent(t, studentSvc)

	svc := NewFinanceService(st, st, st, validator.New(), zap.NewNop())
	ref := "MM99887"
	payment, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		StudentID: student.ID,
		Amount:    75000,
		Method:    "mobile_money",
		Reference: &ref,
		Date:      "2026-02-02",
		Term:      "term1",
	})
	require.NoError(t, err)
	require.NotNil(t, payment.Reference)
	assert.Equal(t, "MM99887", *payment.Reference)
}
