package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/store/memory"
)

func TestReportServiceStudentsRoster(t *testing.T) {
	st := memory.New()
	studentSvc := NewStudentService(st, validator.New(), zap.NewNop())
	newTestStudent(t, studentSvc)

	svc := NewReportService(st, st, zap.NewNop())
	out, err := svc.StudentsRoster(context.Background())
	require.NoError(t, err)

	body := string(out)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Admission No")
	assert.Contains(t, lines[1], "ADM100")
	assert.Contains(t, lines[1], "Amina")
}

func TestReportServicePaymentsStatement(t *testing.T) {
	st := memory.New()
	studentSvc := NewStudentService(st, validator.New(), zap.NewNop())
	student := newTestStudent(t, studentSvc)

	financeSvc := NewFinanceService(st, st, st, validator.New(), zap.NewNop())
	_, err := financeSvc.RecordPayment(context.Background(), RecordPaymentRequest{
		StudentID: student.ID, Amount: 100000, Method: "cash", Date: "2026-02-01", Term: "term1",
	})
	require.NoError(t, err)

	svc := NewReportService(st, st, zap.NewNop())
	out, err := svc.PaymentsStatement(context.Background())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 500)
}
