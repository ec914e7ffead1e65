package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/store"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
	"github.com/shule-labs/shule-api/pkg/export"
)

// ReportService renders tabular exports from the live store.
type ReportService struct {
	students store.Students
	payments store.Payments
	logger   *zap.Logger
}

// NewReportService constructs the report service.
func NewReportService(students store.Students, payments store.Payments, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{students: students, payments: payments, logger: logger}
}

// StudentsRoster renders the full student roster as CSV.
func (s *ReportService) StudentsRoster(ctx context.Context) ([]byte, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	table := export.Table{
		Title:   "Student Roster",
		Headers: []string{"Admission No", "First Name", "Last Name", "Level", "Grade", "Gender", "Status"},
	}
	for _, st := range students {
		table.Rows = append(table.Rows, []string{
			st.AdmissionNo, st.FirstName, st.LastName, st.LevelID, st.GradeID, st.Gender, st.Status,
		})
	}
	out, err := export.CSV(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster")
	}
	return out, nil
}

// PaymentsStatement renders every payment as a PDF statement, resolving
// student names where the record still exists.
func (s *ReportService) PaymentsStatement(ctx context.Context) ([]byte, error) {
	payments, err := s.payments.ListPayments(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	names := make(map[int]string, len(students))
	for _, st := range students {
		names[st.ID] = st.FirstName + " " + st.LastName
	}

	table := export.Table{
		Title:   "Payments Statement",
		Headers: []string{"Date", "Student", "Amount", "Method", "Reference", "Term"},
	}
	var total int
	for _, p := range payments {
		name, ok := names[p.StudentID]
		if !ok {
			name = fmt.Sprintf("student #%d", p.StudentID)
		}
		reference := ""
		if p.Reference != nil {
			reference = *p.Reference
		}
		table.Rows = append(table.Rows, []string{
			p.Date, name, strconv.Itoa(p.Amount), p.Method, reference, p.Term,
		})
		total += p.Amount
	}
	table.Rows = append(table.Rows, []string{"", "Total", strconv.Itoa(total), "", "", ""})

	out, err := export.PDF(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render statement")
	}
	return out, nil
}
