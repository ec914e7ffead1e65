// Package store defines the entity storage contract. Implementations assign
// monotonically increasing integer ids per entity kind and are free of
// business validation; callers validate before writing.
package store

import (
	"context"
	"errors"

	"github.com/shule-labs/shule-api/internal/models"
)

// ErrNotFound is returned when an id does not resolve to a record.
var ErrNotFound = errors.New("record not found")

// Students is the student persistence contract. Delete is an idempotent
// no-op for absent ids, while Update reports ErrNotFound; the asymmetry is
// part of the published API behaviour.
type Students interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id int) (models.Student, error)
	CreateStudent(ctx context.Context, s *models.Student) error
	UpdateStudent(ctx context.Context, id int, patch models.StudentPatch) (models.Student, error)
	DeleteStudent(ctx context.Context, id int) error
}

type Parents interface {
	ListParents(ctx context.Context) ([]models.Parent, error)
	CreateParent(ctx context.Context, p *models.Parent) error
}

type Fees interface {
	ListFees(ctx context.Context) ([]models.Fee, error)
	CreateFee(ctx context.Context, f *models.Fee) error
}

type Payments interface {
	ListPayments(ctx context.Context) ([]models.Payment, error)
	CreatePayment(ctx context.Context, p *models.Payment) error
}

type Attendance interface {
	ListAttendance(ctx context.Context) ([]models.Attendance, error)
	CreateAttendance(ctx context.Context, a *models.Attendance) error
}

type Exams interface {
	ListExams(ctx context.Context) ([]models.Exam, error)
	GetExam(ctx context.Context, id int) (models.Exam, error)
	CreateExam(ctx context.Context, e *models.Exam) error
}

type Marks interface {
	ListMarks(ctx context.Context) ([]models.Mark, error)
	CreateMark(ctx context.Context, m *models.Mark) error
}

type Notices interface {
	ListNotices(ctx context.Context) ([]models.Notice, error)
	CreateNotice(ctx context.Context, n *models.Notice) error
}

// Store aggregates every entity contract so a backend can be injected as a
// single dependency.
type Store interface {
	Students
	Parents
	Fees
	Payments
	Attendance
	Exams
	Marks
	Notices
}
