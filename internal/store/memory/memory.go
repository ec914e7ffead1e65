// Package memory provides the in-memory store backing the demo deployment.
// All data lives in process maps and resets on restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
)

// Store keeps one map and one id counter per entity kind. The original
// runtime handled one request at a time; Go does not, so every access takes
// the lock.
type Store struct {
	mu sync.RWMutex

	students   map[int]models.Student
	parents    map[int]models.Parent
	fees       map[int]models.Fee
	payments   map[int]models.Payment
	attendance map[int]models.Attendance
	exams      map[int]models.Exam
	marks      map[int]models.Mark
	notices    map[int]models.Notice

	studentID    int
	parentID     int
	feeID        int
	paymentID    int
	attendanceID int
	examID       int
	markID       int
	noticeID     int
}

var _ store.Store = (*Store)(nil)

// New returns an empty memory store.
func New() *Store {
	return &Store{
		students:   make(map[int]models.Student),
		parents:    make(map[int]models.Parent),
		fees:       make(map[int]models.Fee),
		payments:   make(map[int]models.Payment),
		attendance: make(map[int]models.Attendance),
		exams:      make(map[int]models.Exam),
		marks:      make(map[int]models.Mark),
		notices:    make(map[int]models.Notice),
	}
}

// Students

func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, 0, len(s.students))
	for _, row := range s.students {
		out = append(out, row)
	}
	sortByID(out, func(r models.Student) int { return r.ID })
	return out, nil
}

func (s *Store) GetStudent(ctx context.Context, id int) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.students[id]
	if !ok {
		return models.Student{}, store.ErrNotFound
	}
	return row, nil
}

func (s *Store) CreateStudent(ctx context.Context, row *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studentID++
	row.ID = s.studentID
	s.students[row.ID] = *row
	return nil
}

func (s *Store) UpdateStudent(ctx context.Context, id int, patch models.StudentPatch) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.students[id]
	if !ok {
		return models.Student{}, store.ErrNotFound
	}
	patch.Apply(&row)
	s.students[id] = row
	return row, nil
}

// DeleteStudent removes the record if present; deleting an absent id is a
// silent no-op.
func (s *Store) DeleteStudent(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.students, id)
	return nil
}

// Parents

func (s *Store) ListParents(ctx context.Context) ([]models.Parent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Parent, 0, len(s.parents))
	for _, row := range s.parents {
		out = append(out, row)
	}
	sortByID(out, func(r models.Parent) int { return r.ID })
	return out, nil
}

func (s *Store) CreateParent(ctx context.Context, row *models.Parent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parentID++
	row.ID = s.parentID
	s.parents[row.ID] = *row
	return nil
}

// Fees

func (s *Store) ListFees(ctx context.Context) ([]models.Fee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Fee, 0, len(s.fees))
	for _, row := range s.fees {
		out = append(out, row)
	}
	sortByID(out, func(r models.Fee) int { return r.ID })
	return out, nil
}

func (s *Store) CreateFee(ctx context.Context, row *models.Fee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeID++
	row.ID = s.feeID
	s.fees[row.ID] = *row
	return nil
}

// Payments

func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Payment, 0, len(s.payments))
	for _, row := range s.payments {
		out = append(out, row)
	}
	sortByID(out, func(r models.Payment) int { return r.ID })
	return out, nil
}

func (s *Store) CreatePayment(ctx context.Context, row *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentID++
	row.ID = s.paymentID
	s.payments[row.ID] = *row
	return nil
}

// Attendance

func (s *Store) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Attendance, 0, len(s.attendance))
	for _, row := range s.attendance {
		out = append(out, row)
	}
	sortByID(out, func(r models.Attendance) int { return r.ID })
	return out, nil
}

func (s *Store) CreateAttendance(ctx context.Context, row *models.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendanceID++
	row.ID = s.attendanceID
	s.attendance[row.ID] = *row
	return nil
}

// Exams

func (s *Store) ListExams(ctx context.Context) ([]models.Exam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Exam, 0, len(s.exams))
	for _, row := range s.exams {
		out = append(out, row)
	}
	sortByID(out, func(r models.Exam) int { return r.ID })
	return out, nil
}

func (s *Store) GetExam(ctx context.Context, id int) (models.Exam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.exams[id]
	if !ok {
		return models.Exam{}, store.ErrNotFound
	}
	return row, nil
}

func (s *Store) CreateExam(ctx context.Context, row *models.Exam) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.examID++
	row.ID = s.examID
	s.exams[row.ID] = *row
	return nil
}

// Marks

func (s *Store) ListMarks(ctx context.Context) ([]models.Mark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Mark, 0, len(s.marks))
	for _, row := range s.marks {
		out = append(out, row)
	}
	sortByID(out, func(r models.Mark) int { return r.ID })
	return out, nil
}

func (s *Store) CreateMark(ctx context.Context, row *models.Mark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markID++
	row.ID = s.markID
	s.marks[row.ID] = *row
	return nil
}

// Notices

func (s *Store) ListNotices(ctx context.Context) ([]models.Notice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notice, 0, len(s.notices))
	for _, row := range s.notices {
		out = append(out, row)
	}
	sortByID(out, func(r models.Notice) int { return r.ID })
	return out, nil
}

func (s *Store) CreateNotice(ctx context.Context, row *models.Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noticeID++
	row.ID = s.noticeID
	s.notices[row.ID] = *row
	return nil
}

// sortByID keeps list output in insertion order; ids are monotonic so the
// sort reproduces it.
func sortByID[T any](rows []T, id func(T) int) {
	sort.Slice(rows, func(i, j int) bool { return id(rows[i]) < id(rows[j]) })
}
