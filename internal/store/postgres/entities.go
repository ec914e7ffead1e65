package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
)

// parentRow maps the parents table; the students column is a jsonb array of
// admission numbers.
type parentRow struct {
	ID        int     `db:"id"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Phone     string  `db:"phone"`
	Email     *string `db:"email"`
	Students  []byte  `db:"students"`
}

func (r parentRow) model() (models.Parent, error) {
	p := models.Parent{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName, Phone: r.Phone, Email: r.Email}
	if len(r.Students) > 0 {
		if err := json.Unmarshal(r.Students, &p.Students); err != nil {
			return models.Parent{}, fmt.Errorf("decode parent students: %w", err)
		}
	}
	return p, nil
}

func (s *Store) ListParents(ctx context.Context) ([]models.Parent, error) {
	rows := []parentRow{}
	if err := s.db.SelectContext(ctx, &rows, "SELECT id, first_name, last_name, phone, email, students FROM parents ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list parents: %w", err)
	}
	parents := make([]models.Parent, 0, len(rows))
	for _, row := range rows {
		p, err := row.model()
		if err != nil {
			return nil, err
		}
		parents = append(parents, p)
	}
	return parents, nil
}

func (s *Store) CreateParent(ctx context.Context, row *models.Parent) error {
	students, err := json.Marshal(row.Students)
	if err != nil {
		return fmt.Errorf("encode parent students: %w", err)
	}
	const query = "INSERT INTO parents (first_name, last_name, phone, email, students) VALUES ($1, $2, $3, $4, $5) RETURNING id"
	if err := s.db.QueryRowContext(ctx, query, row.FirstName, row.LastName, row.Phone, row.Email, students).Scan(&row.ID); err != nil {
		return fmt.Errorf("create parent: %w", err)
	}
	return nil
}

func (s *Store) ListFees(ctx context.Context) ([]models.Fee, error) {
	fees := []models.Fee{}
	if err := s.db.SelectContext(ctx, &fees, "SELECT id, level_id, grade_id, term, amount, description FROM fees ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	return fees, nil
}

func (s *Store) CreateFee(ctx context.Context, row *models.Fee) error {
	const query = "INSERT INTO fees (level_id, grade_id, term, amount, description) VALUES ($1, $2, $3, $4, $5) RETURNING id"
	if err := s.db.QueryRowContext(ctx, query, row.LevelID, row.GradeID, row.Term, row.Amount, row.Description).Scan(&row.ID); err != nil {
		return fmt.Errorf("create fee: %w", err)
	}
	return nil
}

func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := s.db.SelectContext(ctx, &payments, "SELECT id, student_id, amount, method, reference, date, term FROM payments ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *Store) CreatePayment(ctx context.Context, row *models.Payment) error {
	const query = "INSERT INTO payments (student_id, amount, method, reference, date, term) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id"
	if err := s.db.QueryRowContext(ctx, query, row.StudentID, row.Amount, row.Method, row.Reference, row.Date, row.Term).Scan(&row.ID); err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (s *Store) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	register := []models.Attendance{}
	if err := s.db.SelectContext(ctx, &register, "SELECT id, student_id, date, status FROM attendance ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return register, nil
}

func (s *Store) CreateAttendance(ctx context.Context, row *models.Attendance) error {
	const query = "INSERT INTO attendance (student_id, date, status) VALUES ($1, $2, $3) RETURNING id"
	if err := s.db.QueryRowContext(ctx, query, row.StudentID, row.Date, row.Status).Scan(&row.ID); err != nil {
		return fmt.Errorf("create attendance: %w", err)
	}
	return nil
}

func (s *Store) ListExams(ctx context.Context) ([]models.Exam, error) {
	exams := []models.Exam{}
	if err := s.db.SelectContext(ctx, &exams, "SELECT id, name, term, year, level_id FROM exams ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	return exams, nil
}

func (s *Store) GetExam(ctx context.Context, id int) (models.Exam, error) {
	var exam models.Exam
	if err := s.db.GetContext(ctx, &exam, "SELECT id, name, term, year, level_id FROM exams WHERE id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return models.Exam{}, store.ErrNotFound
		}
		return models.Exam{}, fmt.Errorf("get exam: %w", err)
	}
	return exam, nil
}

func (s *Store) CreateExam(ctx context.Context, row *models.Exam) error {
	const query = "INSERT INTO exams (name, term, year, level_id) VALUES ($1, $2, $3, $4) RETURNING id"
	if err := s.db.QueryRowContext(ctx, query, row.Name, row.Term, row.Year, row.LevelID).Scan(&row.ID); err != nil {
		return fmt.Errorf("create exam: %w", err)
	}
	return nil
}

func (s *Store) ListMarks(ctx context.Context) ([]models.Mark, error) {
	marks := []models.Mark{}
	if err := s.db.SelectContext(ctx, &marks, "SELECT id, student_id, exam_id, subject_id, score, remark FROM marks ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}
	return marks, nil
}

func (s *Store) CreateMark(ctx context.Context, row *models.Mark) error {
	const query = "INSERT INTO marks (student_id, exam_id, subject_id, score, remark) VALUES ($1, $2, $3, $4, $5) RETURNING id"
	if err := s.db.QueryRowContext(ctx, query, row.StudentID, row.ExamID, row.SubjectID, row.Score, row.Remark).Scan(&row.ID); err != nil {
		return fmt.Errorf("create mark: %w", err)
	}
	return nil
}

func (s *Store) ListNotices(ctx context.Context) ([]models.Notice, error) {
	notices := []models.Notice{}
	if err := s.db.SelectContext(ctx, &notices, "SELECT id, title, content, audience, date FROM notices ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return notices, nil
}

func (s *Store) CreateNotice(ctx context.Context, row *models.Notice) error {
	const query = "INSERT INTO notices (title, content, audience, date) VALUES ($1, $2, $3, $4) RETURNING id"
	if err := s.db.QueryRowContext(ctx, query, row.Title, row.Content, row.Audience, row.Date).Scan(&row.ID); err != nil {
		return fmt.Errorf("create notice: %w", err)
	}
	return nil
}
