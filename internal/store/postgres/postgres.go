// Package postgres implements the store contract on PostgreSQL. It exists so
// the demo memory store can be swapped for real persistence without touching
// handlers or services.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
)

// Store is the sqlx-backed implementation. Ids come from serial columns, so
// the per-kind counter lives in the database.
type Store struct {
	db *sqlx.DB
}

var _ store.Store = (*Store)(nil)

// New wraps a database pool as a Store.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT id, admission_no, first_name, last_name, level_id, grade_id, stream_id, dob, gender, status, photo, parent_contact, emergency_contact, medical_notes
        FROM students ORDER BY id`
	students := []models.Student{}
	if err := s.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (s *Store) GetStudent(ctx context.Context, id int) (models.Student, error) {
	const query = `SELECT id, admission_no, first_name, last_name, level_id, grade_id, stream_id, dob, gender, status, photo, parent_contact, emergency_contact, medical_notes
        FROM students WHERE id = $1`
	var student models.Student
	if err := s.db.GetContext(ctx, &student, query, id); err != nil {
		if err == sql.ErrNoRows {
			return models.Student{}, store.ErrNotFound
		}
		return models.Student{}, fmt.Errorf("get student: %w", err)
	}
	return student, nil
}

func (s *Store) CreateStudent(ctx context.Context, row *models.Student) error {
	const query = `INSERT INTO students (admission_no, first_name, last_name, level_id, grade_id, stream_id, dob, gender, status, photo, parent_contact, emergency_contact, medical_notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	if err := s.db.QueryRowContext(ctx, query,
		row.AdmissionNo, row.FirstName, row.LastName, row.LevelID, row.GradeID, row.StreamID,
		row.DOB, row.Gender, row.Status, row.Photo, row.ParentContact, row.EmergencyContact, row.MedicalNotes,
	).Scan(&row.ID); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func (s *Store) UpdateStudent(ctx context.Context, id int, patch models.StudentPatch) (models.Student, error) {
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return models.Student{}, err
	}
	patch.Apply(&student)

	const query = `UPDATE students SET admission_no = $2, first_name = $3, last_name = $4, level_id = $5, grade_id = $6, stream_id = $7, dob = $8, gender = $9, status = $10, photo = $11, parent_contact = $12, emergency_contact = $13, medical_notes = $14
        WHERE id = $1`
	if _, err := s.db.ExecContext(ctx, query,
		student.ID, student.AdmissionNo, student.FirstName, student.LastName, student.LevelID, student.GradeID, student.StreamID,
		student.DOB, student.Gender, student.Status, student.Photo, student.ParentContact, student.EmergencyContact, student.MedicalNotes,
	); err != nil {
		return models.Student{}, fmt.Errorf("update student: %w", err)
	}
	return student, nil
}

// DeleteStudent removes the row if present; absent ids are a no-op.
func (s *Store) DeleteStudent(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
