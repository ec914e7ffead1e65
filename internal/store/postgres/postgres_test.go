package postgres

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return New(sqlx.NewDb(db, "sqlmock")), mock, func() { db.Close() }
}

func studentColumns() []string {
	return []string{"id", "admission_no", "first_name", "last_name", "level_id", "grade_id", "stream_id", "dob", "gender", "status", "photo", "parent_contact", "emergency_contact", "medical_notes"}
}

func TestListStudents(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	rows := sqlmock.NewRows(studentColumns()).
		AddRow(1, "ADM001", "Aisha", "Kato", "kg", "baby", nil, "2020-05-12", "F", "active", nil, nil, nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM students ORDER BY id").WillReturnRows(rows)

	students, err := s.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "ADM001", students[0].AdmissionNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStudentNotFound(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM students WHERE id").
		WithArgs(9999).
		WillReturnRows(sqlmock.NewRows(studentColumns()))

	_, err := s.GetStudent(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStudentReturnsID(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO students").
		WithArgs("ADM010", "Test", "User", "primary", "p3", nil, "2015-01-01", "M", "active", nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	student := models.Student{AdmissionNo: "ADM010", FirstName: "Test", LastName: "User", LevelID: "primary", GradeID: "p3", DOB: "2015-01-01", Gender: "M", Status: "active"}
	require.NoError(t, s.CreateStudent(context.Background(), &student))
	assert.Equal(t, 7, student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStudentMergesPatch(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	existing := sqlmock.NewRows(studentColumns()).
		AddRow(3, "ADM003", "Old", "Name", "primary", "p1", nil, "2015-01-01", "M", "active", nil, nil, nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM students WHERE id").WithArgs(3).WillReturnRows(existing)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET")).
		WithArgs(3, "ADM003", "New", "Name", "primary", "p1", nil, "2015-01-01", "M", "active", nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	first := "New"
	updated, err := s.UpdateStudent(context.Background(), 3, models.StudentPatch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.FirstName)
	assert.Equal(t, "ADM003", updated.AdmissionNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStudentIgnoresMissing(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM students WHERE id").
		WithArgs(9999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.DeleteStudent(context.Background(), 9999))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateParentEncodesStudents(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO parents").
		WithArgs("Grace", "Kato", "+256712345678", nil, []byte(`["ADM001"]`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	parent := models.Parent{FirstName: "Grace", LastName: "Kato", Phone: "+256712345678", Students: []string{"ADM001"}}
	require.NoError(t, s.CreateParent(context.Background(), &parent))
	assert.Equal(t, 1, parent.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListParentsDecodesStudents(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "phone", "email", "students"}).
		AddRow(1, "Grace", "Kato", "+256712345678", nil, []byte(`["ADM001","ADM002"]`))
	mock.ExpectQuery("SELECT (.+) FROM parents ORDER BY id").WillReturnRows(rows)

	parents, err := s.ListParents(context.Background())
	require.NoError(t, err)
	require.Len(t, parents, 1)
	assert.Equal(t, []string{"ADM001", "ADM002"}, parents[0].Students)
	assert.NoError(t, mock.ExpectationsWereMet())
}
