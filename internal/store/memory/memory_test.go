package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	first := models.Student{AdmissionNo: "ADM010", FirstName: "Test", LastName: "User", LevelID: "primary", GradeID: "p3", DOB: "2015-01-01", Gender: "M", Status: "active"}
	second := first
	second.AdmissionNo = "ADM011"

	require.NoError(t, s.CreateStudent(ctx, &first))
	require.NoError(t, s.CreateStudent(ctx, &second))
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestCreateThenGetRoundTrips(t *testing.T) {
	s := New()
	ctx := context.Background()

	in := models.Student{AdmissionNo: "ADM010", FirstName: "Test", LastName: "User", LevelID: "primary", GradeID: "p3", DOB: "2015-01-01", Gender: "M", Status: "active"}
	require.NoError(t, s.CreateStudent(ctx, &in))

	got, err := s.GetStudent(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestGetMissingStudent(t *testing.T) {
	s := New()

	_, err := s.GetStudent(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	s := New()
	ctx := context.Background()

	in := models.Student{AdmissionNo: "ADM010", FirstName: "Test", LastName: "User", LevelID: "primary", GradeID: "p3", DOB: "2015-01-01", Gender: "M", Status: "active"}
	require.NoError(t, s.CreateStudent(ctx, &in))

	status := "inactive"
	updated, err := s.UpdateStudent(ctx, in.ID, models.StudentPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, "Test", updated.FirstName)
	assert.Equal(t, "ADM010", updated.AdmissionNo)
}

func TestUpdateMissingStudent(t *testing.T) {
	s := New()

	status := "active"
	_, err := s.UpdateStudent(context.Background(), 9999, models.StudentPatch{Status: &status})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteRemovesAndIsIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()

	in := models.Student{AdmissionNo: "ADM010", FirstName: "Test", LastName: "User", LevelID: "primary", GradeID: "p3", DOB: "2015-01-01", Gender: "M", Status: "active"}
	require.NoError(t, s.CreateStudent(ctx, &in))

	require.NoError(t, s.DeleteStudent(ctx, in.ID))
	_, err := s.GetStudent(ctx, in.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	rows, err := s.ListStudents(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// deleting an absent id never errors
	assert.NoError(t, s.DeleteStudent(ctx, in.ID))
	assert.NoError(t, s.DeleteStudent(ctx, 9999))
}

func TestDuplicateAttendanceIsAccepted(t *testing.T) {
	s := New()
	ctx := context.Background()

	first := models.Attendance{StudentID: 2, Date: "2026-01-07", Status: models.AttendanceAbsent}
	second := first
	require.NoError(t, s.CreateAttendance(ctx, &first))
	require.NoError(t, s.CreateAttendance(ctx, &second))
	assert.NotEqual(t, first.ID, second.ID)

	rows, err := s.ListAttendance(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestListReturnsInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		n := models.Notice{Title: title, Content: "c", Audience: models.AudienceAll, Date: "2026-01-08"}
		require.NoError(t, s.CreateNotice(ctx, &n))
	}

	rows, err := s.ListNotices(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "first", rows[0].Title)
	assert.Equal(t, "third", rows[2].Title)
}

func TestSeedLoadsFixtureRows(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Seed(ctx))

	students, err := s.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "ADM001", students[0].AdmissionNo)
	assert.Equal(t, "ADM002", students[1].AdmissionNo)

	register, err := s.ListAttendance(ctx)
	require.NoError(t, err)
	assert.Len(t, register, 2)

	exams, err := s.ListExams(ctx)
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, "Mid-Term 2026", exams[0].Name)

	marks, err := s.ListMarks(ctx)
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, exams[0].ID, marks[0].ExamID)
}
