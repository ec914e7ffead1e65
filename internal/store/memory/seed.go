package memory

import (
	"context"

	"github.com/shule-labs/shule-api/internal/models"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

// Seed loads the fixed demo rows the store ships with. It runs at process
// start; the data never survives a restart.
func (s *Store) Seed(ctx context.Context) error {
	students := []models.Student{
		{
			AdmissionNo:   "ADM001",
			FirstName:     "Aisha",
			LastName:      "Kato",
			LevelID:       "kg",
			GradeID:       "baby",
			DOB:           "2020-05-12",
			Gender:        "F",
			Status:        "active",
			Photo:         strptr("https://placehold.co/400"),
			ParentContact: strptr("+256712345678"),
		},
		{
			AdmissionNo:   "ADM002",
			FirstName:     "James",
			LastName:      "Okello",
			LevelID:       "primary",
			GradeID:       "p2",
			StreamID:      strptr("Blue"),
			DOB:           "2016-11-30",
			Gender:        "M",
			Status:        "active",
			Photo:         strptr("https://placehold.co/400"),
			ParentContact: strptr("+256712345678"),
		},
	}
	for i := range students {
		if err := s.CreateStudent(ctx, &students[i]); err != nil {
			return err
		}
	}

	if err := s.CreateParent(ctx, &models.Parent{
		FirstName: "Grace",
		LastName:  "Kato",
		Phone:     "+256712345678",
		Email:     strptr("grace@example.com"),
		Students:  []string{"ADM001"},
	}); err != nil {
		return err
	}

	if err := s.CreateFee(ctx, &models.Fee{
		LevelID:     "primary",
		GradeID:     strptr("p1"),
		Term:        "1",
		Amount:      200000,
		Description: strptr("Tuition Fee Term 1"),
	}); err != nil {
		return err
	}

	if err := s.CreatePayment(ctx, &models.Payment{
		StudentID: students[1].ID,
		Amount:    100000,
		Method:    "Mobile Money",
		Reference: strptr("MM123"),
		Date:      "2026-01-06",
		Term:      "1",
	}); err != nil {
		return err
	}

	register := []models.Attendance{
		{StudentID: students[0].ID, Date: "2026-01-07", Status: models.AttendancePresent},
		{StudentID: students[1].ID, Date: "2026-01-07", Status: models.AttendanceAbsent},
	}
	for i := range register {
		if err := s.CreateAttendance(ctx, &register[i]); err != nil {
			return err
		}
	}

	exam := models.Exam{Name: "Mid-Term 2026", Term: "Mid", Year: 2026, LevelID: "primary"}
	if err := s.CreateExam(ctx, &exam); err != nil {
		return err
	}

	if err := s.CreateMark(ctx, &models.Mark{
		StudentID: students[1].ID,
		ExamID:    exam.ID,
		SubjectID: "English",
		Score:     intptr(78),
	}); err != nil {
		return err
	}

	return s.CreateNotice(ctx, &models.Notice{
		Title:    "Welcome Back!",
		Content:  "School reopens on Feb 2nd. Please clear all fees.",
		Audience: models.AudienceAll,
		Date:     "2026-01-08",
	})
}
