package models

// Attendance statuses accepted on record creation.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Attendance is one register entry. One record per (student, date) is a
// convention only; duplicates are accepted.
type Attendance struct {
	ID        int    `db:"id" json:"id"`
	StudentID int    `db:"student_id" json:"studentId"`
	Date      string `db:"date" json:"date"`
	Status    string `db:"status" json:"status"`
}
