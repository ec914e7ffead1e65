package models

// Fee is a billable amount for a level, optionally narrowed to a grade.
// Amount is in whole shillings.
type Fee struct {
	ID          int     `db:"id" json:"id"`
	LevelID     string  `db:"level_id" json:"levelId"`
	GradeID     *string `db:"grade_id" json:"gradeId"`
	Term        string  `db:"term" json:"term"`
	Amount      int     `db:"amount" json:"amount"`
	Description *string `db:"description" json:"description"`
}

// Payment records money received against a student. It carries no link to a
// specific Fee record.
type Payment struct {
	ID        int     `db:"id" json:"id"`
	StudentID int     `db:"student_id" json:"studentId"`
	Amount    int     `db:"amount" json:"amount"`
	Method    string  `db:"method" json:"method"`
	Reference *string `db:"reference" json:"reference"`
	Date      string  `db:"date" json:"date"`
	Term      string  `db:"term" json:"term"`
}
