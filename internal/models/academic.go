package models

// Exam is an assessment sitting for a level.
type Exam struct {
	ID      int    `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Term    string `db:"term" json:"term"`
	Year    int    `db:"year" json:"year"`
	LevelID string `db:"level_id" json:"levelId"`
}

// Mark is a subject result for a student in an exam. Score is used for
// primary levels, Remark for kindergarten; the split is informal and not
// schema-enforced.
type Mark struct {
	ID        int     `db:"id" json:"id"`
	StudentID int     `db:"student_id" json:"studentId"`
	ExamID    int     `db:"exam_id" json:"examId"`
	SubjectID string  `db:"subject_id" json:"subjectId"`
	Score     *int    `db:"score" json:"score"`
	Remark    *string `db:"remark" json:"remark"`
}
