package models

// Notice audiences accepted on creation.
const (
	AudienceAll      = "All"
	AudienceParents  = "Parents"
	AudienceTeachers = "Teachers"
)

// Notice is a school announcement addressed to an audience group.
type Notice struct {
	ID       int    `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Content  string `db:"content" json:"content"`
	Audience string `db:"audience" json:"audience"`
	Date     string `db:"date" json:"date"`
}
