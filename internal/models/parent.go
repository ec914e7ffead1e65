package models

// Parent is a guardian record. Students holds admission numbers, not student
// ids; the link is informational and no referential integrity applies.
type Parent struct {
	ID        int      `db:"id" json:"id"`
	FirstName string   `db:"first_name" json:"firstName"`
	LastName  string   `db:"last_name" json:"lastName"`
	Phone     string   `db:"phone" json:"phone"`
	Email     *string  `db:"email" json:"email"`
	Students  []string `json:"students"`
}
