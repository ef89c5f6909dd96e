package models

// College is the tenant boundary; every report is scoped to exactly one college.
type College struct {
	ID   string `db:"college_id" json:"college_id"`
	Name string `db:"name" json:"name"`
	Code string `db:"code" json:"code"`
}
