package models

// Category is college independent reference data attached to events.
type Category struct {
	ID          string  `db:"category_id" json:"category_id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	ColorCode   *string `db:"color_code" json:"color_code"`
}
