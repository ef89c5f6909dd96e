package models

// Feedback is a rating left by a user for an event.
type Feedback struct {
	ID      string  `db:"feedback_id" json:"feedback_id"`
	EventID string  `db:"event_id" json:"event_id"`
	UserID  string  `db:"user_id" json:"user_id"`
	Rating  int     `db:"rating" json:"rating"`
	Comment *string `db:"comment" json:"comment,omitempty"`
}
