package entities

import "time"

// Application is a submission from the "join the team" form. It is not
// stored; the worker forwards it to the staff channels.
type Application struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Device      string    `json:"device"`
	Software    string    `json:"software"`
	Position    string    `json:"position"`
	Portfolio   string    `json:"portfolio,omitempty"`
	WhyJoin     string    `json:"why_join"`
	Durability  string    `json:"durability"`
	SubmittedAt time.Time `json:"submitted_at"`
}
