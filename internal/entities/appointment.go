package entities

import "time"

// Appointment is a booked slot on a doctor's calendar. Deleted is the
// soft-delete flag: flipped once by cancellation, never flipped back, and
// never exposed on the wire. Email and Phone are optional contact details
// used only for confirmations and reminders.
type Appointment struct {
	ID       string    `json:"-"`
	DoctorID string    `json:"doctor"`
	First    string    `json:"first"`
	Last     string    `json:"last"`
	DateTime time.Time `json:"datetime"`
	Kind     string    `json:"kind"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Deleted  bool      `json:"-"`
}

// AppointmentRequest carries the raw booking parameters as extracted from
// the query string. DateTime stays a string here; parsing and validation
// happen in the booking service.
type AppointmentRequest struct {
	DoctorID string
	First    string
	Last     string
	DateTime string
	Kind     string
	Email    string
	Phone    string
}
