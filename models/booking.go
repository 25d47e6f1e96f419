package models

import "fmt"

// BookingRequest is a transfer booking submitted from the site. The wire
// names "from"/"to" denote pickup and dropoff locations. A request lives
// for the duration of one HTTP call and is never persisted.
type BookingRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	From  string `json:"from"`
	To    string `json:"to"`
	Date  string `json:"date"`
	Time  string `json:"time,omitempty"`
	Notes string `json:"notes,omitempty"`

	// Optional richer-form fields.
	CarID         string `json:"carId,omitempty"`
	CarTitle      string `json:"carTitle,omitempty"`
	ContactMethod string `json:"contactMethod,omitempty"`
}

// MissingRequired reports whether any required field is absent. The server
// re-checks this even though the form does the same check client-side.
func (r *BookingRequest) MissingRequired() bool {
	return r.Name == "" || r.Phone == "" || r.From == "" || r.To == "" || r.Date == ""
}

// Route renders the trip as "pickup → dropoff" for summaries.
func (r *BookingRequest) Route() string {
	return fmt.Sprintf("%s → %s", r.From, r.To)
}

// APIResponse is the uniform response body of the lead-capture endpoints.
type APIResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
