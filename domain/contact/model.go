package contact

import (
	"database/sql"
	"time"
)

// Form is the urlencoded body of POST /contact/submit. The message may arrive
// as "message" or under the older "comment" name.
type Form struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Subject string `form:"subject"`
	Message string `form:"message"`
	Comment string `form:"comment"`
	Company string `form:"company"`
	Consent string `form:"consent"`
}

// Body returns the message text, whichever field carried it.
func (f Form) Body() string {
	if f.Message != "" {
		return f.Message
	}
	return f.Comment
}

// Submission is a row of contact_submissions. Rows are append-only; only the
// delivery pair is written after the attempt.
type Submission struct {
	ID         int64          `db:"id" json:"id"`
	Name       string         `db:"name" json:"name"`
	Email      string         `db:"email" json:"email"`
	Phone      string         `db:"phone" json:"phone,omitempty"`
	Subject    string         `db:"subject" json:"subject,omitempty"`
	Message    string         `db:"message" json:"message"`
	Company    string         `db:"company" json:"company,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	EmailSent  bool           `db:"email_sent" json:"email_sent"`
	EmailError sql.NullString `db:"email_error" json:"-"`
}

// Stats summarises stored submissions.
type Stats struct {
	Total  int `db:"total" json:"total"`
	Sent   int `db:"sent" json:"sent"`
	Failed int `db:"failed" json:"failed"`
}

// SuccessRate is the delivered share in percent.
func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Sent) / float64(s.Total) * 100
}

// State is where a submission ended up.
type State string

const (
	StateReceived       State = "received"
	StateDelivered      State = "delivered"
	StateDeliveryFailed State = "delivery_failed"
)

// Outcome is the result of one submission attempt.
type Outcome struct {
	Submission Submission
	State      State
	// Err is the delivery error when State is StateDeliveryFailed.
	Err error
	// Stored is false when the row could not be written.
	Stored bool
}

const maxEmailErrorLen = 500
