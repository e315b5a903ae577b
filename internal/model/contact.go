package model

import "time"

// Subject classifies a contact submission.
type Subject string

const (
	SubjectGeneral   Subject = "GENERAL"
	SubjectProgram   Subject = "PROGRAM"
	SubjectVolunteer Subject = "VOLUNTEER"
	SubjectDonation  Subject = "DONATION"
	SubjectFeedback  Subject = "FEEDBACK"
	SubjectOther     Subject = "OTHER"
)

// Subjects returns all valid subjects in display order.
func Subjects() []Subject {
	return []Subject{
		SubjectGeneral,
		SubjectProgram,
		SubjectVolunteer,
		SubjectDonation,
		SubjectFeedback,
		SubjectOther,
	}
}

// Valid reports whether s is one of the enumerated subjects.
func (s Subject) Valid() bool {
	switch s {
	case SubjectGeneral, SubjectProgram, SubjectVolunteer, SubjectDonation, SubjectFeedback, SubjectOther:
		return true
	}
	return false
}

// Label returns the human-readable display label for s.
func (s Subject) Label() string {
	switch s {
	case SubjectGeneral:
		return "General Inquiry"
	case SubjectProgram:
		return "Program Information"
	case SubjectVolunteer:
		return "Volunteer Opportunity"
	case SubjectDonation:
		return "Donation Question"
	case SubjectFeedback:
		return "Feedback/Suggestion"
	case SubjectOther:
		return "Other"
	}
	return string(s)
}

// SubjectChoice pairs a subject value with its display label.
type SubjectChoice struct {
	Value Subject `json:"value"`
	Label string  `json:"label"`
}

// ContactSubmission represents a message submitted via the contact form.
// Name and Message are stored HTML-escaped; Email is stored lower-cased.
type ContactSubmission struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Subject       Subject   `json:"subject"`
	Message       string    `json:"message"`
	IsResponded   bool      `json:"is_responded"`
	ResponseNotes string    `json:"response_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ContactListOptions carries filter parameters for listing contact submissions.
type ContactListOptions struct {
	// Email filters by case-insensitive substring match. Empty means no filter.
	Email string
	// Subject filters by exact match. Empty means no filter.
	Subject Subject
}
