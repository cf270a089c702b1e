package careers

import "fmt"

// Application is one job application as collected from the form. It is
// ephemeral: built for a single submission, never stored.
type Application struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Experience string
	JobTitle   string
	Resume     Resume
}

// FullName returns the applicant's display name
func (a Application) FullName() string {
	return a.FirstName + " " + a.LastName
}

// ContactSubmission is one contact-form message
type ContactSubmission struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
}

// MissingFieldError is returned when a required form field is empty
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NoticeKind classifies a user-facing notice
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the user-facing outcome of a flow. The flow emits it as a
// value; presentation (toast, dialog, page banner) is the caller's
// concern. Descriptions stay short, non-technical and actionable;
// provider names and status codes go to logs only.
type Notice struct {
	Kind        NoticeKind `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
}
