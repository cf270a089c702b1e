package dto

import "github.com/orangeot/backoffice-api/internal/careers"

// ApplicationForm is the multipart form for a job application. The
// resume file itself arrives as the "resume" file part and is handled
// separately by the handler.
type ApplicationForm struct {
	FirstName  string `form:"first_name" binding:"required"`
	LastName   string `form:"last_name" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Phone      string `form:"phone" binding:"required"`
	Experience string `form:"experience" binding:"required"`
	JobTitle   string `form:"job_title" binding:"required"`
}

// ContactForm is the JSON body of a contact-form submission
type ContactForm struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// SubmissionResponse reports a submission outcome. The notice is the
// user-facing part; the counts let the client render delivery detail.
type SubmissionResponse struct {
	Notice    careers.Notice `json:"notice"`
	Attempted int            `json:"attempted,omitempty"`
	Delivered int            `json:"delivered,omitempty"`
}
