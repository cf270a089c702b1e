package careers

import (
	"fmt"
	"strings"
	"time"
)

// FormatSize renders a byte count the way it appears in the
// notification body, e.g. "1.20 MB".
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}

// BuildApplicationMessage assembles the notification for a completed
// application. The body carries everything the hiring inbox needs:
// position, applicant identity and contact details, stated experience,
// a human-readable timestamp, and the resume reference with the
// original filename and size.
func BuildApplicationMessage(app Application, result UploadResult, now time.Time) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "New Job Application\n\n")
	fmt.Fprintf(&b, "Position: %s\n", app.JobTitle)
	fmt.Fprintf(&b, "Name: %s\n", app.FullName())
	fmt.Fprintf(&b, "Email: %s\n", app.Email)
	fmt.Fprintf(&b, "Phone: %s\n", app.Phone)
	fmt.Fprintf(&b, "Experience: %s\n", app.Experience)
	fmt.Fprintf(&b, "Applied: %s\n\n", now.Format("January 2, 2006 15:04 MST"))
	fmt.Fprintf(&b, "Resume: %s (%s)\n", app.Resume.Filename, FormatSize(app.Resume.Size))
	fmt.Fprintf(&b, "Download: %s\n", result.Reference)

	return Message{
		Subject:  fmt.Sprintf("Job Application: %s - %s", app.JobTitle, app.FullName()),
		Template: "box",
		Body:     b.String(),
		Fields: map[string]string{
			"first_name": app.FirstName,
			"last_name":  app.LastName,
			"email":      app.Email,
			"phone":      app.Phone,
			"experience": app.Experience,
			"job_title":  app.JobTitle,
		},
	}
}

// BuildContactMessage assembles the notification for a contact-form
// submission. cc is an optional extra destination forwarded to relays
// that support it.
func BuildContactMessage(sub ContactSubmission, cc string, now time.Time) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "New Contact Form Submission\n\n")
	fmt.Fprintf(&b, "Name: %s %s\n", sub.FirstName, sub.LastName)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}
	fmt.Fprintf(&b, "Subject: %s\n", sub.Subject)
	fmt.Fprintf(&b, "Received: %s\n\n", now.Format("January 2, 2006 15:04 MST"))
	fmt.Fprintf(&b, "%s\n", sub.Message)

	return Message{
		Subject:  fmt.Sprintf("New Contact Form Submission: %s", sub.Subject),
		Template: "table",
		Body:     b.String(),
		Fields: map[string]string{
			"first_name": sub.FirstName,
			"last_name":  sub.LastName,
			"email":      sub.Email,
			"phone":      sub.Phone,
			"subject":    sub.Subject,
			"message":    sub.Message,
		},
		CC: cc,
	}
}
