package careers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"1.2 MB resume", 1258291, "1.20 MB"},
		{"exactly one megabyte", 1048576, "1.00 MB"},
		{"five megabytes", 5 * 1024 * 1024, "5.00 MB"},
		{"small file", 51200, "0.05 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestBuildApplicationMessage(t *testing.T) {
	app := Application{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@x.com",
		Phone:      "+1-555-0100",
		Experience: "5 years",
		JobTitle:   "Senior React Developer",
		Resume: Resume{
			Filename:    "jane-doe-cv.pdf",
			Size:        1258291,
			ContentType: "application/pdf",
		},
	}
	result := UploadResult{Provider: "fileio", Reference: "https://file.io/abc123"}
	now := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

	msg := BuildApplicationMessage(app, result, now)

	assert.Equal(t, "Job Application: Senior React Developer - Jane Doe", msg.Subject)
	assert.Contains(t, msg.Body, "Senior React Developer")
	assert.Contains(t, msg.Body, "Jane Doe")
	assert.Contains(t, msg.Body, "jane@x.com")
	assert.Contains(t, msg.Body, "+1-555-0100")
	assert.Contains(t, msg.Body, "5 years")
	assert.Contains(t, msg.Body, "jane-doe-cv.pdf (1.20 MB)")
	assert.Contains(t, msg.Body, "https://file.io/abc123")
	assert.Contains(t, msg.Body, "March 14, 2025")

	assert.Equal(t, "box", msg.Template)
	assert.Equal(t, "Jane", msg.Fields["first_name"])
	assert.Equal(t, "Senior React Developer", msg.Fields["job_title"])
}

func TestBuildContactMessage(t *testing.T) {
	sub := ContactSubmission{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
		Subject:   "Fleet onboarding",
		Message:   "We operate 40 trucks and need back-office support.",
	}
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	msg := BuildContactMessage(sub, "sales@orangeot.com", now)

	assert.Equal(t, "New Contact Form Submission: Fleet onboarding", msg.Subject)
	assert.Equal(t, "table", msg.Template)
	assert.Equal(t, "sales@orangeot.com", msg.CC)
	assert.Contains(t, msg.Body, "John Smith")
	assert.Contains(t, msg.Body, "We operate 40 trucks")
	assert.NotContains(t, msg.Body, "Phone:", "empty phone is omitted")
}
