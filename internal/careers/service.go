package careers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// ErrNotificationFailed is returned when no destination accepted the
// notification. The submission data is preserved by the caller so the
// user can retry without re-entering anything.
var ErrNotificationFailed = errors.New("all notification deliveries failed")

// Outcome is the result of a submission flow: the user-facing notice
// plus delivery counts for the response payload.
type Outcome struct {
	Notice    Notice
	Attempted int
	Delivered int
}

// ServiceConfig holds the submission service dependencies
type ServiceConfig struct {
	Logger          *slog.Logger
	Policy          Policy
	Dispatcher      *Dispatcher
	Notifier        *Notifier
	ContactNotifier *Notifier
	ContactCC       string
	Events          EventPublisher
	Now             func() time.Time
}

// Service orchestrates the submission flows: validate, obtain a resume
// reference, fan the notification out, emit an audit event. The HTTP
// layer owns presentation; this service only emits Notice values.
type Service struct {
	logger          *slog.Logger
	policy          Policy
	dispatcher      *Dispatcher
	notifier        *Notifier
	contactNotifier *Notifier
	contactCC       string
	events          EventPublisher
	now             func() time.Time
}

// NewService creates the submission service
func NewService(cfg *ServiceConfig) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		logger:          cfg.Logger,
		policy:          cfg.Policy,
		dispatcher:      cfg.Dispatcher,
		notifier:        cfg.Notifier,
		contactNotifier: cfg.ContactNotifier,
		contactCC:       cfg.ContactCC,
		events:          cfg.Events,
		now:             now,
	}
}

// ValidateApplication checks required fields and the resume policy.
// It runs before any network call and has no side effects.
func (s *Service) ValidateApplication(app Application) error {
	required := []struct {
		name  string
		value string
	}{
		{"first_name", app.FirstName},
		{"last_name", app.LastName},
		{"email", app.Email},
		{"phone", app.Phone},
		{"experience", app.Experience},
		{"job_title", app.JobTitle},
	}

	for _, field := range required {
		if field.value == "" {
			return &MissingFieldError{Field: field.name}
		}
	}

	if app.Resume.Filename == "" || len(app.Resume.Data) == 0 {
		return &MissingFieldError{Field: "resume"}
	}

	return s.policy.Check(app.Resume.Size, app.Resume.ContentType)
}

// SubmitApplication runs the full pipeline for one job application.
// On success or partial delivery the returned error is nil and the
// Notice describes the outcome; on failure the Notice is the
// user-facing message and the error carries the diagnostic cause.
func (s *Service) SubmitApplication(ctx context.Context, app Application) (Outcome, error) {
	if err := s.ValidateApplication(app); err != nil {
		return Outcome{Notice: validationNotice(err, s.policy)}, err
	}

	submittedAt := s.now()

	result, err := s.dispatcher.Dispatch(ctx, app.Resume)
	if err != nil {
		s.logger.Error("Resume upload failed",
			slog.String("job_title", app.JobTitle),
			slog.String("error", err.Error()),
		)
		publishEvent(ctx, s.events, s.logger, EventApplicationFailed, submittedAt, map[string]string{
			"job_title": app.JobTitle,
			"stage":     "upload",
		})
		return Outcome{Notice: submissionFailedNotice()}, err
	}

	msg := BuildApplicationMessage(app, *result, submittedAt)
	report := s.notifier.Broadcast(ctx, msg)

	outcome := Outcome{
		Attempted: report.Attempted,
		Delivered: report.Delivered,
	}

	if !report.Ok() {
		publishEvent(ctx, s.events, s.logger, EventApplicationFailed, submittedAt, map[string]string{
			"job_title": app.JobTitle,
			"stage":     "notify",
			"provider":  result.Provider,
		})
		outcome.Notice = submissionFailedNotice()
		return outcome, fmt.Errorf("%w: %w", ErrNotificationFailed, errors.Join(report.Errs...))
	}

	detail := map[string]string{
		"job_title": app.JobTitle,
		"provider":  result.Provider,
		"delivered": strconv.Itoa(report.Delivered),
		"attempted": strconv.Itoa(report.Attempted),
	}

	if report.Degraded() {
		publishEvent(ctx, s.events, s.logger, EventApplicationDegraded, submittedAt, detail)
		outcome.Notice = Notice{
			Kind:        NoticeSuccess,
			Title:       "Application Submitted!",
			Description: fmt.Sprintf("Your application was delivered to %d of %d inboxes.", report.Delivered, report.Attempted),
		}
		return outcome, nil
	}

	publishEvent(ctx, s.events, s.logger, EventApplicationReceived, submittedAt, detail)
	outcome.Notice = Notice{
		Kind:        NoticeSuccess,
		Title:       "Application Submitted!",
		Description: "Your application has been sent successfully!",
	}
	return outcome, nil
}

// SubmitContact relays a contact-form message
func (s *Service) SubmitContact(ctx context.Context, sub ContactSubmission) (Outcome, error) {
	receivedAt := s.now()

	msg := BuildContactMessage(sub, s.contactCC, receivedAt)
	report := s.contactNotifier.Broadcast(ctx, msg)

	outcome := Outcome{
		Attempted: report.Attempted,
		Delivered: report.Delivered,
	}

	if !report.Ok() {
		publishEvent(ctx, s.events, s.logger, EventContactFailed, receivedAt, map[string]string{
			"subject": sub.Subject,
		})
		outcome.Notice = Notice{
			Kind:        NoticeError,
			Title:       "Submission Failed",
			Description: "Please try again or contact us directly.",
		}
		return outcome, fmt.Errorf("%w: %w", ErrNotificationFailed, errors.Join(report.Errs...))
	}

	publishEvent(ctx, s.events, s.logger, EventContactReceived, receivedAt, map[string]string{
		"subject":   sub.Subject,
		"delivered": strconv.Itoa(report.Delivered),
		"attempted": strconv.Itoa(report.Attempted),
	})

	description := "We'll get back to you as soon as possible."
	if report.Degraded() {
		description = fmt.Sprintf("Your message was delivered to %d of %d inboxes.", report.Delivered, report.Attempted)
	}

	outcome.Notice = Notice{
		Kind:        NoticeSuccess,
		Title:       "Message Sent!",
		Description: description,
	}
	return outcome, nil
}

func submissionFailedNotice() Notice {
	return Notice{
		Kind:        NoticeError,
		Title:       "Submission Failed",
		Description: "Unable to submit application. Please try again or contact us directly.",
	}
}

// validationNotice maps a validation error to the user-facing message
// naming the specific constraint violated.
func validationNotice(err error, policy Policy) Notice {
	var tooLarge *FileTooLargeError
	if errors.As(err, &tooLarge) {
		return Notice{
			Kind:        NoticeError,
			Title:       "File too large",
			Description: fmt.Sprintf("Please upload a file smaller than %s", FormatSize(policy.MaxBytes)),
		}
	}

	var wrongType *FileTypeError
	if errors.As(err, &wrongType) {
		return Notice{
			Kind:        NoticeError,
			Title:       "Invalid file type",
			Description: "Please upload a PDF, DOC, or DOCX file",
		}
	}

	var missing *MissingFieldError
	if errors.As(err, &missing) {
		if missing.Field == "resume" {
			return Notice{
				Kind:        NoticeError,
				Title:       "Resume required",
				Description: "Please upload your resume to continue",
			}
		}
		return Notice{
			Kind:        NoticeError,
			Title:       "Missing information",
			Description: "Please fill in all required fields",
		}
	}

	return Notice{
		Kind:        NoticeError,
		Title:       "Invalid submission",
		Description: "Please check the form and try again",
	}
}
