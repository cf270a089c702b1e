package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orangeot/backoffice-api/internal/api/dto"
	"github.com/orangeot/backoffice-api/internal/careers"
)

// SubmitApplication handles POST /api/v1/applications
// Runs the full submission pipeline for one job application.
func (h *SubmissionHandler) SubmitApplication(c *gin.Context) {
	h.logger.Info("SubmitApplication called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	var form dto.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Error("Invalid application form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.SubmissionResponse{
			Notice: careers.Notice{
				Kind:        careers.NoticeError,
				Title:       "Missing information",
				Description: "Please fill in all required fields",
			},
		})
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.SubmissionResponse{
			Notice: careers.Notice{
				Kind:        careers.NoticeError,
				Title:       "Resume required",
				Description: "Please upload your resume to continue",
			},
		})
		return
	}

	resume, err := h.readResume(fileHeader)
	if err != nil {
		h.logger.Error("Failed to read resume upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.SubmissionResponse{
			Notice: careers.Notice{
				Kind:        careers.NoticeError,
				Title:       "Resume required",
				Description: "Please upload your resume to continue",
			},
		})
		return
	}

	app := careers.Application{
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Email:      form.Email,
		Phone:      form.Phone,
		Experience: form.Experience,
		JobTitle:   form.JobTitle,
		Resume:     *resume,
	}

	outcome, err := h.service.SubmitApplication(c.Request.Context(), app)
	if err != nil {
		status := statusForSubmissionError(err)
		h.logger.Error("Application submission failed",
			slog.String("job_title", form.JobTitle),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
		c.JSON(status, dto.SubmissionResponse{
			Notice:    outcome.Notice,
			Attempted: outcome.Attempted,
			Delivered: outcome.Delivered,
		})
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Notice:    outcome.Notice,
		Attempted: outcome.Attempted,
		Delivered: outcome.Delivered,
	})
}

// SubmitContact handles POST /api/v1/contact
func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	h.logger.Info("SubmitContact called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	var form dto.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Error("Invalid contact form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.SubmissionResponse{
			Notice: careers.Notice{
				Kind:        careers.NoticeError,
				Title:       "Missing information",
				Description: "Please fill in all required fields",
			},
		})
		return
	}

	sub := careers.ContactSubmission{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Subject:   form.Subject,
		Message:   form.Message,
	}

	outcome, err := h.service.SubmitContact(c.Request.Context(), sub)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.SubmissionResponse{
			Notice:    outcome.Notice,
			Attempted: outcome.Attempted,
			Delivered: outcome.Delivered,
		})
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Notice:    outcome.Notice,
		Attempted: outcome.Attempted,
		Delivered: outcome.Delivered,
	})
}

// readResume pulls the uploaded file into memory. Reads are capped one
// byte past the policy limit so an oversized file is still detected
// without buffering all of it.
func (h *SubmissionHandler) readResume(fileHeader *multipart.FileHeader) (*careers.Resume, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open resume upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxResumeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read resume upload: %w", err)
	}

	size := fileHeader.Size
	if int64(len(data)) > size {
		size = int64(len(data))
	}

	return &careers.Resume{
		Filename:    fileHeader.Filename,
		Size:        size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// statusForSubmissionError maps pipeline errors to HTTP statuses:
// local validation is the client's problem, upstream provider failure
// is a bad gateway.
func statusForSubmissionError(err error) int {
	var tooLarge *careers.FileTooLargeError
	var wrongType *careers.FileTypeError
	var missing *careers.MissingFieldError

	switch {
	case errors.As(err, &tooLarge), errors.As(err, &wrongType), errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.Is(err, careers.ErrAllProvidersFailed), errors.Is(err, careers.ErrNotificationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
