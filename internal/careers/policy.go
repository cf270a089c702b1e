package careers

import (
	"fmt"
	"slices"
)

// Default resume acceptance policy, used when config leaves the
// careers section empty.
const DefaultMaxResumeBytes = 5 * 1024 * 1024

var DefaultAllowedMimeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// FileTooLargeError is returned when a resume exceeds the size limit
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %d bytes (limit %d bytes)", e.Size, e.Limit)
}

// FileTypeError is returned when a resume has a disallowed MIME type
type FileTypeError struct {
	ContentType string
}

func (e *FileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %q", e.ContentType)
}

// Policy is the resume acceptance policy: a size ceiling and a MIME
// type allowlist. It is checked before any network call is made.
type Policy struct {
	MaxBytes     int64
	AllowedTypes []string
}

// NewPolicy builds a policy from configured values, falling back to
// the defaults for zero values.
func NewPolicy(maxBytes int64, allowedTypes []string) Policy {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxResumeBytes
	}
	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedMimeTypes
	}
	return Policy{
		MaxBytes:     maxBytes,
		AllowedTypes: allowedTypes,
	}
}

// Check validates a candidate file against the policy. A file of
// exactly MaxBytes is accepted. The returned error identifies the
// specific constraint violated; it never mutates any state.
func (p Policy) Check(size int64, contentType string) error {
	if size > p.MaxBytes {
		return &FileTooLargeError{Size: size, Limit: p.MaxBytes}
	}

	if !slices.Contains(p.AllowedTypes, contentType) {
		return &FileTypeError{ContentType: contentType}
	}

	return nil
}
