package careers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Resume is the applicant's file as received from the form. The data
// is held in memory for the lifetime of one submission and discarded
// afterwards; nothing is persisted.
type Resume struct {
	Filename    string
	Size        int64
	ContentType string
	Data        []byte
}

// UploadResult is the durable-enough reference obtained for a resume:
// a hosted download link or an inline encoded payload, depending on
// which provider produced it.
type UploadResult struct {
	Provider  string
	Reference string
}

// UploadProvider obtains a reference for a resume. Implementations are
// functionally interchangeable; the dispatcher treats them as an
// ordered fallback chain.
type UploadProvider interface {
	Name() string
	Upload(ctx context.Context, resume Resume) (string, error)
}

// ErrAllProvidersFailed is returned when every provider in the chain
// failed. The wrapped errors carry per-provider detail for logs only.
var ErrAllProvidersFailed = errors.New("all upload providers failed")

// Dispatcher tries upload providers strictly in order. Provider k+1 is
// only attempted after provider k's failure is observed; the first
// success short-circuits the rest. A dispatch carries no state between
// invocations, so retrying the same file is always safe.
type Dispatcher struct {
	providers []UploadProvider
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher over the given provider chain
func NewDispatcher(logger *slog.Logger, providers ...UploadProvider) *Dispatcher {
	return &Dispatcher{
		providers: providers,
		logger:    logger,
	}
}

// Dispatch returns the first successful provider's reference, or
// ErrAllProvidersFailed wrapping every attempt's error. On failure no
// partial result is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, resume Resume) (*UploadResult, error) {
	if len(d.providers) == 0 {
		return nil, fmt.Errorf("%w: no providers configured", ErrAllProvidersFailed)
	}

	var attemptErrs []error

	for _, provider := range d.providers {
		reference, err := provider.Upload(ctx, resume)
		if err != nil {
			d.logger.Warn("Upload provider failed, trying next",
				slog.String("provider", provider.Name()),
				slog.String("file", resume.Filename),
				slog.String("error", err.Error()),
			)
			attemptErrs = append(attemptErrs, fmt.Errorf("%s: %w", provider.Name(), err))
			continue
		}

		d.logger.Info("Resume reference obtained",
			slog.String("provider", provider.Name()),
			slog.String("file", resume.Filename),
			slog.Int64("size", resume.Size),
		)

		return &UploadResult{
			Provider:  provider.Name(),
			Reference: reference,
		}, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(attemptErrs...))
}
