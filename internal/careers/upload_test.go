package careers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider records how often it was invoked and either fails or
// returns a fixed reference.
type fakeProvider struct {
	name      string
	reference string
	err       error
	calls     int
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Upload(_ context.Context, _ Resume) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.reference, nil
}

func testResume() Resume {
	return Resume{
		Filename:    "resume.pdf",
		Size:        1234,
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 fake"),
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("first provider succeeds, rest never called", func(t *testing.T) {
		first := &fakeProvider{name: "first", reference: "https://files.example/a"}
		second := &fakeProvider{name: "second", reference: "https://files.example/b"}

		d := NewDispatcher(logger, first, second)
		result, err := d.Dispatch(context.Background(), testResume())

		require.NoError(t, err)
		assert.Equal(t, "first", result.Provider)
		assert.Equal(t, "https://files.example/a", result.Reference)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 0, second.calls)
	})

	t.Run("fallback skips failing providers in order", func(t *testing.T) {
		first := &fakeProvider{name: "first", err: errors.New("unreachable")}
		second := &fakeProvider{name: "second", err: errors.New("503")}
		third := &fakeProvider{name: "third", reference: "https://files.example/c"}
		fourth := &fakeProvider{name: "fourth", reference: "https://files.example/d"}

		d := NewDispatcher(logger, first, second, third, fourth)
		result, err := d.Dispatch(context.Background(), testResume())

		require.NoError(t, err)
		assert.Equal(t, "third", result.Provider)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 1, second.calls)
		assert.Equal(t, 1, third.calls)
		assert.Equal(t, 0, fourth.calls, "providers after the first success must not be attempted")
	})

	t.Run("all providers fail", func(t *testing.T) {
		first := &fakeProvider{name: "first", err: errors.New("down")}
		second := &fakeProvider{name: "second", err: errors.New("also down")}

		d := NewDispatcher(logger, first, second)
		result, err := d.Dispatch(context.Background(), testResume())

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAllProvidersFailed)
		assert.Nil(t, result, "no partial reference on total failure")
	})

	t.Run("no providers configured", func(t *testing.T) {
		d := NewDispatcher(logger)
		result, err := d.Dispatch(context.Background(), testResume())

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAllProvidersFailed)
		assert.Nil(t, result)
	})

	t.Run("retry is independent of earlier attempts", func(t *testing.T) {
		flaky := &fakeProvider{name: "flaky", err: errors.New("down")}
		backup := &fakeProvider{name: "backup", reference: "https://files.example/x"}

		d := NewDispatcher(logger, flaky, backup)

		// First attempt falls through to the backup.
		result, err := d.Dispatch(context.Background(), testResume())
		require.NoError(t, err)
		assert.Equal(t, "backup", result.Provider)

		// The flaky provider recovers; the second attempt follows the
		// same ordering from scratch and hits it first.
		flaky.err = nil
		flaky.reference = "https://files.example/y"

		result, err = d.Dispatch(context.Background(), testResume())
		require.NoError(t, err)
		assert.Equal(t, "flaky", result.Provider)
		assert.Equal(t, 2, flaky.calls)
		assert.Equal(t, 1, backup.calls)
	})
}
