package careers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Check(t *testing.T) {
	policy := NewPolicy(2*1024*1024, []string{"application/pdf", "application/msword"})

	tests := []struct {
		name        string
		size        int64
		contentType string
		wantErr     error
	}{
		{
			name:        "well under the limit",
			size:        1024,
			contentType: "application/pdf",
			wantErr:     nil,
		},
		{
			name:        "exactly at the limit is accepted",
			size:        2 * 1024 * 1024,
			contentType: "application/pdf",
			wantErr:     nil,
		},
		{
			name:        "one byte over is rejected",
			size:        2*1024*1024 + 1,
			contentType: "application/pdf",
			wantErr:     &FileTooLargeError{},
		},
		{
			name:        "disallowed type rejected regardless of size",
			size:        10,
			contentType: "image/png",
			wantErr:     &FileTypeError{},
		},
		{
			name:        "second allowed type accepted",
			size:        500,
			contentType: "application/msword",
			wantErr:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Check(tt.size, tt.contentType)

			switch tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
			case *FileTooLargeError:
				var tooLarge *FileTooLargeError
				require.ErrorAs(t, err, &tooLarge)
				assert.Equal(t, tt.size, tooLarge.Size)
				assert.Equal(t, policy.MaxBytes, tooLarge.Limit)
			case *FileTypeError:
				var wrongType *FileTypeError
				require.ErrorAs(t, err, &wrongType)
				assert.Equal(t, tt.contentType, wrongType.ContentType)
			}
		})
	}
}

func TestNewPolicy_Defaults(t *testing.T) {
	t.Run("zero values fall back to defaults", func(t *testing.T) {
		policy := NewPolicy(0, nil)

		assert.Equal(t, int64(DefaultMaxResumeBytes), policy.MaxBytes)
		assert.Equal(t, DefaultAllowedMimeTypes, policy.AllowedTypes)
	})

	t.Run("configured values are kept", func(t *testing.T) {
		policy := NewPolicy(1024, []string{"application/pdf"})

		assert.Equal(t, int64(1024), policy.MaxBytes)
		assert.Equal(t, []string{"application/pdf"}, policy.AllowedTypes)
	})
}
