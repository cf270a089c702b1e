package providers

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/orangeot/backoffice-api/internal/careers"
)

// Inline encodes the resume as a self-contained data URL. No network
// call and no external dependency, at the cost of a payload
// proportional to the file size. Usually configured last in the chain
// so it acts as the provider of last resort.
type Inline struct{}

// NewInline creates the inline encoder
func NewInline() *Inline {
	return &Inline{}
}

func (i *Inline) Name() string {
	return "inline"
}

func (i *Inline) Upload(_ context.Context, resume careers.Resume) (string, error) {
	if len(resume.Data) == 0 {
		return "", fmt.Errorf("resume data is empty")
	}

	encoded := base64.StdEncoding.EncodeToString(resume.Data)
	return fmt.Sprintf("data:%s;base64,%s", resume.ContentType, encoded), nil
}
