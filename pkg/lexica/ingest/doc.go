package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cognicore/lexica/pkg/lexica/internalerr"
)

// Doc is a plain-text document and the name it was read from.
type Doc struct {
	Source string
	Text   string
}

// Validate checks if the document has required fields
func (d *Doc) Validate() error {
	if strings.TrimSpace(d.Source) == "" {
		return errors.New("doc source is required")
	}

	if strings.TrimSpace(d.Text) == "" {
		return fmt.Errorf("%s: %w", d.Source, internalerr.ErrEmptyDocument)
	}

	return nil
}
