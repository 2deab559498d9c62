package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/lexica/pkg/lexica/internalerr"
)

// Format is the document kind inferred from a file extension.
type Format string

const (
	PlainText Format = "plaintext"
	Markdown  Format = "markdown"
	HTML      Format = "html"
	JSONL     Format = "jsonl"
	Unknown   Format = "unknown"
)

// DetectFormat maps a file extension onto a Format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return PlainText
	case ".md", ".markdown":
		return Markdown
	case ".html", ".htm":
		return HTML
	case ".jsonl", ".ndjson":
		return JSONL
	}
	return Unknown
}

// Loader reads documents from disk. Bad files are skipped with a warning,
// never aborting the batch.
type Loader struct {
	logger logrus.FieldLogger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used for skip warnings.
func WithLogger(logger logrus.FieldLogger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a document loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadDir reads every supported file directly inside dir, in name order.
// Only an unreadable directory is an error.
func (l *Loader) LoadDir(dir string) ([]Doc, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var docs []Doc
	for _, name := range names {
		path := filepath.Join(dir, name)
		loaded, err := l.LoadFile(path)
		if err != nil {
			l.logger.WithField("file", path).WithError(err).Warn("skipping document")
			continue
		}
		docs = append(docs, loaded...)
	}
	l.logger.WithFields(logrus.Fields{"dir": dir, "documents": len(docs)}).Info("documents loaded")
	return docs, nil
}

// LoadFile reads one file. JSONL files may yield several documents.
func (l *Loader) LoadFile(path string) ([]Doc, error) {
	format := DetectFormat(path)
	if format == Unknown {
		return nil, fmt.Errorf("%s: %w", filepath.Ext(path), internalerr.ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	if format == JSONL {
		docs, warnings := parseJSONL(name, data)
		for _, w := range warnings {
			l.logger.WithField("file", path).Warn(w)
		}
		if len(docs) == 0 {
			return nil, fmt.Errorf("no valid items: %w", internalerr.ErrEmptyDocument)
		}
		return docs, nil
	}

	if !isText(data) {
		return nil, fmt.Errorf("binary content: %w", internalerr.ErrUnsupportedFormat)
	}
	text, replaced := decodeText(data)
	if replaced {
		l.logger.WithField("file", path).Warn("replaced undecodable byte sequences")
	}

	switch format {
	case Markdown:
		text, err = markdownToText([]byte(text))
	case HTML:
		text, err = htmlToText([]byte(text))
	}
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	doc := Doc{Source: name, Text: strings.TrimSpace(text)}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return []Doc{doc}, nil
}
