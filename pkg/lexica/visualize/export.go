package visualize

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/sirupsen/logrus"
)

//go:embed templates/network.html.tmpl
var templateFS embed.FS

var page = template.Must(template.New("network.html.tmpl").
	Funcs(sprig.FuncMap()).
	Funcs(template.FuncMap{"safeCSS": func(s string) template.CSS { return template.CSS(s) }}).
	ParseFS(templateFS, "templates/network.html.tmpl"))

// maxSuffix bounds the numeric suffix search.
const maxSuffix = 1000

// Render writes the HTML document to w.
func Render(w io.Writer, doc Document) error {
	if err := page.Execute(w, doc); err != nil {
		return fmt.Errorf("render visualization: %w", err)
	}
	return nil
}

// Exporter writes visualizations without overwriting earlier ones.
type Exporter struct {
	logger logrus.FieldLogger
	now    func() time.Time
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithLogger sets the logger.
func WithLogger(logger logrus.FieldLogger) ExporterOption {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the time source used for collision suffixes.
func WithClock(now func() time.Time) ExporterOption {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// NewExporter creates an exporter.
func NewExporter(opts ...ExporterOption) *Exporter {
	e := &Exporter{
		logger: logrus.StandardLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders doc to path, or to a suffixed sibling when path already
// exists. It returns the path actually written.
func (e *Exporter) Export(path string, doc Document) (string, error) {
	target, err := ResolvePath(path, e.now())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create visualization dir: %w", err)
	}

	// O_EXCL keeps a concurrent writer from being clobbered between the
	// existence check and the write.
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create visualization: %w", err)
	}
	if err := Render(f, doc); err != nil {
		f.Close()
		os.Remove(target)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close visualization: %w", err)
	}

	fields := logrus.Fields{"path": target, "nodes": len(doc.Nodes), "edges": len(doc.Edges)}
	if target != path {
		e.logger.WithFields(fields).WithField("requested", path).Info("visualization path existed, wrote suffixed copy")
	} else {
		e.logger.WithFields(fields).Info("visualization written")
	}
	return target, nil
}

// ResolvePath returns path when it does not exist. Otherwise it appends
// _YYYYMMDD-HHMMSS before the extension and, if that exists too, -N.
func ResolvePath(path string, now time.Time) (string, error) {
	free, err := available(path)
	if err != nil || free {
		return path, err
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext) + "_" + now.Format("20060102-150405")
	candidate := base + ext
	for n := 2; n <= maxSuffix; n++ {
		free, err := available(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d%s", base, n, ext)
	}
	return "", fmt.Errorf("no free visualization path for %s", path)
}

func available(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}
