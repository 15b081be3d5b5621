package corpus

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"go.uber.org/zap"
)

// Loader reads a corpus document from a local path or any URL the afs service
// understands and builds the Index from it.
type Loader struct {
	fs      afs.Service
	columns Columns
	logger  *zap.Logger
}

func NewLoader(columns Columns, logger *zap.Logger) *Loader {
	return &Loader{
		fs:      afs.New(),
		columns: columns.withDefaults(),
		logger:  logger,
	}
}

// Load builds the index. A missing source yields ErrSourceNotFound, which callers
// treat as fatal.
func (l *Loader) Load(ctx context.Context, location string) (*Index, error) {
	rows, err := l.LoadRows(ctx, location)
	if err != nil {
		return nil, err
	}
	idx := NewIndex(rows)
	l.logger.Info("Corpus loaded",
		zap.String("location", location),
		zap.Int("entries", idx.Len()),
		zap.Int("dropped", idx.Dropped()),
	)
	return idx, nil
}

// LoadRows returns the raw rows without validation.
func (l *Loader) LoadRows(ctx context.Context, location string) ([]Row, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("%w: empty location", ErrSourceNotFound)
	}
	URL, err := resolveURL(location)
	if err != nil {
		return nil, err
	}
	exists, err := l.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check corpus source %s: %w", location, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, location)
	}
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus source %s: %w", location, err)
	}
	rows, err := Parse(Ext(location), data, l.columns)
	if err != nil {
		return nil, fmt.Errorf("failed to parse corpus source %s: %w", location, err)
	}
	return rows, nil
}

// Ext returns the lower-cased extension of a path or URL, ignoring any query string.
func Ext(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	return strings.ToLower(path.Ext(filepath.ToSlash(location)))
}

func resolveURL(location string) (string, error) {
	if strings.Contains(location, "://") {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("failed to resolve corpus path %s: %w", location, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}
