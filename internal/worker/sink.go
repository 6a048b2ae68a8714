package worker

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExportSink stores rendered export files
type ExportSink interface {
	// Save writes the file produced by write under name and returns its location
	Save(ctx context.Context, name string, write func(w io.Writer) error) (string, error)
}

// dirSink writes exports into a local directory
type dirSink struct {
	dir string
}

// NewDirSink creates a sink writing into dir, creating it when missing
func NewDirSink(dir string) (ExportSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &dirSink{dir: dir}, nil
}

// Save renders into a temporary file first so readers never see a partial export
func (s *dirSink) Save(ctx context.Context, name string, write func(w io.Writer) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to move export into place: %w", err)
	}

	return path, nil
}
