package ingest

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/reachlab/geodash/pkg/errors"
)

// Source supplies named dataset files. Implementations exist for a local
// directory and for S3-compatible object storage.
type Source interface {
	// Open returns the contents of the named dataset file. The caller owns
	// the returned reader and must close it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// String describes the source for logs.
	String() string
}

// DirSource reads dataset files from a local directory.
type DirSource struct {
	dir string
}

// NewDirSource returns a Source over the given directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetUnreadable, "failed to open dataset file").WithDetail(name)
	}
	return f, nil
}

func (s *DirSource) String() string {
	return "dir:" + s.dir
}
