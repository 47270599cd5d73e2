package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sink is an output destination for rendered images.
type Sink interface {
	// Create opens a named object for writing; the object is complete once the writer is closed.
	Create(ctx context.Context, name string) (io.WriteCloser, error)
	// Path returns where a named object ends up.
	Path(name string) string
	// Local reports whether objects are plain files on this machine.
	Local() bool
}

// NewSink returns the sink for a destination: a directory, or s3://bucket/prefix.
func NewSink(ctx context.Context, dest string, cfg S3Config) (Sink, error) {
	if dest == "" {
		dest = "."
	}

	loc, err := Parse(dest)
	if err != nil {
		return nil, err
	}

	switch loc.Scheme {
	case File:
		return NewDirSink(loc.Raw)
	case S3:
		client, err := newS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &s3Sink{client: client, bucket: loc.Bucket, prefix: loc.Key}, nil
	}

	return nil, fmt.Errorf("output %q: %w", dest, ErrUnsupported)
}

// DirSink writes objects as files under a directory.
type DirSink struct {
	root string
}

// NewDirSink returns a sink rooted at dir, creating it if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %v", err)
	}
	return &DirSink{root: dir}, nil
}

func (s *DirSink) Create(_ context.Context, name string) (io.WriteCloser, error) {
	p, err := s.safePath(name)
	if err != nil {
		return nil, err
	}
	return os.Create(p)
}

func (s *DirSink) Path(name string) string {
	return filepath.Join(s.root, name)
}

func (s *DirSink) Local() bool { return true }

// safePath keeps names from escaping the root; ligand names end up in file names.
func (s *DirSink) safePath(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid output name %q", name)
	}
	return s.Path(name), nil
}
