// Package blob opens input files and writes output images, locally, over HTTP or on S3.
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/tikz/fingerprints/http"
)

// ErrUnsupported is returned for URI schemes that can't be opened.
var ErrUnsupported = errors.New("unsupported location")

// Scheme of a location.
type Scheme int

const (
	File Scheme = iota
	HTTP
	S3
)

// Location is a parsed input path or output destination.
type Location struct {
	Scheme Scheme
	Raw    string
	Bucket string // S3 bucket
	Key    string // S3 object key or prefix
}

// Parse classifies a local path, http(s) URL or s3://bucket/key URI.
func Parse(raw string) (Location, error) {
	if !strings.Contains(raw, "://") {
		return Location{Scheme: File, Raw: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parse %q: %v", raw, err)
	}

	switch u.Scheme {
	case "file":
		return Location{Scheme: File, Raw: u.Path}, nil
	case "http", "https":
		return Location{Scheme: HTTP, Raw: raw}, nil
	case "s3":
		if u.Host == "" {
			return Location{}, fmt.Errorf("%q: s3 bucket required", raw)
		}
		return Location{Scheme: S3, Raw: raw, Bucket: u.Host, Key: strings.TrimPrefix(u.Path, "/")}, nil
	}

	return Location{}, fmt.Errorf("%q: %w", raw, ErrUnsupported)
}

// Base returns the last element of the location, e.g. the file name of a CSV.
func (l Location) Base() string {
	switch l.Scheme {
	case HTTP:
		if u, err := url.Parse(l.Raw); err == nil {
			return path.Base(u.Path)
		}
	case S3:
		return path.Base(l.Key)
	}
	return filepath.Base(l.Raw)
}

// Open returns a reader for the location contents.
func Open(ctx context.Context, raw string, cfg S3Config) (io.ReadCloser, error) {
	loc, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	switch loc.Scheme {
	case HTTP:
		body, err := http.Get(ctx, loc.Raw)
		if err != nil {
			return nil, fmt.Errorf("download %s: %v", loc.Raw, err)
		}
		return io.NopCloser(bytes.NewReader(body)), nil
	case S3:
		client, err := newS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return openS3(ctx, client, loc)
	}

	f, err := os.Open(loc.Raw)
	if err != nil {
		return nil, err
	}
	return f, nil
}
