package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 client settings. Credentials come from the default AWS chain.
type S3Config struct {
	Region    string
	Endpoint  string // optional; custom endpoint such as MinIO
	PathStyle bool

	httpClient aws.HTTPClient
	loadOpts   []func(*config.LoadOptions) error
}

type objectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func newS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := append([]func(*config.LoadOptions) error{config.WithRegion(region)}, cfg.loadOpts...)
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %v", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.httpClient != nil {
			o.HTTPClient = cfg.httpClient
		}
	}), nil
}

func openS3(ctx context.Context, client objectAPI, loc Location) (io.ReadCloser, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(loc.Bucket), Key: aws.String(loc.Key)})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %v", loc.Bucket, loc.Key, err)
	}
	return out.Body, nil
}

// s3Sink uploads objects under a key prefix.
type s3Sink struct {
	client objectAPI
	bucket string
	prefix string
}

func (s *s3Sink) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	return &s3Writer{ctx: ctx, sink: s, key: s.key(name)}, nil
}

func (s *s3Sink) Path(name string) string {
	return "s3://" + s.bucket + "/" + s.key(name)
}

func (s *s3Sink) Local() bool { return false }

func (s *s3Sink) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// s3Writer buffers an object and uploads it on Close.
type s3Writer struct {
	ctx    context.Context
	sink   *s3Sink
	key    string
	buf    bytes.Buffer
	closed bool
}

func (w *s3Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("write s3://%s/%s: closed", w.sink.bucket, w.key)
	}
	return w.buf.Write(p)
}

func (w *s3Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	_, err := w.sink.client.PutObject(w.ctx, &s3.PutObjectInput{
		Bucket:        aws.String(w.sink.bucket),
		Key:           aws.String(w.key),
		Body:          bytes.NewReader(w.buf.Bytes()),
		ContentLength: aws.Int64(int64(w.buf.Len())),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %v", w.sink.bucket, w.key, err)
	}
	return nil
}
