package ingest

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/reachlab/geodash/internal/config"
	"github.com/reachlab/geodash/pkg/errors"
)

// ObjectSource reads dataset files from an S3-compatible bucket, for
// deployments where analysts upload exports to object storage instead of a
// mounted volume.
type ObjectSource struct {
	client *minio.Client
	bucket string
}

// NewObjectSource connects to the configured object store.
func NewObjectSource(cfg config.ObjectStoreConfig) (*ObjectSource, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeServiceUnavailable, "failed to create object store client")
	}
	return &ObjectSource{client: client, bucket: cfg.Bucket}, nil
}

func (s *ObjectSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetUnreadable, "failed to fetch dataset object").WithDetail(name)
	}

	// GetObject is lazy; Stat forces the request so a missing object fails
	// here instead of on first read.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, errors.Wrap(err, errors.ErrCodeDatasetUnreadable, "failed to stat dataset object").WithDetail(name)
	}
	return obj, nil
}

func (s *ObjectSource) String() string {
	return "bucket:" + s.bucket
}
