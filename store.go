package datakit

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/lshkit/datakit/blobstore"
	minioblob "github.com/lshkit/datakit/blobstore/minio"
	s3blob "github.com/lshkit/datakit/blobstore/s3"
)

// resolveStore routes a destination or source string to a blob store and
// the blob name within it:
//
//	s3://bucket/path/file        -> S3 (ambient AWS config)
//	minio://bucket/path/file     -> MinIO (MINIO_ENDPOINT + credentials env)
//	anything else                -> local filesystem path
func resolveStore(ctx context.Context, raw string) (blobstore.Store, string, error) {
	switch {
	case strings.HasPrefix(raw, "s3://"):
		u, err := url.Parse(raw)
		if err != nil {
			return nil, "", err
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, "", fmt.Errorf("datakit: malformed s3 url %q", raw)
		}
		store, err := s3blob.NewDefaultStore(ctx, u.Host, path.Dir(key))
		if err != nil {
			return nil, "", err
		}
		return store, path.Base(key), nil

	case strings.HasPrefix(raw, "minio://"):
		u, err := url.Parse(raw)
		if err != nil {
			return nil, "", err
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, "", fmt.Errorf("datakit: malformed minio url %q", raw)
		}
		endpoint := os.Getenv("MINIO_ENDPOINT")
		if endpoint == "" {
			return nil, "", fmt.Errorf("datakit: MINIO_ENDPOINT is not set")
		}
		store, err := minioblob.Connect(
			endpoint,
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			u.Host,
			path.Dir(key),
			os.Getenv("MINIO_INSECURE") == "",
		)
		if err != nil {
			return nil, "", err
		}
		return store, path.Base(key), nil

	default:
		dir := filepath.Dir(raw)
		return blobstore.NewLocalStore(dir), filepath.Base(raw), nil
	}
}
