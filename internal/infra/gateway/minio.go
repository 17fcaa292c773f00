package gateway

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BucketGateway resolves content-addressed identifiers against an
// S3-compatible bucket instead of a public HTTP gateway. Used by deployments
// that pin registered artwork into their own object store.
type BucketGateway struct {
	client *minio.Client
	bucket string
}

// NewBucket connects to the object store and verifies the bucket exists.
func NewBucket(ctx context.Context, endpoint, region, bucket, accessKey, secretKey string, useSSL bool) (*BucketGateway, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, err
	}

	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("object bucket %q does not exist", bucket)
	}

	return &BucketGateway{client: cli, bucket: bucket}, nil
}

// Fetch reads the object keyed by its content address.
func (g *BucketGateway) Fetch(ctx context.Context, objectID string) ([]byte, error) {
	obj, err := g.client.GetObject(ctx, g.bucket, objectID, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("bucket fetch %s: %w", objectID, err)
	}
	defer obj.Close()

	blob, err := io.ReadAll(io.LimitReader(obj, maxObjectBytes))
	if err != nil {
		return nil, fmt.Errorf("read bucket object %s: %w", objectID, err)
	}
	return blob, nil
}
