package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"

	"careerconnect/internal/common"
)

// GCS stores files as objects in a Cloud Storage bucket. Locators are the
// public object URLs.
type GCS struct {
	client *storage.Client
	bucket string
}

func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCS{client: client, bucket: bucket}, nil
}

func (g *GCS) Save(ctx context.Context, dir string, file File) (string, error) {
	object := path.Join(dir, common.NewUUID().String()+strings.ToLower(filepath.Ext(file.Name)))
	writer := g.client.Bucket(g.bucket).Object(object).NewWriter(ctx)
	writer.ContentType = file.ContentType
	if _, err := io.Copy(writer, file.Reader); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("write object %s: %w", object, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", object, err)
	}
	return g.urlFor(object), nil
}

func (g *GCS) Delete(ctx context.Context, locator string) error {
	object, ok := strings.CutPrefix(locator, g.urlFor(""))
	if !ok {
		return fmt.Errorf("locator %q does not belong to bucket %s", locator, g.bucket)
	}
	return g.client.Bucket(g.bucket).Object(object).Delete(ctx)
}

func (g *GCS) Close() error {
	return g.client.Close()
}

func (g *GCS) urlFor(object string) string {
	return "https://storage.googleapis.com/" + g.bucket + "/" + object
}
