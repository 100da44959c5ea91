package store

import (
	"context"
	"io"
	"strings"

	"sam-audio-server/src/application/cloud_storage/entity"
	"sam-audio-server/src/lib/cerr"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var _ entity.FileStore = GoogleFileStore{}

const GoogleStorageHost = "https://storage.googleapis.com"

type GoogleFileStore struct {
	storageClient *storage.Client
}

func NewGoogleFileStore(jsonKey string) (GoogleFileStore, error) {
	googleStorageClient, err := storage.NewClient(context.Background(), option.WithCredentialsJSON([]byte(jsonKey)))
	if err != nil {
		return GoogleFileStore{}, cerr.Field("key_size", len(jsonKey)).Wrap(err).Error("Failed to create Google Cloud Storage client")
	}

	return GoogleFileStore{
		storageClient: googleStorageClient,
	}, nil
}

func (g GoogleFileStore) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	bucket, filePath, err := ParseGoogleStorageURL(fileURL)
	if err != nil {
		return nil, cerr.Field("url", fileURL).Wrap(err).Error("Couldn't extract file path from URL")
	}

	errctx := cerr.Fields(cerr.F{
		"bucket": bucket,
		"path":   filePath,
	})

	reader, err := g.objectHandle(bucket, filePath).NewReader(ctx)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to create reader for Google object handle")
	}

	defer reader.Close()

	contents, err := io.ReadAll(reader)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to download object from Google Cloud Storage")
	}

	return contents, nil
}

func (g GoogleFileStore) WriteFile(ctx context.Context, fileURL string, fileContent []byte) (err error) {
	bucket, filePath, err := ParseGoogleStorageURL(fileURL)
	if err != nil {
		return cerr.Field("url", fileURL).Wrap(err).Error("Couldn't extract file path from URL")
	}

	errctx := cerr.Fields(cerr.F{
		"bucket": bucket,
		"path":   filePath,
		"size":   len(fileContent),
	})

	writer := g.objectHandle(bucket, filePath).NewWriter(ctx)
	writer.ContentType = "audio/wav"
	defer func() {
		closeErr := writer.Close()
		if err == nil && closeErr != nil {
			err = errctx.Wrap(closeErr).Error("Failed to finish upload to Google Cloud Storage")
		}
	}()

	if _, err = writer.Write(fileContent); err != nil {
		return errctx.Wrap(err).Error("Failed to upload object to Google Cloud Storage")
	}

	return nil
}

func (g GoogleFileStore) objectHandle(bucket string, filePath string) *storage.ObjectHandle {
	return g.storageClient.Bucket(bucket).Object(filePath)
}

// ParseGoogleStorageURL splits https://storage.googleapis.com/<bucket>/<path>.
func ParseGoogleStorageURL(fileURL string) (string, string, error) {
	if !strings.HasPrefix(fileURL, GoogleStorageHost+"/") {
		return "", "", cerr.Field("url", fileURL).Error("File path given not in the Google cloud storage format")
	}

	bucketAndPath := strings.TrimPrefix(fileURL, GoogleStorageHost+"/")

	chunks := strings.SplitN(bucketAndPath, "/", 2)
	if len(chunks) != 2 || chunks[0] == "" || chunks[1] == "" {
		return "", "", cerr.Field("url", fileURL).Error("File path given not in the Google cloud storage format")
	}

	return chunks[0], chunks[1], nil
}
