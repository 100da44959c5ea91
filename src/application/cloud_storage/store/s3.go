package store

import (
	"bytes"
	"context"
	"strings"

	"sam-audio-server/src/application/cloud_storage/entity"
	"sam-audio-server/src/lib/cerr"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

var _ entity.FileStore = S3FileStore{}

const S3Scheme = "s3://"

type S3FileStore struct {
	downloader *s3manager.Downloader
	uploader   *s3manager.Uploader
}

// NewS3FileStore reads credentials from the environment. A non-empty endpoint
// points the client at an S3 compatible service using path style addressing.
func NewS3FileStore(region string, endpoint string) (S3FileStore, error) {
	config := aws.NewConfig().WithCredentials(credentials.NewEnvCredentials())
	if region != "" {
		config = config.WithRegion(region)
	}

	if endpoint != "" {
		config = config.WithEndpoint(endpoint).WithS3ForcePathStyle(true)
	}

	s3Session, err := session.NewSession(config)
	if err != nil {
		return S3FileStore{}, cerr.Fields(cerr.F{
			"region":   region,
			"endpoint": endpoint,
		}).Wrap(err).Error("Failed to create S3 session")
	}

	client := s3.New(s3Session)
	return S3FileStore{
		downloader: s3manager.NewDownloaderWithClient(client),
		uploader:   s3manager.NewUploaderWithClient(client),
	}, nil
}

func (s S3FileStore) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	bucket, key, err := ParseS3URL(fileURL)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Couldn't extract object key from URL")
	}

	buffer := aws.NewWriteAtBuffer([]byte{})
	_, err = s.downloader.DownloadWithContext(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, cerr.Fields(cerr.F{
			"bucket": bucket,
			"key":    key,
		}).Wrap(err).Error("Failed to download object from S3")
	}

	return buffer.Bytes(), nil
}

func (s S3FileStore) WriteFile(ctx context.Context, fileURL string, fileContent []byte) error {
	bucket, key, err := ParseS3URL(fileURL)
	if err != nil {
		return cerr.Wrap(err).Error("Couldn't extract object key from URL")
	}

	_, err = s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileContent),
		ContentType: aws.String("audio/wav"),
	})
	if err != nil {
		return cerr.Fields(cerr.F{
			"bucket": bucket,
			"key":    key,
		}).Wrap(err).Error("Failed to upload object to S3")
	}

	return nil
}

// ParseS3URL splits s3://<bucket>/<key>.
func ParseS3URL(fileURL string) (string, string, error) {
	if !strings.HasPrefix(fileURL, S3Scheme) {
		return "", "", cerr.Field("url", fileURL).Error("File path given not in the S3 format")
	}

	chunks := strings.SplitN(strings.TrimPrefix(fileURL, S3Scheme), "/", 2)
	if len(chunks) != 2 || chunks[0] == "" || chunks[1] == "" {
		return "", "", cerr.Field("url", fileURL).Error("File path given not in the S3 format")
	}

	return chunks[0], chunks[1], nil
}
