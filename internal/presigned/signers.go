package presigned

import (
	"context"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
)

// MinIOSigner signs GET requests with the MinIO client.
type MinIOSigner struct {
	client *minio.Client
}

func NewMinIOSigner(client *minio.Client) *MinIOSigner {
	return &MinIOSigner{client: client}
}

func (m *MinIOSigner) PresignGet(ctx context.Context, bucket, object string, expiry time.Duration) (string, error) {
	reqParams := make(url.Values)

	u, err := m.client.PresignedGetObject(ctx, bucket, object, expiry, reqParams)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// S3Signer signs GET requests with the AWS SDK presign client.
type S3Signer struct {
	client *s3.PresignClient
}

func NewS3Signer(client *s3.Client) *S3Signer {
	return &S3Signer{client: s3.NewPresignClient(client)}
}

func (p *S3Signer) PresignGet(ctx context.Context, bucket, object string, expiry time.Duration) (string, error) {
	req, err := p.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(object),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
