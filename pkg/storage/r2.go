package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultUploadExpiry is how long a presigned upload URL stays valid.
const DefaultUploadExpiry = time.Hour

// UploadTicket is what the mobile client needs to PUT a recorded segment
// straight to object storage, plus the public URL the clip will resolve to
// once the upload lands.
type UploadTicket struct {
	URL       string            `json:"url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
	ObjectKey string            `json:"object_key"`
	PublicURL string            `json:"public_url"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// R2Client issues presigned upload URLs against an R2/S3-compatible bucket.
type R2Client struct {
	presigner *s3.PresignClient
	bucket    string
	publicURL string
}

// NewR2Client builds a presigning client. R2 wants region "auto" and a
// custom endpoint; any S3-compatible store works the same way.
func NewR2Client(ctx context.Context, endpoint, accessKey, secretKey, bucket, publicBaseURL string) (*R2Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage credentials: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Client{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// PresignUpload creates a time-limited PUT URL for one object key.
func (c *R2Client) PresignUpload(ctx context.Context, objectKey, contentType string, expiry time.Duration) (*UploadTicket, error) {
	if expiry <= 0 {
		expiry = DefaultUploadExpiry
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectKey),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := c.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(expiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for %s: %w", objectKey, err)
	}

	headers := make(map[string]string)
	for k, v := range req.SignedHeader {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &UploadTicket{
		URL:       req.URL,
		Method:    req.Method,
		Headers:   headers,
		ObjectKey: objectKey,
		PublicURL: c.PublicURL(objectKey),
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

// PublicURL maps an object key to its serving URL.
func (c *R2Client) PublicURL(objectKey string) string {
	return c.publicURL + "/" + objectKey
}

// ObjectKey builds the canonical key layout: userID/storyID/clipID/fileName.
func ObjectKey(userID, storyID, clipID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s/%s", userID, storyID, clipID, fileName)
}
