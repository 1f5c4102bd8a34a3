package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bogdanpracticum/foodgram-project-react/internal/utils"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2/log"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrEmptyFile          = errors.New("file is empty")
)

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, data []byte, folder string, allowType ...string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetObjectKeyFromLink(link string) string
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client   *s3.Client
		bucket   string
		region   string
		endpoint string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	endpoint := utils.GetConfig("AWS_S3_ENDPOINT")

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("unable to load AWS config for S3: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &awsS3{
		client:   client,
		bucket:   utils.GetConfig("AWS_S3_BUCKET"),
		region:   region,
		endpoint: strings.TrimSuffix(endpoint, "/"),
	}
}

func (a *awsS3) UploadFile(ctx context.Context, fileName string, data []byte, folder string, allowType ...string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	mtype := mimetype.Detect(data)
	if len(allowType) > 0 && !mimetype.EqualsAny(mtype.String(), allowType...) {
		return "", ErrFileTypeNotAllowed
	}

	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, mtype.Extension())
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mtype.String()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return objectKey, nil
}

func (a *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) publicBase() string {
	if a.endpoint != "" {
		return fmt.Sprintf("%s/%s/", a.endpoint, a.bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return a.publicBase() + objectKey
}

// GetObjectKeyFromLink returns "" for links that do not point into the bucket.
func (a *awsS3) GetObjectKeyFromLink(link string) string {
	base := a.publicBase()
	if !strings.HasPrefix(link, base) {
		return ""
	}
	return strings.TrimPrefix(link, base)
}
