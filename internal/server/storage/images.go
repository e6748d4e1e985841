// Package storage issues presigned S3 upload URLs for menu item images.
// Any S3-compatible endpoint (e.g. MinIO) works.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/foodie/internal/common"
	sc "github.com/dmitrijs2005/foodie/internal/server/config"
	"github.com/dmitrijs2005/foodie/internal/server/models"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	now = time.Now
)

type ImageStore struct {
	bucket   string
	validity time.Duration
	presign  *s3.PresignClient
}

// NewImageStore builds the presign client from static credentials and a
// custom base endpoint.
func NewImageStore(ctx context.Context, cfg *sc.Config) (*ImageStore, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &ImageStore{
		bucket:   cfg.S3Bucket,
		validity: cfg.ImageUploadURLValidityDuration,
		presign:  newS3PresignClient(client),
	}, nil
}

// ImageKey returns a fresh object key of the form menu/YYYY/MM/DD/<uuid>.
func ImageKey(t time.Time) string {
	return fmt.Sprintf("menu/%04d/%02d/%02d/%v", t.Year(), t.Month(), t.Day(), uuid.New())
}

// PresignUpload returns a URL the client can PUT one image to, valid for the
// configured duration.
func (s *ImageStore) PresignUpload(ctx context.Context) (*models.MenuImageUpload, error) {
	issued := now().UTC()
	key := ImageKey(issued)

	req, err := presignPutObject(s.presign, ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.validity))
	if err != nil {
		return nil, fmt.Errorf("%w: presign put: %v", common.ErrorUpstream, err)
	}

	return &models.MenuImageUpload{
		Key:       key,
		URL:       req.URL,
		ExpiresAt: issued.Add(s.validity),
	}, nil
}
