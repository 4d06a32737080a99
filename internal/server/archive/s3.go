package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/gadgetkeeper/internal/server/config"
	"github.com/google/uuid"
)

// objectPutter is the part of *s3.Client the archive needs.
type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Archiver uploads each report as a JSON object.
type S3Archiver struct {
	client objectPutter
	bucket string
	newID  func() string
}

// NewS3Archiver builds a client for the S3-compatible backend described by cfg.
func NewS3Archiver(ctx context.Context, cfg *sc.Config) (*S3Archiver, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Archiver{client: client, bucket: cfg.S3Bucket, newID: uuid.NewString}, nil
}

// ObjectKey returns destructions/<yyyy>/<mm>/<dd>/<gadgetID>-<id>.json.
func ObjectKey(gadgetID string, at time.Time, id string) string {
	at = at.UTC()
	return fmt.Sprintf("destructions/%04d/%02d/%02d/%s-%s.json", at.Year(), at.Month(), at.Day(), gadgetID, id)
}

func (a *S3Archiver) Archive(ctx context.Context, r *Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return err
	}

	key := ObjectKey(r.GadgetID, r.DestroyedAt, a.newID())
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
