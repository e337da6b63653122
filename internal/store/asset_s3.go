package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3API interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3AssetStorage keeps wallpapers in an S3 bucket, the asset id being the
// object key.
type s3AssetStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

func newS3AssetStorage(ctx context.Context, cfg config.Assets, log *logger.Logger) (*s3AssetStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.APIKey, cfg.APISecret, "")),
	)
	if err != nil {
		log.Err(err).Str("func", "newS3AssetStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// S3-compatible storages (MinIO) are addressed by path
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3AssetStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

// Destroy deletes the object. S3 reports success for missing keys.
func (s *s3AssetStorage) Destroy(ctx context.Context, assetID string) error {
	log := logger.FromContext(ctx)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(assetID),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3AssetStorage.Destroy").Str("bucket", s.bucket).Str("asset_id", assetID).Msg("delete object failed")
		return fmt.Errorf("%w: %w", ErrAssetDestroyFailed, err)
	}

	log.Debug().Str("func", "*s3AssetStorage.Destroy").Str("asset_id", assetID).Msg("asset destroyed")
	return nil
}
