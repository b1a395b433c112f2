package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"alcyxob/training-client/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// maxPhotoBytes caps what is read from a single photo object.
const maxPhotoBytes = 10 << 20

// s3ImageSource reads coach photos from an S3-compatible bucket; the descriptor is the object key.
type s3ImageSource struct {
	client     *s3.Client
	bucketName string
	prefix     string
}

// NewS3ImageSource creates an ImageSource backed by S3 (or MinIO, Spaces...).
func NewS3ImageSource(cfg config.S3Config) (ImageSource, error) {
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           cfg.Endpoint,
				SigningRegion: cfg.Region,
			}, nil
		}
		// Fallback to default AWS endpoint resolution
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.TODO(),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsCfg.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		log.Printf("ERROR: Failed to load AWS SDK config for S3: %v", err)
		return nil, err
	}

	// path-style addressing for S3-compatible services
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	log.Printf("S3 image source initialized for endpoint: %s, bucket: %s", cfg.Endpoint, cfg.BucketName)

	return &s3ImageSource{
		client:     s3Client,
		bucketName: cfg.BucketName,
		prefix:     strings.Trim(cfg.PhotoPrefix, "/"),
	}, nil
}

func (s *s3ImageSource) objectKey(descriptor string) string {
	key := strings.TrimLeft(descriptor, "/")
	if s.prefix == "" || strings.HasPrefix(key, s.prefix+"/") {
		return key
	}
	return s.prefix + "/" + key
}

// FetchImage downloads the object the descriptor names. The coach id is not needed for S3.
func (s *s3ImageSource) FetchImage(ctx context.Context, _ int64, descriptor string) ([]byte, string, error) {
	key := s.objectKey(descriptor)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, "", fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		log.Printf("ERROR: Failed to get object '%s' from bucket '%s': %v", key, s.bucketName, err)
		return nil, "", err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxPhotoBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read object %s: %w", key, err)
	}
	return data, aws.ToString(out.ContentType), nil
}
