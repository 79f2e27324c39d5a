package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ghuser/assettrack/services/inventory/domain/models"
)

// maxObjectBytes caps seed objects read from S3.
const maxObjectBytes = 8 << 20

// S3Config configures the client used for s3:// seed locations. Credentials
// come from the default AWS chain.
type S3Config struct {
	Region    string
	Endpoint  string // optional, for S3-compatible stores such as MinIO
	PathStyle bool
}

// ObjectGetter is the part of *s3.Client the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader reads the seed from its location on every call, so a reset picks up
// an edited seed file.
type Loader struct {
	location string
	s3       ObjectGetter
}

// NewLoader returns a Loader for location: empty for the built-in dataset, an
// s3://bucket/key URL, or a local path. An S3 client is only built for s3 URLs.
func NewLoader(ctx context.Context, location string, cfg S3Config) (*Loader, error) {
	if !IsS3URL(location) {
		return &Loader{location: location}, nil
	}
	if _, _, err := ParseS3URL(location); err != nil {
		return nil, err
	}
	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Loader{location: location, s3: client}, nil
}

// Load returns the seed inventory.
func (l *Loader) Load(ctx context.Context) (models.Inventory, error) {
	if l.s3 == nil {
		return Load(l.location)
	}
	return loadS3(ctx, l.s3, l.location)
}

// IsS3URL reports whether location uses the s3 scheme.
func IsS3URL(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// ParseS3URL splits s3://bucket/key into its parts.
func ParseS3URL(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("parse seed url: %w", err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("seed url %q: scheme must be s3", location)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("seed url %q: want s3://bucket/key", location)
	}
	return u.Host, key, nil
}

func loadS3(ctx context.Context, client ObjectGetter, location string) (models.Inventory, error) {
	bucket, key, err := ParseS3URL(location)
	if err != nil {
		return models.Inventory{}, err
	}
	out, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		return models.Inventory{}, fmt.Errorf("failed to fetch seed %s: %w", location, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxObjectBytes+1))
	if err != nil {
		return models.Inventory{}, fmt.Errorf("failed to read seed %s: %w", location, err)
	}
	if len(data) > maxObjectBytes {
		return models.Inventory{}, errors.New("seed object exceeds 8 MiB")
	}
	return ParseFormat(data, FormatOf(key))
}

func newS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
