package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"coinvalue/internal/coin"
	"coinvalue/internal/logger"
)

// S3API is the subset of the S3 client used by S3Store.
//
//go:generate mockgen -package=snapshot_test -destination=mock_s3_api_test.go -source=s3.go S3API
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store reads price tables from an S3 bucket.
type S3Store struct {
	// api is the S3 client.
	api S3API
	// bucket holds the price tables.
	bucket string
	// prefix is prepended to every listed key.
	prefix string
	// concurrency caps parallel object reads.
	concurrency int
	log         *logger.Log
}

// S3StoreOption is a configuration option for S3Store.
type S3StoreOption func(*S3Store)

// WithPrefix limits listing to keys under prefix.
func WithPrefix(prefix string) S3StoreOption {
	return func(s *S3Store) {
		s.prefix = prefix
	}
}

// WithConcurrency sets how many objects are read at once.
func WithConcurrency(n int) S3StoreOption {
	return func(s *S3Store) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Log) S3StoreOption {
	return func(s *S3Store) {
		s.log = log
	}
}

// NewS3Store creates a store over bucket.
func NewS3Store(api S3API, bucket string, options ...S3StoreOption) (*S3Store, error) {
	if api == nil {
		return nil, fmt.Errorf("s3 client is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	s := &S3Store{
		api:         api,
		bucket:      bucket,
		concurrency: 4,
		log:         logger.GetLogger(),
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// Dates implements Source.
func (s *S3Store) Dates(ctx context.Context) ([]time.Time, error) {
	keys, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}
	return Dates(keys), nil
}

// Load implements Source. A table that cannot be read is logged and left out,
// so the caller sees that series as missing.
func (s *S3Store) Load(ctx context.Context, asOf time.Time) ([]coin.SeriesSnapshot, error) {
	keys, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}
	picked := Select(keys, asOf)

	snaps := make([]*coin.SeriesSnapshot, len(picked))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, k := range picked {
		g.Go(func() error {
			snap, err := s.read(gctx, k)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.log.WithComponent("s3_store").WithError(err).WithFields(logger.Fields{
					"bucket": s.bucket,
					"key":    k.Raw,
				}).Warn("skipping unreadable price table")
				return nil
			}
			snaps[i] = &snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]coin.SeriesSnapshot, 0, len(snaps))
	for _, snap := range snaps {
		if snap != nil {
			out = append(out, *snap)
		}
	}
	s.log.WithComponent("s3_store").WithFields(logger.Fields{
		"as_of":  asOf.Format(coin.DateLayout),
		"series": len(out),
	}).Debug("loaded price tables")
	return out, nil
}

func (s *S3Store) keys(ctx context.Context) ([]Key, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix)
	}
	var keys []Key
	pages := s3.NewListObjectsV2Paginator(s.api, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list s3://%s/%s: %w", s.bucket, s.prefix, err)
		}
		for _, obj := range page.Contents {
			if k, ok := ParseKey(aws.ToString(obj.Key)); ok {
				keys = append(keys, k)
			}
		}
	}
	return keys, nil
}

func (s *S3Store) read(ctx context.Context, k Key) (coin.SeriesSnapshot, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(k.Raw),
	})
	if err != nil {
		return coin.SeriesSnapshot{}, fmt.Errorf("get s3://%s/%s: %w", s.bucket, k.Raw, err)
	}
	defer out.Body.Close()
	return decodeCSV(out.Body, k.Series, k.Date, s.log)
}
