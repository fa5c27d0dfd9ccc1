// Package source builds the cached price table source described by config.
package source

import (
	"context"
	"fmt"
	"time"

	"coinvalue/internal/config"
	"coinvalue/internal/httpx"
	"coinvalue/internal/logger"
	"coinvalue/internal/ratelimit"
	"coinvalue/internal/snapshot"
)

// Open returns the configured store wrapped in a snapshot.Cache.
func Open(ctx context.Context, cfg config.Config, log *logger.Log) (*snapshot.Cache, error) {
	var src snapshot.Source
	switch cfg.Storage.Kind {
	case config.StorageDir:
		src = snapshot.NewDirStore(cfg.Storage.Dir, snapshot.WithDirLogger(log))
		log.WithComponent("source").WithFields(logger.Fields{"dir": cfg.Storage.Dir}).Info("reading price tables from directory")
	case config.StorageS3:
		s3cfg := cfg.Storage.S3
		hc := httpx.New(time.Duration(s3cfg.TimeoutSec) * time.Second)
		client, err := snapshot.NewS3Client(ctx, snapshot.S3ClientConfig{
			Region:          s3cfg.Region,
			Endpoint:        s3cfg.Endpoint,
			PathStyle:       s3cfg.PathStyle,
			AccessKeyID:     s3cfg.AccessKeyID,
			SecretAccessKey: s3cfg.SecretAccessKey,
			APIOptions:      httpx.APIOptions(s3cfg.Headers),
		}, hc)
		if err != nil {
			return nil, err
		}
		var api snapshot.S3API = client
		limiter := ratelimit.New(s3cfg.MaxRequestsPerMinute, s3cfg.Burst, time.Duration(s3cfg.MinRequestIntervalSec)*time.Second)
		if limiter != nil {
			api = &ratelimit.S3API{API: client, L: limiter}
		}
		store, err := snapshot.NewS3Store(api, s3cfg.Bucket,
			snapshot.WithPrefix(s3cfg.Prefix),
			snapshot.WithConcurrency(s3cfg.MaxConcurrency),
			snapshot.WithLogger(log),
		)
		if err != nil {
			return nil, err
		}
		src = store
		log.WithComponent("source").WithFields(logger.Fields{
			"bucket": s3cfg.Bucket,
			"prefix": s3cfg.Prefix,
			"region": s3cfg.Region,
		}).Info("reading price tables from s3")
	default:
		return nil, fmt.Errorf("unknown storage kind %q", cfg.Storage.Kind)
	}
	return snapshot.NewCache(src, time.Duration(cfg.Cache.TTLSeconds)*time.Second, cfg.Cache.MaxItems), nil
}
