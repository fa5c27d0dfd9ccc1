// Package config loads service and batch settings from a JSON or YAML file
// and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Storage kinds.
const (
	StorageS3  = "s3"
	StorageDir = "dir"
)

type Server struct {
	Port              string `json:"port" yaml:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec" yaml:"request_timeout_sec"`
}

type S3 struct {
	Bucket                string `json:"bucket" yaml:"bucket"`
	Prefix                string `json:"prefix" yaml:"prefix"`
	Region                string `json:"region" yaml:"region"`
	Endpoint              string `json:"endpoint" yaml:"endpoint"`
	PathStyle             bool   `json:"path_style" yaml:"path_style"`
	AccessKeyID           string `json:"access_key_id" yaml:"access_key_id"`
	SecretAccessKey       string `json:"secret_access_key" yaml:"secret_access_key"`
	MaxConcurrency        int    `json:"max_concurrency" yaml:"max_concurrency"`
	MaxRequestsPerMinute  int    `json:"max_requests_per_minute" yaml:"max_requests_per_minute"`
	MinRequestIntervalSec int    `json:"min_request_interval_sec" yaml:"min_request_interval_sec"`
	Burst                 int    `json:"burst" yaml:"burst"`
	TimeoutSec            int    `json:"timeout_sec" yaml:"timeout_sec"`

	// Headers are sent with every storage request, e.g. for a gateway.
	Headers map[string]string `json:"headers" yaml:"headers"`
}

type Storage struct {
	Kind string `json:"kind" yaml:"kind"`
	S3   S3     `json:"s3" yaml:"s3"`
	Dir  string `json:"dir" yaml:"dir"`
}

type Cache struct {
	// TTLSeconds of 0 keeps tables until they are reloaded explicitly.
	TTLSeconds int `json:"ttl_sec" yaml:"ttl_sec"`
	MaxItems   int `json:"max_items" yaml:"max_items"`
}

type Logging struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	Output string `json:"output" yaml:"output"`
	MaxAge int    `json:"max_age_days" yaml:"max_age_days"`
}

type Batch struct {
	Input   string `json:"input" yaml:"input"`
	Output  string `json:"output" yaml:"output"`
	Workers int    `json:"workers" yaml:"workers"`
}

type Config struct {
	Server  Server  `json:"server" yaml:"server"`
	Storage Storage `json:"storage" yaml:"storage"`
	Cache   Cache   `json:"cache" yaml:"cache"`
	Logging Logging `json:"logging" yaml:"logging"`
	Batch   Batch   `json:"batch" yaml:"batch"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080", RequestTimeoutSec: 10},
		Storage: Storage{
			Kind: StorageS3,
			S3: S3{
				Bucket:               "coin-prices",
				Region:               "us-east-1",
				MaxConcurrency:       4,
				MaxRequestsPerMinute: 600,
				Burst:                20,
				TimeoutSec:           30,
			},
			Dir: "prices",
		},
		Cache:   Cache{TTLSeconds: 3600, MaxItems: 64},
		Logging: Logging{Level: "info", Format: "json", Output: "stderr", MaxAge: 7},
		Batch:   Batch{Input: "mycoins.csv", Output: "myprices.csv", Workers: 4},
	}
}

// Load reads config from path, as YAML when it ends in .yml or .yaml and as
// JSON otherwise. If path is empty, config.yaml then config.json are tried.
// A missing file yields defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		for _, candidate := range []string{"config.yaml", "config.json"} {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := decode(path, b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Unmarshal(b, cfg)
	}
	return json.Unmarshal(b, cfg)
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.Storage.Kind {
	case StorageS3:
		if c.Storage.S3.Bucket == "" {
			return errors.New("config: storage.s3.bucket is required")
		}
	case StorageDir:
		if c.Storage.Dir == "" {
			return errors.New("config: storage.dir is required")
		}
	default:
		return fmt.Errorf("config: unknown storage kind %q", c.Storage.Kind)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	setInt(&cfg.Server.RequestTimeoutSec, "REQUEST_TIMEOUT_SEC", 1)

	if v := os.Getenv("PRICE_STORAGE"); v != "" {
		cfg.Storage.Kind = strings.ToLower(v)
	}
	if v := os.Getenv("PRICE_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("PRICE_BUCKET"); v != "" {
		cfg.Storage.S3.Bucket = v
	}
	if v := os.Getenv("PRICE_PREFIX"); v != "" {
		cfg.Storage.S3.Prefix = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.Storage.S3.Region = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		cfg.Storage.S3.Endpoint = v
	}
	setBool(&cfg.Storage.S3.PathStyle, "S3_PATH_STYLE")
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		cfg.Storage.S3.AccessKeyID = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		cfg.Storage.S3.SecretAccessKey = v
	}
	setInt(&cfg.Storage.S3.MaxConcurrency, "S3_MAX_CONCURRENCY", 1)
	setInt(&cfg.Storage.S3.MaxRequestsPerMinute, "S3_MAX_RPM", 0)
	setInt(&cfg.Storage.S3.MinRequestIntervalSec, "S3_MIN_INTERVAL_SEC", 0)
	setInt(&cfg.Storage.S3.Burst, "S3_BURST", 1)
	setInt(&cfg.Storage.S3.TimeoutSec, "S3_TIMEOUT_SEC", 1)

	setInt(&cfg.Cache.TTLSeconds, "CACHE_TTL_SEC", 0)
	setInt(&cfg.Cache.MaxItems, "CACHE_MAX_ITEMS", 1)

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Logging.Output = v
	}
	setInt(&cfg.Logging.MaxAge, "LOG_MAX_AGE_DAYS", 0)

	setInt(&cfg.Batch.Workers, "BATCH_WORKERS", 1)
}

// setInt overwrites dst with env var key when it parses to at least floor.
func setInt(dst *int, key string, floor int) {
	if v := os.Getenv(key); v != "" {
		var x int
		if _, err := fmt.Sscanf(v, "%d", &x); err == nil && x >= floor {
			*dst = x
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			*dst = true
		case "0", "false", "no", "n":
			*dst = false
		}
	}
}
