// Package config loads the dashboard configuration from defaults, an
// optional YAML file and the environment, in that order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/siherrmann/populationDashboard/helper"

	"gopkg.in/yaml.v3"
)

const (
	STORAGE_MODE_EMBED  = "embed"
	STORAGE_MODE_LOCAL  = "local"
	STORAGE_MODE_S3     = "s3"
	STORAGE_MODE_MEMORY = "memory"
)

type Config struct {
	Host     string  `yaml:"host"`
	Port     string  `yaml:"port"`
	Debug    bool    `yaml:"debug"`
	LogLevel string  `yaml:"log_level"`
	Storage  Storage `yaml:"storage"`
}

// Storage selects where the dataset file is read from.
type Storage struct {
	Mode        string `yaml:"mode"`
	Path        string `yaml:"path"`
	DatasetFile string `yaml:"dataset_file"`
	S3          S3     `yaml:"s3"`
}

type S3 struct {
	Endpoint        string `yaml:"endpoint"`          // S3 endpoint URL (for S3-compatible services)
	Region          string `yaml:"region"`            // AWS region
	BucketName      string `yaml:"bucket_name"`       // S3 bucket name
	AccessKeyID     string `yaml:"access_key_id"`     // AWS access key ID
	SecretAccessKey string `yaml:"secret_access_key"` // AWS secret access key
	UseSSL          bool   `yaml:"use_ssl"`           // Whether to use SSL/TLS
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Host:     "127.0.0.1",
		Port:     "8050",
		Debug:    false,
		LogLevel: "info",
		Storage: Storage{
			Mode:        STORAGE_MODE_EMBED,
			Path:        "./data",
			DatasetFile: "gapminder_2007.csv",
			S3: S3{
				Region: "us-east-1",
				UseSSL: true,
			},
		},
	}
}

// Load reads the YAML file at path (skipped when empty) over the defaults
// and applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- The config path is given by the operator.
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	cfg.Storage.Mode = strings.ToLower(cfg.Storage.Mode)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Host = helper.GetEnvOrDefault("DASHBOARD_HOST", cfg.Host)
	cfg.Port = helper.GetEnvOrDefault("DASHBOARD_PORT", cfg.Port)
	cfg.LogLevel = helper.GetEnvOrDefault("DASHBOARD_LOG_LEVEL", cfg.LogLevel)
	cfg.Storage.Mode = helper.GetEnvOrDefault("DASHBOARD_STORAGE_MODE", cfg.Storage.Mode)
	cfg.Storage.Path = helper.GetEnvOrDefault("DASHBOARD_STORAGE_PATH", cfg.Storage.Path)
	cfg.Storage.DatasetFile = helper.GetEnvOrDefault("DASHBOARD_DATASET_FILE", cfg.Storage.DatasetFile)
	cfg.Storage.S3.Endpoint = helper.GetEnvOrDefault("S3_ENDPOINT", cfg.Storage.S3.Endpoint)
	cfg.Storage.S3.Region = helper.GetEnvOrDefault("S3_REGION", cfg.Storage.S3.Region)
	cfg.Storage.S3.BucketName = helper.GetEnvOrDefault("S3_BUCKET_NAME", cfg.Storage.S3.BucketName)
	cfg.Storage.S3.AccessKeyID = helper.GetEnvOrDefault("S3_ACCESS_KEY_ID", cfg.Storage.S3.AccessKeyID)
	cfg.Storage.S3.SecretAccessKey = helper.GetEnvOrDefault("S3_SECRET_ACCESS_KEY", cfg.Storage.S3.SecretAccessKey)

	var err error
	if cfg.Debug, err = helper.GetEnvBoolOrDefault("DASHBOARD_DEBUG", cfg.Debug); err != nil {
		return err
	}
	if cfg.Storage.S3.UseSSL, err = helper.GetEnvBoolOrDefault("S3_USE_SSL", cfg.Storage.S3.UseSSL); err != nil {
		return err
	}
	return nil
}

// Address returns host:port for the HTTP listener.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}
