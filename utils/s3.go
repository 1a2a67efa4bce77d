package utils

import (
	"fmt"

	"uniportal/config"
	"uniportal/services/storage"
)

// S3Storage initializes and returns the S3-backed StorageService from the
// loaded configuration.
func S3Storage() (storage.StorageService, error) {
	cfg := config.AppConfig
	if cfg.AWSRegion == "" || cfg.AWSAccessKeyID == "" || cfg.AWSSecretAccessKey == "" || cfg.AWSBucketName == "" {
		return nil, fmt.Errorf("S3 credentials not set in configuration")
	}

	storageSvc, err := storage.NewS3StorageService(cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.AWSBucketName)
	if err != nil {
		return nil, fmt.Errorf("utils.S3Storage: failed to initialize S3 storage: %w", err)
	}
	return storageSvc, nil
}
