package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/flagx"
	"github.com/dmitrijs2005/lifelog/internal/timex"
)

// JsonConfig mirrors Config for the JSON file. Durations accept "15m" or
// integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	StorageBackend               string         `json:"storage_backend"`
	UploadDir                    string         `json:"upload_dir"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	CORSAllowedOrigin            string         `json:"cors_allowed_origin"`
	MaxUploadSizeMB              int            `json:"max_upload_size_mb"`
}

// parseJson overlays the file named by -c/-config onto config. Keys absent
// from the file keep their current value. Unreadable or invalid files panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration.Duration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration.Duration)
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.UploadDir, c.UploadDir)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.CORSAllowedOrigin, c.CORSAllowedOrigin)
	if c.MaxUploadSizeMB > 0 {
		config.MaxUploadSizeMB = c.MaxUploadSizeMB
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
