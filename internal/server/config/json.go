package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/foodie/internal/flagx"
	"github.com/dmitrijs2005/foodie/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// either strings such as "1h" or integer nanoseconds. Absent fields leave
// the current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP               string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC               string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                    string         `json:"database_dsn"`
	SecretKey                      string         `json:"secret_key"`
	AccessTokenValidityDuration    timex.Duration `json:"access_token_validity_duration"`
	StripeSecretKey                string         `json:"stripe_secret_key"`
	PaymentCurrency                string         `json:"payment_currency"`
	S3RootUser                     string         `json:"s3_root_user"`
	S3RootPassword                 string         `json:"s3_root_password"`
	S3Bucket                       string         `json:"s3_bucket"`
	S3Region                       string         `json:"s3_region"`
	S3BaseEndpoint                 string         `json:"s3_base_endpoint"`
	ImageUploadURLValidityDuration timex.Duration `json:"image_upload_url_validity_duration"`
	LogLevel                       string         `json:"log_level"`
	ShutdownTimeout                timex.Duration `json:"shutdown_timeout"`
	CORSAllowedOrigins             []string       `json:"cors_allowed_origins"`
}

// parseJson overlays values from the file named by -c/-config in args.
// Nothing happens without the flag. An unreadable file or invalid JSON panics,
// since the server must not start on a half-read configuration.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.StripeSecretKey, c.StripeSecretKey)
	setString(&config.PaymentCurrency, c.PaymentCurrency)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.ImageUploadURLValidityDuration.Duration > 0 {
		config.ImageUploadURLValidityDuration = c.ImageUploadURLValidityDuration.Duration
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
