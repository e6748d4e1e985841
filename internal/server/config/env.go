package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. PORT, ACCESS_TOKEN_SECRET and SECRET_KEY keep
// the names used by existing deployments.
const (
	EnvPort              = "PORT"
	EnvHTTPAddress       = "HTTP_ADDRESS"
	EnvGRPCAddress       = "GRPC_ADDRESS"
	EnvDatabaseDSN       = "DATABASE_DSN"
	EnvAccessTokenSecret = "ACCESS_TOKEN_SECRET"
	EnvAccessTokenTTL    = "ACCESS_TOKEN_TTL"
	EnvStripeSecretKey   = "SECRET_KEY"
	EnvPaymentCurrency   = "PAYMENT_CURRENCY"
	EnvS3RootUser        = "S3_ROOT_USER"
	EnvS3RootPassword    = "S3_ROOT_PASSWORD"
	EnvS3Bucket          = "S3_BUCKET"
	EnvS3Region          = "S3_REGION"
	EnvS3BaseEndpoint    = "S3_BASE_ENDPOINT"
	EnvImageUploadURLTTL = "IMAGE_UPLOAD_URL_TTL"
	EnvLogLevel          = "LOG_LEVEL"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvCORSOrigins       = "CORS_ALLOWED_ORIGINS"
)

const dotEnvFile = ".env"

// parseEnv overlays values from the process environment. A .env file in the
// working directory is loaded first if present; variables already set in the
// environment win over the file.
func parseEnv(config *Config) {
	_ = godotenv.Load(dotEnvFile)

	if port := os.Getenv(EnvPort); port != "" {
		config.EndpointAddrHTTP = ":" + strings.TrimPrefix(port, ":")
	}
	envString(&config.EndpointAddrHTTP, EnvHTTPAddress)
	envString(&config.EndpointAddrGRPC, EnvGRPCAddress)
	envString(&config.DatabaseDSN, EnvDatabaseDSN)
	envString(&config.SecretKey, EnvAccessTokenSecret)
	envString(&config.StripeSecretKey, EnvStripeSecretKey)
	envString(&config.PaymentCurrency, EnvPaymentCurrency)
	envString(&config.S3RootUser, EnvS3RootUser)
	envString(&config.S3RootPassword, EnvS3RootPassword)
	envString(&config.S3Bucket, EnvS3Bucket)
	envString(&config.S3Region, EnvS3Region)
	envString(&config.S3BaseEndpoint, EnvS3BaseEndpoint)
	envString(&config.LogLevel, EnvLogLevel)
	envDuration(&config.AccessTokenValidityDuration, EnvAccessTokenTTL)
	envDuration(&config.ImageUploadURLValidityDuration, EnvImageUploadURLTTL)
	envDuration(&config.ShutdownTimeout, EnvShutdownTimeout)
	envList(&config.CORSAllowedOrigins, EnvCORSOrigins)
}

func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}

// envList reads a comma-separated list; blank items are dropped.
func envList(dst *[]string, name string) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}

// envDuration ignores values that do not parse as a positive duration.
func envDuration(dst *time.Duration, name string) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return
	}
	*dst = d
}
