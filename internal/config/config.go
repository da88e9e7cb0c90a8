// internal/config/config.go
package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Environment        string
	DatabaseURL        string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	S3                 S3Settings
}

// S3Settings is empty unless S3_BUCKET_NAME is set.
type S3Settings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

func (s S3Settings) Enabled() bool {
	return s.Bucket != ""
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "showbook")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	env := getEnv("ENVIRONMENT", "development")
	defaultFormat := "console"
	if env == "production" {
		defaultFormat = "json"
	}

	bucket := os.Getenv("S3_BUCKET_NAME")
	region := getEnv("AWS_REGION", "us-east-1")
	publicBase := os.Getenv("S3_PUBLIC_BASE_URL")
	if publicBase == "" && bucket != "" {
		publicBase = "https://" + bucket + ".s3." + region + ".amazonaws.com"
	}

	return &Config{
		Port:               getEnv("PORT", "5000"),
		Environment:        env,
		DatabaseURL:        databaseURL,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", defaultFormat),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		S3: S3Settings{
			Region:          region,
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			Bucket:          bucket,
			PublicBaseURL:   publicBase,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
