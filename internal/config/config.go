package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Generator GeneratorConfig
	MinIO     MinIOConfig
	LogLevel  string
}

// GeneratorConfig controls the synthetic document tree the docgen tool
// produces. Defaults model 6000 account openings and 300 customer
// documents per year.
type GeneratorConfig struct {
	Bucket               string
	StagingDir           string
	Months               int
	TransactionsPerMonth int
	CustomerDocsPerMonth int
}

// MinIOConfig holds connection settings for the S3-compatible backend.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// Configured reports whether enough settings are present to build a client.
func (c MinIOConfig) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("GEN_BUCKET", "transaction-documents-demo")
		viper.SetDefault("GEN_STAGING_DIR", "./data/staging")
		viper.SetDefault("GEN_MONTHS", 3)
		viper.SetDefault("GEN_TRANSACTIONS_PER_MONTH", 500)
		viper.SetDefault("GEN_CUSTOMER_DOCS_PER_MONTH", 25)
		viper.SetDefault("MINIO_ENDPOINT", "")
		viper.SetDefault("MINIO_ACCESS_KEY", "")
		viper.SetDefault("MINIO_SECRET_KEY", "")
		viper.SetDefault("MINIO_REGION", "us-east-1")
		viper.SetDefault("MINIO_USE_SSL", true)
		viper.SetDefault("LOG_LEVEL", "info")

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Generator: GeneratorConfig{
				Bucket:               viper.GetString("GEN_BUCKET"),
				StagingDir:           viper.GetString("GEN_STAGING_DIR"),
				Months:               viper.GetInt("GEN_MONTHS"),
				TransactionsPerMonth: viper.GetInt("GEN_TRANSACTIONS_PER_MONTH"),
				CustomerDocsPerMonth: viper.GetInt("GEN_CUSTOMER_DOCS_PER_MONTH"),
			},
			MinIO: MinIOConfig{
				Endpoint:  viper.GetString("MINIO_ENDPOINT"),
				AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
				SecretKey: viper.GetString("MINIO_SECRET_KEY"),
				Region:    viper.GetString("MINIO_REGION"),
				UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			},
			LogLevel: viper.GetString("LOG_LEVEL"),
		}
	})

	return instance
}
