package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// StorageDriverMinIO selects the MinIO object store adapter.
	StorageDriverMinIO = "minio"
	// StorageDriverS3 selects the AWS S3 object store adapter.
	StorageDriverS3 = "s3"

	// DocStoreDriverPostgres persists listings in PostgreSQL.
	DocStoreDriverPostgres = "postgres"
	// DocStoreDriverDynamoDB persists listings in DynamoDB.
	DocStoreDriverDynamoDB = "dynamodb"

	// MaxURLExpiry is the longest lifetime a SigV4 presigned URL may carry.
	MaxURLExpiry = 7 * 24 * time.Hour
)

// ErrInvalidConfig is returned when environment values are inconsistent.
var ErrInvalidConfig = errors.New("invalid config")

// Config aggregates runtime configuration for the catalog population batch.
type Config struct {
	Storage  StorageConfig
	MinIO    MinIOConfig
	S3       S3Config
	DocStore DocStoreConfig
	Postgres PostgresConfig
	DynamoDB DynamoDBConfig
	Catalog  CatalogConfig
	Metrics  MetricsConfig
}

// StorageConfig selects the object store holding the source videos.
type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"minio"`
	Bucket string `env:"STORAGE_BUCKET,required,notEmpty"`
}

// MinIOConfig carries MinIO connection information.
type MinIOConfig struct {
	Endpoint        string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKeyID     string `env:"MINIO_ROOT_USER" envDefault:"clipcatalog"`
	SecretAccessKey string `env:"MINIO_ROOT_PASSWORD" envDefault:"change-me-strong-password"`
	UseSSL          bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region          string `env:"MINIO_REGION"`
}

// S3Config carries AWS S3 connection information. Empty keys fall back to the
// default AWS credential chain.
type S3Config struct {
	Endpoint     string `env:"S3_ENDPOINT"`
	Region       string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKey    string `env:"S3_ACCESS_KEY"`
	SecretKey    string `env:"S3_SECRET_KEY"`
	UsePathStyle bool   `env:"S3_USE_PATH_STYLE" envDefault:"false"`
}

// DocStoreConfig selects where listings are written.
type DocStoreConfig struct {
	Driver string `env:"DOCSTORE_DRIVER" envDefault:"postgres"`
}

// PostgresConfig contains PostgreSQL connection details.
type PostgresConfig struct {
	Host           string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port           int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User           string `env:"POSTGRES_USER" envDefault:"clipcatalog_app"`
	Password       string `env:"POSTGRES_PASSWORD" envDefault:"change-me"`
	Database       string `env:"POSTGRES_DB" envDefault:"clipcatalog"`
	SSLMode        string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MigrateOnStart bool   `env:"POSTGRES_MIGRATE_ON_START" envDefault:"true"`
	MaxConns       int32  `env:"POSTGRES_MAX_CONNS" envDefault:"2"`
}

// DSN returns the PostgreSQL DSN string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, strings.ToLower(p.SSLMode))
}

// DynamoDBConfig carries DynamoDB connection information.
type DynamoDBConfig struct {
	Endpoint  string `env:"DYNAMODB_ENDPOINT"`
	Region    string `env:"DYNAMODB_REGION" envDefault:"us-east-1"`
	AccessKey string `env:"DYNAMODB_ACCESS_KEY"`
	SecretKey string `env:"DYNAMODB_SECRET_KEY"`
}

// CatalogConfig parameterizes the population run itself.
type CatalogConfig struct {
	Prefix          string        `env:"CATALOG_PREFIX"`
	Collection      string        `env:"CATALOG_COLLECTION" envDefault:"marketplace_listings"`
	SellerID        string        `env:"CATALOG_SELLER_ID" envDefault:"admin"`
	SellerName      string        `env:"CATALOG_SELLER_NAME" envDefault:"Reelzila"`
	PacingInterval  time.Duration `env:"CATALOG_PACING_INTERVAL" envDefault:"500ms"`
	URLExpiry       time.Duration `env:"CATALOG_URL_EXPIRY" envDefault:"168h"`
	PublicBaseURL   string        `env:"CATALOG_PUBLIC_BASE_URL"`
	DedupByFileName bool          `env:"CATALOG_DEDUP_BY_FILENAME" envDefault:"false"`
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	Addr           string `env:"METRICS_ADDR"`
	PrometheusPath string `env:"METRICS_PATH" envDefault:"/metrics"`
	PushgatewayURL string `env:"METRICS_PUSHGATEWAY_URL"`
	JobName        string `env:"METRICS_JOB_NAME" envDefault:"clipcatalog_populate"`
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.DocStore.Driver = strings.ToLower(strings.TrimSpace(cfg.DocStore.Driver))
	cfg.Catalog.PublicBaseURL = strings.TrimRight(cfg.Catalog.PublicBaseURL, "/")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverMinIO, StorageDriverS3:
	default:
		return fmt.Errorf("%w: unknown STORAGE_DRIVER %q", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.DocStore.Driver {
	case DocStoreDriverPostgres, DocStoreDriverDynamoDB:
	default:
		return fmt.Errorf("%w: unknown DOCSTORE_DRIVER %q", ErrInvalidConfig, c.DocStore.Driver)
	}

	if strings.TrimSpace(c.Storage.Bucket) == "" {
		return fmt.Errorf("%w: STORAGE_BUCKET is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Catalog.Collection) == "" {
		return fmt.Errorf("%w: CATALOG_COLLECTION is empty", ErrInvalidConfig)
	}

	if c.Catalog.URLExpiry <= 0 || c.Catalog.URLExpiry > MaxURLExpiry {
		c.Catalog.URLExpiry = MaxURLExpiry
	}
	if c.Catalog.PacingInterval < 0 {
		c.Catalog.PacingInterval = 0
	}
	return nil
}
