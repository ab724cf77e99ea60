package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abduss/clipcatalog/internal/batch"
	"github.com/abduss/clipcatalog/internal/config"
	"github.com/abduss/clipcatalog/internal/file"
	"github.com/abduss/clipcatalog/internal/listing"
	"github.com/abduss/clipcatalog/internal/logger"
	"github.com/abduss/clipcatalog/internal/metrics"
	"github.com/abduss/clipcatalog/internal/presigned"
	"github.com/abduss/clipcatalog/internal/server"
	"github.com/abduss/clipcatalog/internal/storage"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const pushTimeout = 10 * time.Second

type objectStore interface {
	List(ctx context.Context, bucketName, prefix string) ([]file.Object, error)
	Stat(ctx context.Context, bucketName, objectName string) (file.Attributes, error)
}

type documentStore interface {
	Insert(ctx context.Context, l listing.Listing) (listing.Listing, error)
	ExistsByFileName(ctx context.Context, fileName string) (bool, error)
	Ping(ctx context.Context) error
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Error("populate failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	objects, signer, objectsPing, err := openObjectStore(ctx, cfg)
	if err != nil {
		return err
	}

	docs, closeDocs, err := openDocumentStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDocs()

	rec := metrics.New()

	if cfg.Metrics.Addr != "" {
		router := server.NewRouter(server.Dependencies{
			MetricsPath: cfg.Metrics.PrometheusPath,
			Metrics:     rec,
			Log:         log,
			Checks: []server.Check{
				{Component: cfg.DocStore.Driver, Pinger: docs},
				{Component: cfg.Storage.Driver, Pinger: objectsPing},
			},
		})
		srvCtx, stopServer := context.WithCancel(ctx)
		defer stopServer()
		go func() {
			if err := server.Serve(srvCtx, cfg.Metrics.Addr, router, log); err != nil {
				log.Warn("ops server stopped", zap.Error(err))
			}
		}()
	}

	urls := presigned.NewService(signer, cfg.Storage.Bucket, cfg.Catalog.URLExpiry, cfg.Catalog.PublicBaseURL)
	files := file.NewService(objects, urls, cfg.Storage.Bucket, cfg.Catalog.Prefix, log)
	writer := listing.NewService(docs, cfg.Catalog.DedupByFileName, log)
	runner := batch.NewRunner(files, writer, rec,
		batch.Seller{ID: cfg.Catalog.SellerID, Name: cfg.Catalog.SellerName},
		cfg.Catalog.PacingInterval, log)

	log.Info("starting catalog population",
		zap.String("storage", cfg.Storage.Driver),
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("prefix", cfg.Catalog.Prefix),
		zap.String("docstore", cfg.DocStore.Driver),
		zap.String("collection", cfg.Catalog.Collection),
		zap.Bool("dedup", cfg.Catalog.DedupByFileName),
	)

	summary, runErr := runner.Run(ctx)
	summary.Print(os.Stdout)

	if cfg.Metrics.PushgatewayURL != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		if err := metrics.Push(pushCtx, cfg.Metrics.PushgatewayURL, cfg.Metrics.JobName, rec.Registry()); err != nil {
			log.Warn("could not push metrics", zap.Error(err))
		}
	}

	return runErr
}

func openObjectStore(ctx context.Context, cfg config.Config) (objectStore, presigned.Signer, server.Pinger, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverS3:
		client, err := storage.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect s3: %w", err)
		}
		if err := storage.RequireS3Bucket(ctx, client, cfg.Storage.Bucket); err != nil {
			return nil, nil, nil, err
		}
		ping := server.PingFunc(func(ctx context.Context) error {
			return storage.RequireS3Bucket(ctx, client, cfg.Storage.Bucket)
		})
		return file.NewS3Store(client), presigned.NewS3Signer(client), ping, nil
	default:
		client, err := storage.NewMinIOClient(cfg.MinIO)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect minio: %w", err)
		}
		if err := storage.RequireBucket(ctx, client, cfg.Storage.Bucket); err != nil {
			return nil, nil, nil, err
		}
		ping := server.PingFunc(func(ctx context.Context) error {
			return storage.RequireBucket(ctx, client, cfg.Storage.Bucket)
		})
		return file.NewMinIOStore(client), presigned.NewMinIOSigner(client), ping, nil
	}
}

func openDocumentStore(ctx context.Context, cfg config.Config, log *zap.Logger) (documentStore, func(), error) {
	switch cfg.DocStore.Driver {
	case config.DocStoreDriverDynamoDB:
		client, err := storage.NewDynamoDBClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return listing.NewDynamoRepository(client, cfg.Catalog.Collection), func() {}, nil
	default:
		pool, err := storage.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if cfg.Postgres.MigrateOnStart {
			if err := storage.Migrate(pool, log); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return listing.NewRepository(pool, cfg.Catalog.Collection), pool.Close, nil
	}
}
