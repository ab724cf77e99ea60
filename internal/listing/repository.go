package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const repositoryTimeout = 5 * time.Second

// DefaultTable is the collection name used when none is configured.
const DefaultTable = "marketplace_listings"

const (
	idColumn              = "id"
	sellerIDColumn        = "seller_id"
	sellerNameColumn      = "seller_name"
	titleColumn           = "title"
	descriptionColumn     = "description"
	videoURLColumn        = "video_url"
	thumbnailURLColumn    = "thumbnail_url"
	generationIDColumn    = "generation_id"
	promptColumn          = "prompt"
	priceColumn           = "price"
	currencyColumn        = "currency"
	tagsColumn            = "tags"
	useCasesColumn        = "use_cases"
	hasAudioColumn        = "has_audio"
	statusColumn          = "status"
	soldColumn            = "sold"
	aspectRatioColumn     = "aspect_ratio"
	durationColumn        = "duration"
	durationSecondsColumn = "duration_seconds"
	resolutionColumn      = "resolution"
	fileSizeColumn        = "file_size"
	fileNameColumn        = "file_name"
	createdAtColumn       = "created_at"
	updatedAtColumn       = "updated_at"
)

// Repository persists listings in PostgreSQL.
type Repository struct {
	pool    *pgxpool.Pool
	table   string
	builder squirrel.StatementBuilderType
}

// NewRepository constructs a listing repository writing to table.
func NewRepository(pool *pgxpool.Pool, table string) *Repository {
	if table == "" {
		table = DefaultTable
	}
	return &Repository{
		pool:    pool,
		table:   table,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert stores l and returns it with the server-assigned timestamps.
func (r *Repository) Insert(ctx context.Context, l Listing) (Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, repositoryTimeout)
	defer cancel()

	query, args, err := insertQuery(r.builder, r.table, l)
	if err != nil {
		return Listing{}, fmt.Errorf("build insert listing: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&l.CreatedAt, &l.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return Listing{}, fmt.Errorf("insert listing %s: duplicate id: %w", l.ID, err)
		}
		return Listing{}, fmt.Errorf("insert listing: %w", err)
	}
	return l, nil
}

// ExistsByFileName reports whether any listing references fileName.
func (r *Repository) ExistsByFileName(ctx context.Context, fileName string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, repositoryTimeout)
	defer cancel()

	query, args, err := r.builder.
		Select("1").
		From(r.table).
		Where(squirrel.Eq{fileNameColumn: fileName}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build listing lookup: %w", err)
	}

	var one int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup listing by file name: %w", err)
	}
	return true, nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func insertQuery(builder squirrel.StatementBuilderType, table string, l Listing) (string, []interface{}, error) {
	return builder.
		Insert(table).
		Columns(
			idColumn,
			sellerIDColumn,
			sellerNameColumn,
			titleColumn,
			descriptionColumn,
			videoURLColumn,
			thumbnailURLColumn,
			generationIDColumn,
			promptColumn,
			priceColumn,
			currencyColumn,
			tagsColumn,
			useCasesColumn,
			hasAudioColumn,
			statusColumn,
			soldColumn,
			aspectRatioColumn,
			durationColumn,
			durationSecondsColumn,
			resolutionColumn,
			fileSizeColumn,
			fileNameColumn,
		).
		Values(
			l.ID,
			l.SellerID,
			l.SellerName,
			l.Title,
			l.Description,
			l.VideoURL,
			l.ThumbnailURL,
			l.GenerationID,
			l.Prompt,
			l.Price,
			l.Currency,
			l.Tags,
			l.UseCases,
			l.HasAudio,
			l.Status,
			l.Sold,
			l.AspectRatio,
			l.Duration,
			l.DurationSeconds,
			l.Resolution,
			l.FileSize,
			l.FileName,
		).
		Suffix("RETURNING " + createdAtColumn + ", " + updatedAtColumn).
		ToSql()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
