package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, t *Trip) error
	GetByID(ctx context.Context, id string) (*Trip, error)
	GetBySlug(ctx context.Context, slug string) (*Trip, error)
	List(ctx context.Context, filter Filter) ([]*Trip, int, error)
	// Count returns the unfiltered number of trips in the table.
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, t *Trip) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var tripColumns = []string{
	"id", "name", "slug", "category", "duration_days", "price",
	"image_url", "description", "highlights", "difficulty", "badge",
	"is_active", "created_at", "updated_at",
}

func scanTrip(row pgx.Row, extra ...any) (*Trip, error) {
	var t Trip
	var highlightsJSON []byte
	dest := []any{
		&t.ID, &t.Name, &t.Slug, &t.Category, &t.DurationDays, &t.Price,
		&t.ImageURL, &t.Description, &highlightsJSON, &t.Difficulty, &t.Badge,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if len(highlightsJSON) > 0 {
		if err := json.Unmarshal(highlightsJSON, &t.Highlights); err != nil {
			// One bad record should not fail the whole list.
			log.Printf("warning: failed to unmarshal highlights for trip %s: %v", t.ID, err)
		}
	}
	return &t, nil
}

func marshalHighlights(hs []string) ([]byte, error) {
	if hs == nil {
		hs = []string{}
	}
	return json.Marshal(hs)
}

func (r *pgxRepository) Create(ctx context.Context, t *Trip) error {
	highlights, err := marshalHighlights(t.Highlights)
	if err != nil {
		return fmt.Errorf("marshal highlights failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.trips").
		Columns(
			"name", "slug", "category", "duration_days", "price",
			"image_url", "description", "highlights", "difficulty", "badge", "is_active",
		).
		Values(
			t.Name, t.Slug, t.Category, t.DurationDays, t.Price,
			t.ImageURL, t.Description, highlights, t.Difficulty, t.Badge, t.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create trip query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrSlugTaken
		}
		return fmt.Errorf("create trip failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Trip, error) {
	return r.getByField(ctx, "id", id)
}

func (r *pgxRepository) GetBySlug(ctx context.Context, slug string) (*Trip, error) {
	return r.getByField(ctx, "slug", slug)
}

func (r *pgxRepository) getByField(ctx context.Context, field, value string) (*Trip, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(tripColumns...).
		From("public.trips").
		Where(squirrel.Eq{field: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get trip query failed: %w", err)
	}

	t, err := scanTrip(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get trip failed: %w", err)
	}
	return t, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Trip, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, tripColumns...), "count(*) OVER() AS total_count")
	query := psql.Select(cols...).From("public.trips")

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.OnlyActive {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	query = query.OrderBy("created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list trips query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list trips failed: %w", err)
	}
	defer rows.Close()

	var trips []*Trip
	var total int

	for rows.Next() {
		t, err := scanTrip(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan trip failed: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, total, nil
}

func (r *pgxRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM public.trips").Scan(&n); err != nil {
		return 0, fmt.Errorf("count trips failed: %w", err)
	}
	return n, nil
}

func (r *pgxRepository) Update(ctx context.Context, t *Trip) error {
	highlights, err := marshalHighlights(t.Highlights)
	if err != nil {
		return fmt.Errorf("marshal highlights failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.trips").
		Set("name", t.Name).
		Set("slug", t.Slug).
		Set("category", t.Category).
		Set("duration_days", t.DurationDays).
		Set("price", t.Price).
		Set("image_url", t.ImageURL).
		Set("description", t.Description).
		Set("highlights", highlights).
		Set("difficulty", t.Difficulty).
		Set("badge", t.Badge).
		Set("is_active", t.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update trip query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrSlugTaken
		}
		return fmt.Errorf("update trip failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.trips").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete trip query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete trip failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
