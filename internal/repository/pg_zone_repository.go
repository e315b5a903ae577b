package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tyma/backend/internal/model"
)

// PgZoneRepository is the PostgreSQL implementation of ZoneRepository.
type PgZoneRepository struct {
	pool *pgxpool.Pool
}

// NewPgZoneRepository creates a PgZoneRepository backed by the given pool.
func NewPgZoneRepository(pool *pgxpool.Pool) *PgZoneRepository {
	return &PgZoneRepository{pool: pool}
}

// Ensure PgZoneRepository implements ZoneRepository at compile time.
var _ ZoneRepository = (*PgZoneRepository)(nil)

// Insert stores a new zones row and populates zone timestamps from the
// database RETURNING clause.
func (r *PgZoneRepository) Insert(ctx context.Context, zone *model.Zone) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO zones (id, name, slug, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		zone.ID, zone.Name, zone.Slug, zone.Description,
	).Scan(&zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetBySlug returns a single zone by slug.
func (r *PgZoneRepository) GetBySlug(ctx context.Context, slug string) (*model.Zone, error) {
	var z model.Zone
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, slug, description, created_at, updated_at
		 FROM zones WHERE slug = $1`,
		slug,
	).Scan(&z.ID, &z.Name, &z.Slug, &z.Description, &z.CreatedAt, &z.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &z, nil
}

// GetByName returns a single zone by name, compared case-insensitively.
func (r *PgZoneRepository) GetByName(ctx context.Context, name string) (*model.Zone, error) {
	var z model.Zone
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, slug, description, created_at, updated_at
		 FROM zones WHERE LOWER(name) = LOWER($1)`,
		name,
	).Scan(&z.ID, &z.Name, &z.Slug, &z.Description, &z.CreatedAt, &z.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &z, nil
}

// List returns zones ordered by name.
func (r *PgZoneRepository) List(ctx context.Context, limit, offset int) ([]*model.Zone, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, slug, description, created_at, updated_at
		 FROM zones
		 ORDER BY name
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []*model.Zone
	for rows.Next() {
		var z model.Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Slug, &z.Description, &z.CreatedAt, &z.UpdatedAt); err != nil {
			return nil, err
		}
		zones = append(zones, &z)
	}
	return zones, rows.Err()
}

// Count returns the total number of zones.
func (r *PgZoneRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM zones`).Scan(&total)
	return total, err
}

// Update applies partial updates to a zone. Nil patch fields keep the
// stored values.
func (r *PgZoneRepository) Update(ctx context.Context, slug string, patch model.ZonePatch) (*model.Zone, error) {
	var z model.Zone
	err := r.pool.QueryRow(ctx,
		`UPDATE zones
		 SET name        = COALESCE($2, name),
		     description = COALESCE($3, description),
		     updated_at  = NOW()
		 WHERE slug = $1
		 RETURNING id, name, slug, description, created_at, updated_at`,
		slug, patch.Name, patch.Description,
	).Scan(&z.ID, &z.Name, &z.Slug, &z.Description, &z.CreatedAt, &z.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &z, nil
}

// Delete removes a zone by slug.
func (r *PgZoneRepository) Delete(ctx context.Context, slug string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM zones WHERE slug = $1`, slug)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// NameExists reports whether the name is already taken by another zone.
func (r *PgZoneRepository) NameExists(ctx context.Context, name, excludeSlug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM zones WHERE LOWER(name) = LOWER($1) AND slug <> $2
		 )`,
		name, excludeSlug,
	).Scan(&exists)
	return exists, err
}

// Slugs returns every zone slug currently in use.
func (r *PgZoneRepository) Slugs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug FROM zones`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}
