package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tyma/backend/internal/model"
)

// PgOfficialRepository is the PostgreSQL implementation of OfficialRepository.
type PgOfficialRepository struct {
	pool *pgxpool.Pool
}

// NewPgOfficialRepository creates a PgOfficialRepository backed by the given pool.
func NewPgOfficialRepository(pool *pgxpool.Pool) *PgOfficialRepository {
	return &PgOfficialRepository{pool: pool}
}

// Ensure PgOfficialRepository implements OfficialRepository at compile time.
var _ OfficialRepository = (*PgOfficialRepository)(nil)

const officialColumns = `o.id, o.official_id, o.zone_id, o.name, o.phone, o.email,
       o.position, o.official_type, o.bio, o.is_active, o.display_order,
       o.start_date, o.end_date, o.created_at, o.updated_at,
       z.id, z.name, z.slug, z.description, z.created_at, z.updated_at`

func scanOfficial(row pgx.Row) (*model.Official, error) {
	var (
		o model.Official
		z model.Zone
	)
	err := row.Scan(&o.ID, &o.OfficialID, &o.ZoneID, &o.Name, &o.Phone, &o.Email,
		&o.Position, &o.OfficialType, &o.Bio, &o.IsActive, &o.DisplayOrder,
		&o.StartDate, &o.EndDate, &o.CreatedAt, &o.UpdatedAt,
		&z.ID, &z.Name, &z.Slug, &z.Description, &z.CreatedAt, &z.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Zone = &z
	return &o, nil
}

// Insert stores a new officials row and populates o.IsActive and the
// timestamps from the database RETURNING clause.
func (r *PgOfficialRepository) Insert(ctx context.Context, o *model.Official) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO officials
		   (id, official_id, zone_id, name, phone, email, position, official_type,
		    bio, display_order, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING is_active, created_at, updated_at`,
		o.ID, o.OfficialID, o.ZoneID, o.Name, o.Phone, o.Email, o.Position,
		o.OfficialType, o.Bio, o.DisplayOrder, o.StartDate, o.EndDate,
	).Scan(&o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetByOfficialID returns a single official with its zone by public ID.
func (r *PgOfficialRepository) GetByOfficialID(ctx context.Context, officialID string) (*model.Official, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+officialColumns+`
		 FROM officials o
		 JOIN zones z ON z.id = o.zone_id
		 WHERE o.official_id = $1`,
		officialID,
	)
	o, err := scanOfficial(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// List returns officials matching opts, ordered by display order then name.
func (r *PgOfficialRepository) List(ctx context.Context, opts model.OfficialListOptions, limit, offset int) ([]*model.Official, error) {
	where, args := officialFilter(opts)

	limitArg := strconv.Itoa(len(args) + 1)
	offsetArg := strconv.Itoa(len(args) + 2)
	args = append(args, limit, offset)

	query := `SELECT ` + officialColumns + `
	          FROM officials o
	          JOIN zones z ON z.id = o.zone_id ` + where + `
	          ORDER BY o.display_order, o.name
	          LIMIT $` + limitArg + ` OFFSET $` + offsetArg

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var officials []*model.Official
	for rows.Next() {
		o, err := scanOfficial(rows)
		if err != nil {
			return nil, err
		}
		officials = append(officials, o)
	}
	return officials, rows.Err()
}

// Count returns the number of officials matching opts.
func (r *PgOfficialRepository) Count(ctx context.Context, opts model.OfficialListOptions) (int, error) {
	where, args := officialFilter(opts)
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM officials o JOIN zones z ON z.id = o.zone_id `+where,
		args...,
	).Scan(&total)
	return total, err
}

// Update applies partial updates to an official. Nil patch fields keep
// the stored values.
func (r *PgOfficialRepository) Update(ctx context.Context, officialID string, patch model.OfficialPatch) (*model.Official, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE officials
		 SET name          = COALESCE($2, name),
		     zone_id       = COALESCE($3, zone_id),
		     phone         = COALESCE($4, phone),
		     email         = COALESCE($5, email),
		     position      = COALESCE($6, position),
		     official_type = COALESCE($7, official_type),
		     bio           = COALESCE($8, bio),
		     is_active     = COALESCE($9, is_active),
		     display_order = COALESCE($10, display_order),
		     start_date    = COALESCE($11, start_date),
		     end_date      = COALESCE($12, end_date),
		     updated_at    = NOW()
		 WHERE official_id = $1`,
		officialID, patch.Name, patch.ZoneID, patch.Phone, patch.Email,
		patch.Position, patch.OfficialType, patch.Bio, patch.IsActive,
		patch.DisplayOrder, patch.StartDate, patch.EndDate,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByOfficialID(ctx, officialID)
}

// Delete removes an official by public ID.
func (r *PgOfficialRepository) Delete(ctx context.Context, officialID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM officials WHERE official_id = $1`, officialID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// NameEmailExists reports whether an official with this name and email
// already exists, compared case-insensitively.
func (r *PgOfficialRepository) NameEmailExists(ctx context.Context, name, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM officials WHERE LOWER(name) = LOWER($1) AND LOWER(email) = LOWER($2)
		 )`,
		name, email,
	).Scan(&exists)
	return exists, err
}

// OfficialIDExists reports whether the public official ID is in use.
func (r *PgOfficialRepository) OfficialIDExists(ctx context.Context, officialID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM officials WHERE official_id = $1)`,
		officialID,
	).Scan(&exists)
	return exists, err
}

// CountByZone returns the number of officials attached to a zone.
func (r *PgOfficialRepository) CountByZone(ctx context.Context, zoneID string) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM officials WHERE zone_id = $1`,
		zoneID,
	).Scan(&total)
	return total, err
}

func officialFilter(opts model.OfficialListOptions) (string, []any) {
	var conditions []string
	var args []any

	if t := strings.TrimSpace(opts.OfficialType); t != "" {
		args = append(args, t)
		conditions = append(conditions, "LOWER(o.official_type) = LOWER($"+strconv.Itoa(len(args))+")")
	}
	if p := strings.TrimSpace(opts.Position); p != "" {
		args = append(args, p)
		conditions = append(conditions, "LOWER(o.position) = LOWER($"+strconv.Itoa(len(args))+")")
	}
	if s := strings.TrimSpace(opts.ZoneSlug); s != "" {
		args = append(args, s)
		conditions = append(conditions, "z.slug = $"+strconv.Itoa(len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
