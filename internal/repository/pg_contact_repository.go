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

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Insert stores a new contact_submissions row and populates sub.CreatedAt
// from the database RETURNING clause.
func (r *PgContactRepository) Insert(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (id, name, email, phone, subject, message)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		sub.ID, sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message,
	).Scan(&sub.CreatedAt)
}

// List returns contact submissions matching opts, newest first.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions, limit, offset int) ([]*model.ContactSubmission, error) {
	where, args := contactFilter(opts)

	limitArg := strconv.Itoa(len(args) + 1)
	offsetArg := strconv.Itoa(len(args) + 2)
	args = append(args, limit, offset)

	query := `SELECT id, name, email, phone, subject, message, is_responded, response_notes, created_at
	          FROM contact_submissions ` + where + `
	          ORDER BY created_at DESC
	          LIMIT $` + limitArg + ` OFFSET $` + offsetArg

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message,
			&s.IsResponded, &s.ResponseNotes, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Count returns the number of contact submissions matching opts.
func (r *PgContactRepository) Count(ctx context.Context, opts model.ContactListOptions) (int, error) {
	where, args := contactFilter(opts)
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions `+where, args...).Scan(&total)
	return total, err
}

// SetResponded updates the responded flag of a submission. A non-nil
// notes replaces the stored response notes.
func (r *PgContactRepository) SetResponded(ctx context.Context, id string, responded bool, notes *string) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	err := r.pool.QueryRow(ctx,
		`UPDATE contact_submissions
		 SET is_responded = $2, response_notes = COALESCE($3, response_notes)
		 WHERE id = $1
		 RETURNING id, name, email, phone, subject, message, is_responded, response_notes, created_at`,
		id, responded, notes,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message,
		&s.IsResponded, &s.ResponseNotes, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func contactFilter(opts model.ContactListOptions) (string, []any) {
	var conditions []string
	var args []any

	if email := strings.TrimSpace(opts.Email); email != "" {
		args = append(args, "%"+escapeLike(email)+"%")
		conditions = append(conditions, "email ILIKE $"+strconv.Itoa(len(args)))
	}
	if opts.Subject != "" {
		args = append(args, opts.Subject)
		conditions = append(conditions, "subject = $"+strconv.Itoa(len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike escapes LIKE wildcards so filter input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
