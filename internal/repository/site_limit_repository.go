//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"visitcap/internal/model"
	"visitcap/pkg/snowflake"
)

// ErrDuplicatePattern is returned by Create when another record already owns the pattern.
var ErrDuplicatePattern = errors.New("duplicate pattern")

// MutateFunc edits a record in place. Returning an error aborts the write.
type MutateFunc func(limit *model.SiteLimit) error

// SiteLimitRepository is the site registry.
type SiteLimitRepository interface {
	// Create assigns an id and stores limit. It returns ErrDuplicatePattern when the pattern is taken.
	Create(ctx context.Context, limit model.SiteLimit) (*model.SiteLimit, error)
	GetByID(ctx context.Context, id int64) (*model.SiteLimit, error)
	GetByPattern(ctx context.Context, pattern string) (*model.SiteLimit, error)
	List(ctx context.Context) ([]model.SiteLimit, error)
	// Apply runs fn against the current copy of one record and persists the result atomically.
	// It returns sql.ErrNoRows when id does not exist.
	Apply(ctx context.Context, id int64, fn MutateFunc) (*model.SiteLimit, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type siteLimitRepository struct {
	db *sql.DB
}

// NewSiteLimitRepository creates the SQLite backed registry.
func NewSiteLimitRepository(db *sql.DB) SiteLimitRepository {
	return &siteLimitRepository{db: db}
}

const siteLimitColumns = `id, pattern, visit_limit, time_interval, visit_count, last_reset, created_at`

// Create creates a new site limit record.
func (r *siteLimitRepository) Create(ctx context.Context, limit model.SiteLimit) (*model.SiteLimit, error) {
	limit.ID = snowflake.NextID()
	now := time.Now().UTC()
	if limit.CreatedAt.IsZero() {
		limit.CreatedAt = now
	}
	if limit.LastReset.IsZero() {
		limit.LastReset = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO site_limits (id, pattern, visit_limit, time_interval, visit_count, last_reset, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, limit.ID, limit.Pattern, limit.VisitLimit, string(limit.TimeInterval), limit.VisitCount,
		formatTime(limit.LastReset), formatTime(limit.CreatedAt), formatTime(now))
	if isUniqueViolation(err) {
		return nil, ErrDuplicatePattern
	}
	if err != nil {
		return nil, err
	}
	return &limit, nil
}

// GetByID returns the record with id, or nil when there is none.
func (r *siteLimitRepository) GetByID(ctx context.Context, id int64) (*model.SiteLimit, error) {
	return getSiteLimit(ctx, r.db, `SELECT `+siteLimitColumns+` FROM site_limits WHERE id = ?`, id)
}

// GetByPattern returns the record owning pattern, or nil when there is none.
func (r *siteLimitRepository) GetByPattern(ctx context.Context, pattern string) (*model.SiteLimit, error) {
	return getSiteLimit(ctx, r.db, `SELECT `+siteLimitColumns+` FROM site_limits WHERE pattern = ?`, pattern)
}

// List returns every record in creation order.
func (r *siteLimitRepository) List(ctx context.Context) ([]model.SiteLimit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+siteLimitColumns+` FROM site_limits ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var limits []model.SiteLimit
	for rows.Next() {
		limit, err := scanSiteLimit(rows)
		if err != nil {
			return nil, err
		}
		limits = append(limits, limit)
	}
	return limits, rows.Err()
}

// Apply mutates one record inside a transaction.
func (r *siteLimitRepository) Apply(ctx context.Context, id int64, fn MutateFunc) (*model.SiteLimit, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	current, err := getSiteLimit(ctx, tx, `SELECT `+siteLimitColumns+` FROM site_limits WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, sql.ErrNoRows
	}

	if err := fn(current); err != nil {
		return nil, err
	}
	// id and created_at are immutable.
	current.ID = id

	result, err := tx.ExecContext(ctx, `
		UPDATE site_limits
		SET pattern = ?, visit_limit = ?, time_interval = ?, visit_count = ?, last_reset = ?, updated_at = ?
		WHERE id = ?
	`, current.Pattern, current.VisitLimit, string(current.TimeInterval), current.VisitCount,
		formatTime(current.LastReset), formatTime(time.Now()), id)
	if err != nil {
		return nil, err
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return current, nil
}

// Delete removes the record with id.
func (r *siteLimitRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM site_limits WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// DeleteAll removes every record and returns how many were removed.
func (r *siteLimitRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM site_limits`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// isUniqueViolation reports whether err is the pattern index rejecting an insert.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
}

func getSiteLimit(ctx context.Context, q dbtx, query string, args ...interface{}) (*model.SiteLimit, error) {
	limit, err := scanSiteLimit(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &limit, nil
}

func scanSiteLimit(row rowScanner) (model.SiteLimit, error) {
	var limit model.SiteLimit
	var interval, lastReset, createdAt string
	if err := row.Scan(&limit.ID, &limit.Pattern, &limit.VisitLimit, &interval, &limit.VisitCount, &lastReset, &createdAt); err != nil {
		return model.SiteLimit{}, err
	}
	limit.TimeInterval = model.TimeInterval(interval)

	var err error
	if limit.LastReset, err = parseTime(lastReset); err != nil {
		return model.SiteLimit{}, fmt.Errorf("parse last_reset of %d: %w", limit.ID, err)
	}
	limit.CreatedAt, _ = parseTime(createdAt)
	return limit, nil
}
