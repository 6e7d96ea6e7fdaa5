package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bitsearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bitsearch.ResultStore = (*ResultStore)(nil)

// ResultStore implements bitsearch.ResultStore using SQLite.
type ResultStore struct {
	db *DB
}

// NewResultStore creates a new ResultStore.
func NewResultStore(db *DB) *ResultStore {
	return &ResultStore{db: db}
}

// HashLink returns the hex xxHash of a result link. Identical magnets from
// different searches share a hash.
func HashLink(link string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(link))
}

// CreateResult stores a result.
func (s *ResultStore) CreateResult(ctx context.Context, r *bitsearch.StoredResult) error {
	if err := r.Validate(); err != nil {
		return err
	}

	r.ID = uuid.New().String()
	r.LinkHash = HashLink(r.Link)
	r.FetchedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (id, query, category, link, link_hash, name, size, seeds, leech, engine_url, desc_link, pub_date, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Query, r.Category, r.Link, r.LinkHash, r.Name, r.Size, r.Seeds, r.Leech,
		r.EngineURL, r.DescLink, r.PubDate, r.FetchedAt.Format(time.RFC3339))

	return err
}

// FindResults retrieves results matching the filter, newest first.
func (s *ResultStore) FindResults(ctx context.Context, filter bitsearch.ResultFilter) ([]*bitsearch.StoredResult, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, query, category, link, link_hash, name, size, seeds, leech, engine_url, desc_link, pub_date, fetched_at
		FROM results WHERE 1=1`)

	if filter.Query != nil {
		query.WriteString(" AND query = ?")
		args = append(args, *filter.Query)
	}
	if filter.LinkHash != nil {
		query.WriteString(" AND link_hash = ?")
		args = append(args, *filter.LinkHash)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")

	// SQLite only accepts OFFSET after a LIMIT; -1 means no limit.
	if filter.Limit > 0 || filter.Offset > 0 {
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*bitsearch.StoredResult
	for rows.Next() {
		var r bitsearch.StoredResult
		var fetchedAt string

		if err := rows.Scan(&r.ID, &r.Query, &r.Category, &r.Link, &r.LinkHash, &r.Name,
			&r.Size, &r.Seeds, &r.Leech, &r.EngineURL, &r.DescLink, &r.PubDate, &fetchedAt); err != nil {
			return nil, err
		}

		if r.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt); err != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
		}

		results = append(results, &r)
	}

	return results, rows.Err()
}

// DeleteResults removes results for query, or every result when query is
// empty.
func (s *ResultStore) DeleteResults(ctx context.Context, query string) (int, error) {
	stmt := "DELETE FROM results"
	var args []any
	if query != "" {
		stmt += " WHERE query = ?"
		args = append(args, query)
	}

	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
