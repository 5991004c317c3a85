// Package repo provides the Postgres repository for the querylog service
package repo

import (
	"context"

	"tripparse/internal/modkit/repokit"
	pstr "tripparse/internal/platform/strings"
	"tripparse/internal/services/querylog/domain"
)

// binder implements repokit.Binder[domain.StorageRepo]
type binder struct{}

// NewPG returns a Postgres binder for domain.StorageRepo
func NewPG() repokit.Binder[domain.StorageRepo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.StorageRepo { return &pg{q: q} }

type pg struct{ q repokit.Queryer }

// Insert writes one parse outcome; optional slots persist as NULLs
func (s *pg) Insert(ctx context.Context, e domain.Entry) error {
	const q = `
		INSERT INTO parsed_queries (
			id, query, lang, lang_confidence,
			origin, destination, departure_date, return_date,
			trip_type, can_search, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := s.q.Exec(ctx, q,
		e.ID, e.Query, e.Language, e.LanguageConfidence,
		pstr.SQLNull(e.Origin), pstr.SQLNull(e.Destination),
		pstr.SQLNull(e.DepartureDate), pstr.SQLNull(e.ReturnDate),
		e.TripType, e.CanSearch, e.CreatedAt,
	)
	return err
}

// Recent returns the latest entries, newest first
func (s *pg) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
		SELECT id, query, lang, lang_confidence,
			COALESCE(origin, ''), COALESCE(destination, ''),
			COALESCE(departure_date, ''), COALESCE(return_date, ''),
			trip_type, can_search, created_at
		FROM parsed_queries
		ORDER BY created_at DESC, id
		LIMIT $1`
	rows, err := s.q.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(
			&e.ID, &e.Query, &e.Language, &e.LanguageConfidence,
			&e.Origin, &e.Destination, &e.DepartureDate, &e.ReturnDate,
			&e.TripType, &e.CanSearch, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
