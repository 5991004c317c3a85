// Package service implements the querylog recorder
package service

import (
	"context"

	"github.com/google/uuid"

	"tripparse/internal/modkit/repokit"
	perr "tripparse/internal/platform/errors"
	ptime "tripparse/internal/platform/time"
	"tripparse/internal/services/querylog/domain"
	"tripparse/internal/services/querylog/repo"
)

// Recorder persists parse outcomes. With no store configured it degrades
// to a no-op so the API keeps answering
type Recorder struct {
	tx   repokit.TxRunner
	repo repokit.Binder[domain.StorageRepo]
	now  ptime.Clock
}

// Option configures a Recorder
type Option func(*Recorder)

// WithClock overrides the timestamp source
func WithClock(c ptime.Clock) Option {
	return func(r *Recorder) { r.now = c }
}

// WithRepo overrides the storage binder (tests)
func WithRepo(b repokit.Binder[domain.StorageRepo]) Option {
	return func(r *Recorder) { r.repo = b }
}

// NewRecorder constructs a Recorder over the given transaction runner.
// tx may be nil when the store is disabled
func NewRecorder(tx repokit.TxRunner, opts ...Option) *Recorder {
	r := &Recorder{
		tx:   tx,
		repo: repo.NewPG(),
		now:  ptime.SystemClock,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record implements domain.RecorderPort
func (r *Recorder) Record(ctx context.Context, e domain.Entry) error {
	if r.tx == nil {
		return nil
	}
	if e.Query == "" {
		return perr.InvalidArgf("querylog: empty query")
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now().UTC()
	}

	err := repokit.WithTx(ctx, r.tx, func(q repokit.Queryer) error {
		return r.repo.Bind(q).Insert(ctx, e)
	})
	if err != nil {
		return perr.FromPostgres(err, "querylog insert")
	}
	return nil
}

// Recent returns the latest recorded entries, newest first
func (r *Recorder) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	if r.tx == nil {
		return nil, nil
	}
	var out []domain.Entry
	err := repokit.WithTx(ctx, r.tx, func(q repokit.Queryer) error {
		var err error
		out, err = r.repo.Bind(q).Recent(ctx, limit)
		return err
	})
	if err != nil {
		return nil, perr.FromPostgres(err, "querylog recent")
	}
	return out, nil
}
