package domain

import "context"

// RecorderPort accepts parse outcomes for persistence. Recording is best
// effort; callers log and continue on error
type RecorderPort interface {
	Record(ctx context.Context, e Entry) error
}

// HistoryPort reads back recorded queries, newest first
type HistoryPort interface {
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// StorageRepo is the persistence surface bound per-queryer via repokit
type StorageRepo interface {
	Insert(ctx context.Context, e Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
