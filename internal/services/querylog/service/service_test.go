package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"tripparse/internal/platform/store"
	"tripparse/internal/services/querylog/domain"
)

// fakeTx records Exec calls and satisfies repokit.TxRunner
type fakeTx struct {
	sql  []string
	args [][]any
	err  error
}

type fakeTag struct{}

func (fakeTag) String() string      { return "INSERT 0 1" }
func (fakeTag) RowsAffected() int64 { return 1 }

func (f *fakeTx) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return fakeTag{}, f.err
}

func (f *fakeTx) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, f.err
}

func (f *fakeTx) QueryRow(context.Context, string, ...any) store.Row { return nil }

func (f *fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(f)
}

func TestRecord_NoStoreIsNoop(t *testing.T) {
	r := NewRecorder(nil)
	err := r.Record(context.Background(), domain.Entry{Query: "flights to rome"})
	if err != nil {
		t.Fatalf("nil store must be a no-op, got %v", err)
	}
}

func TestRecord_InsertsWithDefaults(t *testing.T) {
	tx := &fakeTx{}
	fixed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	r := NewRecorder(tx, WithClock(func() time.Time { return fixed }))

	err := r.Record(context.Background(), domain.Entry{
		Query:       "from nyc to gru",
		Language:    "en",
		Origin:      "New York",
		Destination: "São Paulo",
		TripType:    "round-trip",
		CanSearch:   true,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(tx.args) != 1 {
		t.Fatalf("want 1 insert, got %d", len(tx.args))
	}

	args := tx.args[0]
	if len(args) != 11 {
		t.Fatalf("want 11 args, got %d", len(args))
	}
	id, ok := args[0].(uuid.UUID)
	if !ok || id == uuid.Nil {
		t.Fatalf("id not assigned: %v", args[0])
	}
	// blank departure/return turn into SQL NULLs
	if args[6] != nil || args[7] != nil {
		t.Fatalf("blank dates must be nil, got %v %v", args[6], args[7])
	}
	if args[4] != "New York" {
		t.Fatalf("origin arg = %v", args[4])
	}
	if got := args[10].(time.Time); !got.Equal(fixed) {
		t.Fatalf("created_at = %v, want %v", got, fixed)
	}
}

func TestRecord_RejectsEmptyQuery(t *testing.T) {
	r := NewRecorder(&fakeTx{})
	if err := r.Record(context.Background(), domain.Entry{}); err == nil {
		t.Fatalf("expected error for empty query")
	}
}
