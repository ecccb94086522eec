// Package audit records best-effort (actor, action, result, timestamp)
// tuples and serves the paginated log listing. Recording is a detached
// side effect: it runs off the request path on its own goroutine with its
// own deadline, and a failed write is reported to the diagnostic log only.
// A primary operation can never fail, slow down or change its response
// because of audit logging.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// writeTimeout bounds each detached audit write. Deliberately independent of
// the originating request's context, which may already be cancelled by the
// time the write runs.
const writeTimeout = 5 * time.Second

// entryStore abstracts the durable log write so an outage can be simulated
// in tests.
type entryStore interface {
	insert(ctx context.Context, userID *int64, action, result string) error
}

// pgEntryStore appends rows to the logs table. The timestamp is
// server-assigned by the column default.
type pgEntryStore struct {
	db *pgxpool.Pool
}

func (s *pgEntryStore) insert(ctx context.Context, userID *int64, action, result string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO logs (user_id, action, result) VALUES ($1, $2, $3)`,
		userID, action, result)
	return err
}

// Recorder is the fire-and-forget audit sink handed to every handler.
type Recorder struct {
	store  entryStore
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewRecorder creates a Recorder writing to the logs table.
func NewRecorder(db *pgxpool.Pool, logger *slog.Logger) *Recorder {
	return newRecorder(&pgEntryStore{db: db}, logger)
}

func newRecorder(store entryStore, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// Record attempts a durable write of the tuple on a detached goroutine.
// userID may be nil for actions that fail before authentication. The write
// may race with or trail the primary response; any failure is swallowed here
// and surfaced only on the diagnostic channel.
func (r *Recorder) Record(userID *int64, action, result string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := r.store.insert(ctx, userID, action, result); err != nil {
			r.logger.Error("failed to record audit entry",
				"action", action,
				"result", result,
				"error", err,
			)
		}
	}()
}

// Close waits for in-flight writes to finish. Called during graceful
// shutdown so trailing entries are not lost with the process.
func (r *Recorder) Close() {
	r.wg.Wait()
}
