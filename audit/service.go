package audit

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shipekarrohit/backend-project/apperror"
)

// LogService reads the append-only log collection. The application never
// updates or deletes entries; listing is the only read path.
type LogService struct {
	db *pgxpool.Pool
}

// NewLogService creates a new LogService.
func NewLogService(db *pgxpool.Pool) *LogService {
	return &LogService{db: db}
}

// NewPagination computes listing metadata from a total row count.
func NewPagination(page, limit, total int) Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// List returns one page of log entries, newest first, each joined with its
// actor when the user row still exists.
func (s *LogService) List(ctx context.Context, page, limit int) ([]Entry, Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM logs`).Scan(&total); err != nil {
		return nil, Pagination{}, apperror.NewDatabaseError("failed to count logs", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT l.id, l.user_id, l.action, l.result, l.timestamp,
		       u.id, u.name, u.email
		FROM logs l
		LEFT JOIN users u ON u.id = l.user_id
		ORDER BY l.timestamp DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, Pagination{}, apperror.NewDatabaseError("failed to fetch logs", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var actorID *int64
		var actorName, actorEmail *string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Result, &e.Timestamp,
			&actorID, &actorName, &actorEmail); err != nil {
			return nil, Pagination{}, apperror.NewDatabaseError("failed to scan log entry", err)
		}
		if actorID != nil {
			e.User = &Actor{ID: *actorID, Name: *actorName, Email: *actorEmail}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, Pagination{}, apperror.NewDatabaseError("failed to read logs", err)
	}

	return entries, NewPagination(page, limit, total), nil
}
