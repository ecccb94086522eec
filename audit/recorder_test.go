package audit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	err     error
	entries []struct {
		userID *int64
		action string
		result string
	}
}

func (s *memStore) insert(ctx context.Context, userID *int64, action, result string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, struct {
		userID *int64
		action string
		result string
	}{userID, action, result})
	return nil
}

func TestRecordWritesEntry(t *testing.T) {
	store := &memStore{}
	rec := newRecorder(store, slog.Default())

	userID := int64(9)
	rec.Record(&userID, "course_created", "success")
	rec.Record(nil, "user_login", "failure")
	rec.Close()

	require.Len(t, store.entries, 2)
	actions := map[string]bool{}
	for _, e := range store.entries {
		actions[e.action] = true
	}
	assert.True(t, actions["course_created"])
	assert.True(t, actions["user_login"])
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	store := &memStore{err: errors.New("store unavailable")}
	rec := newRecorder(store, slog.Default())

	// A handler that records after determining its outcome. The simulated
	// outage must not alter status or body of the primary request.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := int64(1)
		rec.Record(&userID, "ai_summarize", "success")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/api/ai/summarize", nil))
	rec.Close()

	assert.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"success":true}`, res.Body.String())
	assert.Empty(t, store.entries)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 50, 120)
	assert.Equal(t, 120, p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 3, p.TotalPages)

	// Defaults guard against zero and negative inputs.
	p = NewPagination(0, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 0, p.TotalPages)
}
