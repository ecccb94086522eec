package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipekarrohit/backend-project/auth"
)

type stubLister struct {
	gotPage  int
	gotLimit int
	entries  []Entry
}

func (s *stubLister) List(ctx context.Context, page, limit int) ([]Entry, Pagination, error) {
	s.gotPage = page
	s.gotLimit = limit
	return s.entries, NewPagination(page, limit, len(s.entries)), nil
}

func TestHandleListLogs(t *testing.T) {
	userID := int64(3)
	lister := &stubLister{entries: []Entry{
		{ID: 1, UserID: &userID, Action: "user_login", Timestamp: time.Now(),
			User: &Actor{ID: 3, Name: "Jane", Email: "jane@x.com"}},
		{ID: 2, Action: "user_registered", Timestamp: time.Now()},
	}}
	h := NewHandlers(lister)

	req := httptest.NewRequest(http.MethodGet, "/api/logs?page=2&limit=10", nil)
	res := httptest.NewRecorder()
	h.HandleListLogs()(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, 2, lister.gotPage)
	assert.Equal(t, 10, lister.gotLimit)

	var env auth.Envelope
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &env))
	assert.True(t, env.Success)
	data := env.Data.(map[string]any)
	assert.Len(t, data["logs"], 2)
	pagination := data["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["page"])
}

func TestHandleListLogsDefaults(t *testing.T) {
	lister := &stubLister{}
	h := NewHandlers(lister)

	for _, target := range []string{"/api/logs", "/api/logs?page=abc&limit=-4"} {
		res := httptest.NewRecorder()
		h.HandleListLogs()(res, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, res.Code, target)
		assert.Equal(t, 1, lister.gotPage, target)
		assert.Equal(t, 50, lister.gotLimit, target)
	}
}
