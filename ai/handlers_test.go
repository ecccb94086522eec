package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipekarrohit/backend-project/auth"
)

type recordedAction struct {
	userID *int64
	action string
	result string
}

type stubRecorder struct {
	actions []recordedAction
}

func (s *stubRecorder) Record(userID *int64, action, result string) {
	s.actions = append(s.actions, recordedAction{userID, action, result})
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := auth.NewContextWithPrincipal(req.Context(), &auth.Principal{ID: 5, Role: auth.RoleStudent})
	return req.WithContext(ctx)
}

func TestHandleSummarize(t *testing.T) {
	rec := &stubRecorder{}
	h := NewHandlers(rec)

	res := httptest.NewRecorder()
	h.HandleSummarize()(res, authedRequest(http.MethodPost, "/api/ai/summarize",
		`{"text":"Artificial Intelligence makes learning personalized and adaptive."}`))

	assert.Equal(t, http.StatusOK, res.Code)
	var env auth.Envelope
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &env))
	data := env.Data.(map[string]any)
	assert.Contains(t, data["summary"], "placeholder summary")
	assert.Equal(t, float64(65), data["originalLength"])

	require.Len(t, rec.actions, 1)
	assert.Equal(t, "ai_summarize", rec.actions[0].action)
	assert.Equal(t, "success", rec.actions[0].result)
	require.NotNil(t, rec.actions[0].userID)
	assert.Equal(t, int64(5), *rec.actions[0].userID)
}

func TestHandleSummarizeMissingText(t *testing.T) {
	rec := &stubRecorder{}
	h := NewHandlers(rec)

	res := httptest.NewRecorder()
	h.HandleSummarize()(res, authedRequest(http.MethodPost, "/api/ai/summarize", `{}`))

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Empty(t, rec.actions, "a failed stub call is not audited")
}

func TestHandleQuiz(t *testing.T) {
	rec := &stubRecorder{}
	h := NewHandlers(rec)

	res := httptest.NewRecorder()
	h.HandleQuiz()(res, authedRequest(http.MethodPost, "/api/ai/quiz", `{"topic":"photosynthesis"}`))

	assert.Equal(t, http.StatusOK, res.Code)
	var env auth.Envelope
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &env))
	data := env.Data.(map[string]any)
	assert.Equal(t, "photosynthesis", data["topic"])
	assert.Len(t, data["questions"], 2)

	require.Len(t, rec.actions, 1)
	assert.Equal(t, "ai_quiz_generated", rec.actions[0].action)
}

func TestHandleTranscribe(t *testing.T) {
	rec := &stubRecorder{}
	h := NewHandlers(rec)

	res := httptest.NewRecorder()
	h.HandleTranscribe()(res, authedRequest(http.MethodPost, "/api/ai/transcribe",
		`{"audioUrl":"https://example.com/lecture.mp3"}`))

	assert.Equal(t, http.StatusOK, res.Code)
	var env auth.Envelope
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &env))
	data := env.Data.(map[string]any)
	assert.Equal(t, "https://example.com/lecture.mp3", data["source"])

	require.Len(t, rec.actions, 1)
	assert.Equal(t, "ai_transcribe", rec.actions[0].action)
}

func TestHandleTranscribeMissingSource(t *testing.T) {
	h := NewHandlers(&stubRecorder{})

	res := httptest.NewRecorder()
	h.HandleTranscribe()(res, authedRequest(http.MethodPost, "/api/ai/transcribe", `{}`))

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestAIEndpointsRequirePrincipal(t *testing.T) {
	h := NewHandlers(&stubRecorder{})

	endpoints := map[string]http.HandlerFunc{
		"/api/ai/summarize":  h.HandleSummarize(),
		"/api/ai/quiz":       h.HandleQuiz(),
		"/api/ai/transcribe": h.HandleTranscribe(),
	}
	for target, handler := range endpoints {
		res := httptest.NewRecorder()
		handler(res, httptest.NewRequest(http.MethodPost, target, strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusUnauthorized, res.Code, target)
	}
}
