package ai

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/shipekarrohit/backend-project/apperror"
	"github.com/shipekarrohit/backend-project/auth"
)

// Handlers serves the AI stub endpoints. They hold no service dependency:
// the placeholder responses are computed inline until the external AI
// integrations land.
type Handlers struct {
	audit    auth.ActionRecorder
	validate *validator.Validate
}

// NewHandlers creates new AI Handlers.
func NewHandlers(audit auth.ActionRecorder) *Handlers {
	return &Handlers{
		audit:    audit,
		validate: validator.New(),
	}
}

// HandleSummarize godoc
// @Summary Summarize text (placeholder)
// @Description Returns a placeholder summary pending external integration.
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param summarizeBody body ai.SummarizeRequest true "Text to summarize"
// @Success 200 {object} auth.Envelope "Text summarized"
// @Failure 400 {object} auth.Envelope "Text is required"
// @Failure 401 {object} auth.Envelope "Missing or invalid token"
// @Router /api/ai/summarize [post]
func (h *Handlers) HandleSummarize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authentication required.", nil))
			return
		}

		var req SummarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("Text is required for summarization.", nil))
			return
		}

		head := req.Text
		if len(head) > 100 {
			head = head[:100]
		}
		summary := fmt.Sprintf("This is a placeholder summary for: %s...", head)

		h.audit.Record(&principal.ID, "ai_summarize", "success")

		auth.WriteSuccess(w, http.StatusOK, "Text summarized successfully.", map[string]any{
			"originalLength": len(req.Text),
			"summary":        summary,
			"summaryLength":  len(summary),
		})
	}
}

// HandleQuiz godoc
// @Summary Generate a quiz (placeholder)
// @Description Returns canned quiz questions for a topic pending external integration.
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizBody body ai.QuizRequest true "Quiz topic"
// @Success 200 {object} auth.Envelope "Quiz generated"
// @Failure 400 {object} auth.Envelope "Topic is required"
// @Failure 401 {object} auth.Envelope "Missing or invalid token"
// @Router /api/ai/quiz [post]
func (h *Handlers) HandleQuiz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authentication required.", nil))
			return
		}

		var req QuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("Topic is required for quiz generation.", nil))
			return
		}

		questions := []QuizQuestion{
			{
				ID:            1,
				Question:      fmt.Sprintf("What is %s?", req.Topic),
				Options:       []string{"Option A", "Option B", "Option C", "Option D"},
				CorrectAnswer: 0,
			},
			{
				ID:            2,
				Question:      fmt.Sprintf("Why is %s important?", req.Topic),
				Options:       []string{"Option A", "Option B", "Option C", "Option D"},
				CorrectAnswer: 1,
			},
		}

		h.audit.Record(&principal.ID, "ai_quiz_generated", "success")

		auth.WriteSuccess(w, http.StatusOK, "Quiz generated successfully.", map[string]any{
			"topic":        req.Topic,
			"numQuestions": len(questions),
			"questions":    questions,
		})
	}
}

// HandleTranscribe godoc
// @Summary Transcribe audio (placeholder)
// @Description Returns a placeholder transcription pending external integration.
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transcribeBody body ai.TranscribeRequest true "Audio source"
// @Success 200 {object} auth.Envelope "Audio transcribed"
// @Failure 400 {object} auth.Envelope "Audio source is required"
// @Failure 401 {object} auth.Envelope "Missing or invalid token"
// @Router /api/ai/transcribe [post]
func (h *Handlers) HandleTranscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Authentication required.", nil))
			return
		}

		var req TranscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.AudioURL == "" && req.AudioFile == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("Audio URL or audio file is required for transcription.", nil))
			return
		}

		source := req.AudioURL
		if source == "" {
			source = "File upload"
		}
		transcription := fmt.Sprintf("This is a placeholder transcription. Audio source: %s", source)

		h.audit.Record(&principal.ID, "ai_transcribe", "success")

		auth.WriteSuccess(w, http.StatusOK, "Audio transcribed successfully.", map[string]any{
			"transcription": transcription,
			"source":        source,
		})
	}
}
