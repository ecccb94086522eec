// Package ai serves the placeholder AI endpoints. The response bodies are
// stubs shaped for future integration with external summarization, quiz
// generation and transcription services; only the request contracts and the
// audit tags are load-bearing today.
package ai

// SummarizeRequest is the payload for text summarization.
type SummarizeRequest struct {
	Text string `json:"text" validate:"required" example:"Artificial Intelligence makes learning personalized and adaptive."`
}

// QuizRequest is the payload for quiz generation.
type QuizRequest struct {
	Topic        string `json:"topic" validate:"required" example:"photosynthesis"`
	NumQuestions int    `json:"numQuestions,omitempty" validate:"omitempty,min=1" example:"5"`
}

// TranscribeRequest is the payload for audio transcription. One of the two
// sources must be present.
type TranscribeRequest struct {
	AudioURL  string `json:"audioUrl,omitempty" example:"https://example.com/lecture.mp3"`
	AudioFile string `json:"audioFile,omitempty"`
}

// QuizQuestion is one generated question in the stub quiz.
type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}
