package api

type ErrorResponse struct {
	Error OutgoingError `json:"error"`
}

type OutgoingError struct {
	Code    int    `json:"code" example:"422"`
	Kind    string `json:"kind" example:"EMPTY_CONTENT"`
	Message string `json:"message" example:"The uploaded document has no readable text."`
	Retry   bool   `json:"can_retry" example:"false"`
}

type SummaryResponse struct {
	Summary       string   `json:"summary" example:"- Photosynthesis converts light into energy."`
	Documents     []string `json:"documents" example:"biology.pdf"`
	OriginalChars int      `json:"original_chars" example:"5230"`
	SummaryChars  int      `json:"summary_chars" example:"812"`
}

type ChatResponse struct {
	Question string `json:"question" example:"What does photosynthesis do?"`
	Answer   string `json:"answer" example:"It converts light into chemical energy."`
}

type QuizQuestion struct {
	Question      string   `json:"question" example:"What does photosynthesis convert light into?"`
	Options       []string `json:"options" example:"Energy,Sound,Rock,Salt"`
	CorrectAnswer int      `json:"correct_answer" example:"0"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
}

type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	NoteStore string `json:"note_store" example:"redis"`
	Provider  string `json:"provider" example:"gemini"`
}

// requests---------------------

type ChatRequest struct {
	Question string `json:"question" validate:"required" example:"What does photosynthesis do?"`
}
