package dto

type ChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AnalyzeRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

type AnalyzeResponse struct {
	Summary    string             `json:"summary"`
	Categories map[string]float64 `json:"categories"`
}
