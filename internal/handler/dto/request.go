package dto

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id" binding:"required"`
}
