package dto

import (
	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
)

type ChatResponse struct {
	Type    string      `json:"type"`
	Content ChatContent `json:"content"`
}

type ChatContent struct {
	Title        string   `json:"title,omitempty"`
	Message      string   `json:"message"`
	Options      []string `json:"options,omitempty"`
	Details      []string `json:"details,omitempty"`
	Question     string   `json:"question,omitempty"`
	QRCode       string   `json:"qr_code,omitempty"`
	InputType    string   `json:"input_type,omitempty"`
	InputMessage string   `json:"input_message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToChatResponse(r domain.Response) ChatResponse {
	return ChatResponse{
		Type: string(r.Type),
		Content: ChatContent{
			Title:        r.Content.Title,
			Message:      r.Content.Message,
			Options:      r.Content.Options,
			Details:      r.Content.Details,
			Question:     r.Content.Question,
			QRCode:       r.Content.QRCode,
			InputType:    r.Content.InputType,
			InputMessage: r.Content.InputMessage,
		},
	}
}
