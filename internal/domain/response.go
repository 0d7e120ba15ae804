package domain

// ResponseType selects how the UI renders a chat turn.
type ResponseType string

const (
	ResponseText         ResponseType = "text"
	ResponseOptions      ResponseType = "options"
	ResponseInfo         ResponseType = "info"
	ResponsePayment      ResponseType = "payment"
	ResponseConfirmation ResponseType = "confirmation"
)

// ResponseContent carries the fields of all response types; unused fields are
// omitted from the JSON payload.
type ResponseContent struct {
	Title        string   `json:"title,omitempty"`
	Message      string   `json:"message"`
	Options      []string `json:"options,omitempty"`
	Details      []string `json:"details,omitempty"`
	Question     string   `json:"question,omitempty"`
	QRCode       string   `json:"qr_code,omitempty"`
	InputType    string   `json:"input_type,omitempty"`
	InputMessage string   `json:"input_message,omitempty"`
}

// Response is the single structured reply produced by every chat turn.
type Response struct {
	Type    ResponseType    `json:"type"`
	Content ResponseContent `json:"content"`
}
