package handler

import (
	"context"
	"net/http"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type DialogSvc interface {
	Respond(ctx context.Context, sess *domain.Session, input string) domain.Response
}

type SessionStore interface {
	GetOrCreate(id string) *domain.Session
}

type Handler struct {
	dialog   DialogSvc
	sessions SessionStore
}

func NewHandler(dialog DialogSvc, sessions SessionStore) *Handler {
	return &Handler{
		dialog:   dialog,
		sessions: sessions,
	}
}

// Chat processes one conversation turn for the session named in the request.
func (h *Handler) Chat(c *ginext.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess := h.sessions.GetOrCreate(req.SessionID)

	// One turn per session at a time; turns for distinct sessions proceed
	// independently.
	sess.Lock()
	defer sess.Unlock()

	resp := h.dialog.Respond(c.Request.Context(), sess, req.Message)

	c.JSON(http.StatusOK, dto.ToChatResponse(resp))
}
