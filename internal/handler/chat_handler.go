package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"kaapi/backend/internal/logger"
	"kaapi/backend/internal/service"
	"kaapi/backend/internal/service/ai"
)

type ChatHandler struct {
	service service.ChatService
}

type chatRequest struct {
	Messages []ai.Message `json:"messages"`
}

type chatChunk struct {
	Text string `json:"text"`
}

func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Chat)
}

// Chat streams the assistant reply as server-sent events. Each chunk is
// a "data:" line carrying {"text": ...}; the stream ends with
// "data: [DONE]".
func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}

	textCh, errCh, err := h.service.Stream(c.Request().Context(), req.Messages)
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	for text := range textCh {
		payload, err := json.Marshal(chatChunk{Text: text})
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
			return nil
		}
		resp.Flush()
	}

	// The status line is already on the wire; a mid-stream failure can
	// only be logged and the stream terminated.
	if err, ok := <-errCh; ok && err != nil {
		logger.Error("chat stream failed", "error", err)
	}

	_, _ = fmt.Fprint(resp, "data: [DONE]\n\n")
	resp.Flush()
	return nil
}
