package api

import (
	"github.com/gofiber/fiber/v3"

	"careassist/internal/assistant"
	"careassist/internal/models"
	"careassist/internal/validation"
)

// ChatHandler exposes the assistant via JSON API.
type ChatHandler struct {
	assistant *assistant.Assistant
}

// NewChatHandler creates a new API chat handler.
func NewChatHandler(a *assistant.Assistant) *ChatHandler {
	return &ChatHandler{assistant: a}
}

// Respond answers one input.
func (h *ChatHandler) Respond(c fiber.Ctx) error {
	var req models.RespondRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	input := validation.NormalizeInput(req.Input)
	if valid, msg := validation.ValidateInput(input); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	reply := h.assistant.Answer(c.Context(), input)
	return jsonSuccess(c, models.RespondResponse{
		Input:     input,
		Source:    reply.Source,
		Terms:     reply.Terms,
		Responses: reply.Responses,
	})
}

// Suggest returns autocomplete suggestions. An empty prefix returns every term.
func (h *ChatHandler) Suggest(c fiber.Ctx) error {
	prefix := validation.NormalizeInput(c.Query("q", ""))
	if valid, msg := validation.ValidatePrefix(prefix); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	return jsonSuccess(c, models.SuggestResponse{
		Prefix:      prefix,
		Suggestions: h.assistant.Suggest(prefix),
	})
}

// Terms lists both rule sets' terms.
func (h *ChatHandler) Terms(c fiber.Ctx) error {
	healthcare, general := h.assistant.Terms()
	return jsonSuccess(c, models.TermsResponse{
		Healthcare: healthcare,
		General:    general,
	})
}
