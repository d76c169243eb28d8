package handlers

import (
	"github.com/gofiber/fiber/v3"

	"careassist/internal/assistant"
	"careassist/internal/config"
	"careassist/internal/validation"
)

// ChatHandler serves the assistant widget and its HTMX partials.
type ChatHandler struct {
	assistant *assistant.Assistant
	cfg       *config.Config
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(a *assistant.Assistant, cfg *config.Config) *ChatHandler {
	return &ChatHandler{assistant: a, cfg: cfg}
}

// Index renders the widget page.
func (h *ChatHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title":          "Assistant",
		"MaxInputLength": validation.MaxInputLength,
	}, h.cfg))
}

// Suggest returns autocomplete suggestions for HTMX.
// Nothing is shown until the user has typed something.
func (h *ChatHandler) Suggest(c fiber.Ctx) error {
	prefix := validation.NormalizeInput(c.Query("q", ""))
	if prefix == "" {
		return c.SendString("")
	}
	if valid, msg := validation.ValidatePrefix(prefix); !valid {
		return htmxError(c, msg)
	}

	return c.Render("partials/autocomplete", fiber.Map{
		"Suggestions": h.assistant.Suggest(prefix),
	}, "")
}

// Respond renders every response for the current input.
func (h *ChatHandler) Respond(c fiber.Ctx) error {
	input := validation.NormalizeInput(c.FormValue("q"))
	if input == "" {
		return c.SendString("")
	}
	if valid, msg := validation.ValidateInput(input); !valid {
		return htmxError(c, msg)
	}

	reply := h.assistant.Answer(c.Context(), input)
	return c.Render("partials/responses", fiber.Map{
		"Responses": reply.Responses,
		"Source":    reply.Source,
	}, "")
}

// Ask handles form submission and renders the assistant's first response.
func (h *ChatHandler) Ask(c fiber.Ctx) error {
	input := validation.NormalizeInput(c.FormValue("q"))
	if valid, msg := validation.ValidateInput(input); !valid {
		return htmxError(c, msg)
	}

	reply := h.assistant.Answer(c.Context(), input)
	return c.Render("partials/answer", MergeBranding(fiber.Map{
		"Input":  input,
		"Answer": reply.Responses[0],
	}, h.cfg), "")
}
