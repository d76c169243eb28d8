package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"careassist/internal/assistant"
	"careassist/internal/handlers"
	"careassist/internal/handlers/api"
)

// RegisterRoutes registers all application routes. pinger may be nil when no
// database is configured.
func (s *Server) RegisterRoutes(a *assistant.Assistant, pinger handlers.Pinger) {
	// Initialize handlers
	chatHandler := handlers.NewChatHandler(a, s.Cfg)
	healthHandler := handlers.NewHealthHandler(pinger, a.Provider())
	apiChatHandler := api.NewChatHandler(a)

	// Widget routes
	s.App.Get("/", chatHandler.Index)
	s.App.Get("/suggest", chatHandler.Suggest)
	s.App.Post("/respond", chatHandler.Respond)
	s.App.Post("/ask", chatHandler.Ask)

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Post("/respond", apiChatHandler.Respond)
	v1.Get("/suggest", apiChatHandler.Suggest)
	v1.Get("/terms", apiChatHandler.Terms)

	// Operations
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
