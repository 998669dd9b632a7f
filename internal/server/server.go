package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"portfolio-chat-backend/internal/config"
	"portfolio-chat-backend/internal/llm"
	"portfolio-chat-backend/internal/middleware"
	"portfolio-chat-backend/internal/persona"
	"portfolio-chat-backend/internal/types"
)

const serviceName = "portfolio-chat-backend"

// fallbackMessage is returned verbatim whenever the completion API is
// unavailable or fails. It is never an error to the caller.
const fallbackMessage = "Thanks for your message! The AI assistant is temporarily unavailable, but feel free to browse the portfolio or reach out through the contact form."

const validationMessage = "Message is required and must be a non-empty string"

var availableRoutes = []string{"/health", "/api/chat"}

// Completer is the single upstream call the chat handler depends on.
// *llm.Client satisfies it; tests substitute stubs.
type Completer interface {
	Complete(ctx context.Context, system string, msgs []types.Message) (string, error)
}

type Server struct {
	router  *chi.Mux
	cfg     config.Config
	llm     Completer // nil when no API key is configured
	persona persona.Persona
	logger  zerolog.Logger
}

func NewServer(cfg config.Config, p persona.Persona, completer Completer, logger zerolog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(logger, cfg.IsDevelopment()))
	r.Use(middleware.AccessLog(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{
		router:  r,
		cfg:     cfg,
		llm:     completer,
		persona: p,
		logger:  logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/api/chat", s.handleChat)
	s.router.NotFound(s.handleNotFound)
	s.router.MethodNotAllowed(s.handleNotFound)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:    "OK",
		Service:   serviceName,
		Timestamp: timestamp(),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		body := types.ErrorResponse{Success: false, Error: "Failed to process chat message. Please try again."}
		if s.cfg.IsDevelopment() {
			body.Details = err.Error()
		}
		s.writeJSON(w, http.StatusInternalServerError, body)
		return
	}
	msg, ok := req.MessageString()
	msg = strings.TrimSpace(msg)
	if !ok || msg == "" {
		s.writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Success: false, Error: validationMessage})
		return
	}

	if s.llm == nil {
		s.logger.Info().Str("rid", middleware.RequestIDFrom(r.Context())).Msg("no API key configured, using fallback response")
		s.respondFallback(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.UpstreamTimeout)
	defer cancel()

	reply, err := s.llm.Complete(ctx, s.persona.SystemPrompt(), buildMessages(req.ConversationHistory, msg))
	if err != nil {
		s.logger.Warn().
			Str("rid", middleware.RequestIDFrom(r.Context())).
			Str("failure", string(llm.Classify(err))).
			Err(err).
			Msg("completion failed, using fallback response")
		s.respondFallback(w)
		return
	}

	s.writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:   true,
		Response:  reply,
		Timestamp: timestamp(),
		Source:    "openai",
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, types.NotFoundResponse{
		Success:         false,
		Error:           "Route not found",
		AvailableRoutes: availableRoutes,
	})
}

func (s *Server) respondFallback(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:   true,
		Response:  fallbackMessage,
		Timestamp: timestamp(),
		Source:    "fallback",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// buildMessages maps prior turns to roles and appends the new user
// message last. The system instruction is prepended by the LLM client.
func buildMessages(history []types.HistoryTurn, message string) []types.Message {
	out := make([]types.Message, 0, len(history)+1)
	for _, t := range history {
		out = append(out, types.Message{Role: types.RoleFromTurnType(t.Type), Content: t.Text})
	}
	out = append(out, types.Message{Role: types.RoleUser, Content: message})
	return out
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
