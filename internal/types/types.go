package types

import "encoding/json"

// Role is the closed set of speaker roles sent to the completion API.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// RoleFromTurnType maps a history turn's "type" field to a role. Only
// the exact value "user" maps to the user role; every other value,
// including unrecognized ones, is treated as assistant-authored.
func RoleFromTurnType(t string) Role {
	if t == "user" {
		return RoleUser
	}
	return RoleAssistant
}

// Message is a provider-agnostic chat message handed to the LLM layer.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type HistoryTurn struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ChatRequest is the wire form of a chat call. Message is kept raw so
// a present-but-non-string value can be rejected as a validation error
// instead of failing the whole body decode.
type ChatRequest struct {
	Message             json.RawMessage `json:"message"`
	ConversationHistory []HistoryTurn   `json:"conversationHistory"`
}

// MessageString extracts the message field. ok is false when the field
// is absent, null, or not a JSON string.
func (r ChatRequest) MessageString() (string, bool) {
	if len(r.Message) == 0 || string(r.Message) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(r.Message, &s); err != nil {
		return "", false
	}
	return s, true
}

type ChatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response,omitempty"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ErrorResponse is the envelope for 400/500 replies. Details is only
// populated in development mode.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type NotFoundResponse struct {
	Success         bool     `json:"success"`
	Error           string   `json:"error"`
	AvailableRoutes []string `json:"availableRoutes"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
