package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/richinex/phonewise/agent"
	"github.com/richinex/phonewise/catalog"
)

// ChatRequest is the payload for /api/chat and /api/chat/stream.
// A missing session id gets a fresh one, returned in the response.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse wraps an agent result with its session id.
type ChatResponse struct {
	SessionID string         `json:"session_id"`
	Response  string         `json:"response"`
	Phones    []catalog.Card `json:"phones"`
	Type      string         `json:"type"`
}

func (s *Server) decodeChatRequest(w http.ResponseWriter, r *http.Request) (ChatRequest, bool) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	if strings.TrimSpace(req.Message) == "" {
		s.errorResponse(w, http.StatusBadRequest, "message is required")
		return req, false
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	return req, true
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeChatRequest(w, r)
	if !ok {
		return
	}

	result := s.agent.Chat(r.Context(), req.SessionID, req.Message)
	s.writeJSON(w, http.StatusOK, ChatResponse{
		SessionID: req.SessionID,
		Response:  result.Response,
		Phones:    result.Phones,
		Type:      string(result.Type),
	})
}

func (s *Server) handleChatStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeChatRequest(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.errorResponse(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	for event := range s.agent.ChatStream(r.Context(), req.SessionID, req.Message) {
		s.writeSSE(w, req.SessionID, event)
		flusher.Flush()
	}
}

// streamPayload is the wire form of one SSE event.
type streamPayload struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Message   string         `json:"message,omitempty"`
	Response  string         `json:"response,omitempty"`
	Phones    []catalog.Card `json:"phones,omitempty"`
	Kind      string         `json:"response_type,omitempty"`
}

func (s *Server) writeSSE(w http.ResponseWriter, sessionID string, event agent.StreamEvent) {
	payload := streamPayload{
		Type:      string(event.Type),
		SessionID: sessionID,
		Message:   event.Message,
	}
	if event.Result != nil {
		payload.Response = event.Result.Response
		payload.Phones = event.Result.Phones
		payload.Kind = string(event.Result.Type)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Debug().Err(err).Msg("failed to marshal SSE payload")
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}

// ClearRequest identifies the session to wipe.
type ClearRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req ClearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SessionID == "" {
		s.errorResponse(w, http.StatusBadRequest, "session_id is required")
		return
	}

	if err := s.agent.ClearSession(r.Context(), req.SessionID); err != nil {
		s.logger.Error().Err(err).Str("session_id", req.SessionID).Msg("failed to clear session")
		s.errorResponse(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "cleared", "session_id": req.SessionID})
}

func (s *Server) handlePhoneList(w http.ResponseWriter, r *http.Request) {
	cat := s.agent.Catalog()
	phones := cat.All()
	cards := make([]catalog.Card, 0, len(phones))
	for _, p := range phones {
		cards = append(cards, catalog.CardFor(p))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"phones": cards,
		"brands": cat.Brands(),
		"count":  len(cards),
	})
}

func (s *Server) handlePhoneGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	phone, ok := s.agent.Catalog().ByID(id)
	if !ok {
		phone, ok = s.agent.Catalog().ByName(id)
	}
	if !ok {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("phone %q not found", id))
		return
	}
	s.writeJSON(w, http.StatusOK, phone)
}

// CompareRequest names the phones to compare directly, bypassing the model.
type CompareRequest struct {
	PhoneNames []string `json:"phone_names"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.PhoneNames) < 2 || len(req.PhoneNames) > 4 {
		s.errorResponse(w, http.StatusBadRequest, "provide between 2 and 4 phone names")
		return
	}

	phones := s.agent.Catalog().Resolve(req.PhoneNames)
	if len(phones) < 2 {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("could only resolve %d phone(s)", len(phones)))
		return
	}

	cards := make([]catalog.Card, 0, len(phones))
	for _, p := range phones {
		cards = append(cards, catalog.CardFor(p))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"table":  catalog.FormatComparisonTable(phones),
		"phones": cards,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"phones": s.agent.Catalog().Len(),
	})
}
