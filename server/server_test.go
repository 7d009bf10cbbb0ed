package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/richinex/phonewise/agent"
	"github.com/richinex/phonewise/llm"
)

// cannedProvider answers every tool-enabled call with the same content
// and never requests tools.
type cannedProvider struct {
	content string
}

func (p *cannedProvider) Name() string  { return "canned" }
func (p *cannedProvider) Model() string { return "canned-model" }

func (p *cannedProvider) Complete(ctx context.Context, messages []llm.ChatMessage, opts llm.CallOptions) (llm.LLMResponse, error) {
	return llm.LLMResponse{Content: p.content}, nil
}

func testServer(t *testing.T) *Server {
	t.Helper()
	a, err := agent.NewBuilder(llm.NewClient(&cannedProvider{content: "Happy to help."})).Build()
	if err != nil {
		t.Fatalf("agent build: %v", err)
	}
	return NewServer(":0", a, zerolog.Nop())
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	handler := testServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["phones"].(float64) == 0 {
		t.Error("health should report catalog size")
	}
}

func TestChatEndpoint(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/chat", ChatRequest{Message: "hello"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Response != "Happy to help." {
		t.Errorf("response = %q", resp.Response)
	}
	if resp.SessionID == "" {
		t.Error("server should mint a session id when none given")
	}
	if resp.Phones == nil {
		t.Error("phones must serialize as an array, not null")
	}
}

func TestChatEndpointKeepsSessionID(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/chat", ChatRequest{Message: "hi", SessionID: "my-session"})
	var resp ChatResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.SessionID != "my-session" {
		t.Errorf("session id = %q, want my-session", resp.SessionID)
	}
}

func TestChatEndpointValidation(t *testing.T) {
	handler := testServer(t).Handler()

	if rec := postJSON(t, handler, "/api/chat", ChatRequest{Message: "  "}); rec.Code != http.StatusBadRequest {
		t.Errorf("blank message: status = %d, want 400", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", rec.Code)
	}
}

func TestChatStreamEndpoint(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/chat/stream", ChatRequest{Message: "hi", SessionID: "s1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q, want text/event-stream", ct)
	}

	var payloads []streamPayload
	scanner := bufio.NewScanner(rec.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var p streamPayload
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &p); err != nil {
			t.Fatalf("bad SSE payload %q: %v", line, err)
		}
		payloads = append(payloads, p)
	}

	if len(payloads) < 2 {
		t.Fatalf("got %d events, want at least status + complete", len(payloads))
	}
	for _, p := range payloads[:len(payloads)-1] {
		if p.Type != "status" {
			t.Errorf("interim event type = %q, want status", p.Type)
		}
		if p.SessionID != "s1" {
			t.Errorf("event session id = %q", p.SessionID)
		}
	}
	last := payloads[len(payloads)-1]
	if last.Type != "complete" {
		t.Fatalf("last event type = %q, want complete", last.Type)
	}
	if last.Response != "Happy to help." {
		t.Errorf("complete response = %q", last.Response)
	}
}

func TestClearEndpoint(t *testing.T) {
	handler := testServer(t).Handler()

	postJSON(t, handler, "/api/chat", ChatRequest{Message: "hi", SessionID: "s1"})

	rec := postJSON(t, handler, "/api/clear", ClearRequest{SessionID: "s1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if rec := postJSON(t, handler, "/api/clear", ClearRequest{}); rec.Code != http.StatusBadRequest {
		t.Errorf("missing session_id: status = %d, want 400", rec.Code)
	}
}

func TestPhoneListEndpoint(t *testing.T) {
	handler := testServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/phones", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Phones []json.RawMessage `json:"phones"`
		Brands []string          `json:"brands"`
		Count  int               `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Count == 0 || len(body.Phones) != body.Count {
		t.Errorf("count = %d with %d phones", body.Count, len(body.Phones))
	}
	if len(body.Brands) == 0 {
		t.Error("brands missing")
	}
}

func TestPhoneGetEndpoint(t *testing.T) {
	handler := testServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/phones/pixel-8a", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Google Pixel 8a") {
		t.Error("response missing phone record")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/phones/flipphone-9000", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown phone: status = %d, want 404", rec.Code)
	}
}

func TestCompareEndpoint(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/compare", CompareRequest{
		PhoneNames: []string{"Pixel 8a", "OnePlus 12R"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Table  string            `json:"table"`
		Phones []json.RawMessage `json:"phones"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(body.Table, "---") {
		t.Error("comparison table missing separator row")
	}
	if len(body.Phones) != 2 {
		t.Errorf("got %d phones, want 2", len(body.Phones))
	}

	if rec := postJSON(t, handler, "/api/compare", CompareRequest{PhoneNames: []string{"Pixel 8a"}}); rec.Code != http.StatusBadRequest {
		t.Errorf("single phone: status = %d, want 400", rec.Code)
	}
	if rec := postJSON(t, handler, "/api/compare", CompareRequest{
		PhoneNames: []string{"Flipphone", "Brickphone"},
	}); rec.Code != http.StatusNotFound {
		t.Errorf("unresolvable phones: status = %d, want 404", rec.Code)
	}
}
