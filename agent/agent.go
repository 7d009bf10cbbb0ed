// Package agent implements the tool-orchestration loop for the
// shopping assistant.
//
// A chat turn screens the message, replays session history, then runs
// a bounded round trip with the model: the model either answers or
// requests tool calls, which are dispatched in order with their
// results fed back. Phone cards are collected from every tool call
// along the way and attached to the final answer.
//
// Information Hiding:
// - Loop mechanics and iteration bounds hidden behind Chat/ChatStream
// - Prompt assembly hidden
// - Card collection and comparison-table capture hidden
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/richinex/phonewise/catalog"
	"github.com/richinex/phonewise/llm"
	"github.com/richinex/phonewise/safety"
	"github.com/richinex/phonewise/session"
	"github.com/richinex/phonewise/tools"
)

const (
	fallbackResponse = "I found some information for you."
	errorResponse    = "I encountered an error. Please try again."

	// analysisHeading splits a comparison result into table and verdict.
	analysisHeading = "## Analysis"
	// tableMarker identifies a markdown table separator in tool output.
	tableMarker = "---"
)

// Agent runs chat turns against the model and the tool registry.
// Safe for concurrent use; per-session serialization lives in the store.
type Agent struct {
	client   *llm.Client
	registry *tools.Registry
	catalog  *catalog.Catalog
	store    session.Store
	gate     safety.Gate
	status   *StatusGenerator
	cfg      Config
	log      zerolog.Logger
}

// Builder provides fluent configuration for creating agents.
type Builder struct {
	client   *llm.Client
	registry *tools.Registry
	catalog  *catalog.Catalog
	store    session.Store
	gate     safety.Gate
	status   *StatusGenerator
	cfg      Config
	log      zerolog.Logger
}

// NewBuilder creates an agent builder with default configuration.
func NewBuilder(client *llm.Client) *Builder {
	return &Builder{
		client: client,
		cfg:    DefaultConfig(),
		log:    zerolog.Nop(),
	}
}

// Registry sets the tool registry.
func (b *Builder) Registry(r *tools.Registry) *Builder {
	b.registry = r
	return b
}

// Catalog sets the phone catalog used for card collection.
func (b *Builder) Catalog(c *catalog.Catalog) *Builder {
	b.catalog = c
	return b
}

// Store sets the session history store.
func (b *Builder) Store(s session.Store) *Builder {
	b.store = s
	return b
}

// Gate sets the safety gate.
func (b *Builder) Gate(g safety.Gate) *Builder {
	b.gate = g
	return b
}

// Config replaces the loop configuration.
func (b *Builder) Config(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// Logger sets the structured logger.
func (b *Builder) Logger(log zerolog.Logger) *Builder {
	b.log = log
	return b
}

// Build assembles the agent, filling in defaults for unset parts.
func (b *Builder) Build() (*Agent, error) {
	if b.client == nil {
		return nil, fmt.Errorf("agent requires an LLM client")
	}
	if b.catalog == nil {
		cat, err := catalog.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		b.catalog = cat
	}
	if b.registry == nil {
		reg, err := tools.NewPhoneRegistry(b.catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to build tool registry: %w", err)
		}
		b.registry = reg
	}
	if b.store == nil {
		b.store = session.NewMemoryStore(session.DefaultMaxMessages)
	}
	if b.gate == nil {
		b.gate = safety.NewKeywordGate()
	}
	if b.status == nil {
		b.status = NewStatusGenerator(b.client, b.log)
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agent config: %w", err)
	}

	return &Agent{
		client:   b.client,
		registry: b.registry,
		catalog:  b.catalog,
		store:    b.store,
		gate:     b.gate,
		status:   b.status,
		cfg:      b.cfg,
		log:      b.log.With().Str("component", "agent").Logger(),
	}, nil
}

// Registry exposes the agent's tool registry.
func (a *Agent) Registry() *tools.Registry {
	return a.registry
}

// Catalog exposes the agent's phone catalog.
func (a *Agent) Catalog() *catalog.Catalog {
	return a.catalog
}

// Chat processes one message and returns the final result.
func (a *Agent) Chat(ctx context.Context, sessionID, message string) Result {
	return a.run(ctx, sessionID, message, nil)
}

// ChatStream processes one message, emitting status events while the
// loop works and exactly one complete event at the end. The returned
// channel is closed after the complete event.
func (a *Agent) ChatStream(ctx context.Context, sessionID, message string) <-chan StreamEvent {
	events := make(chan StreamEvent)
	go func() {
		defer close(events)

		emit := func(e StreamEvent) {
			select {
			case events <- e:
			case <-ctx.Done():
			}
		}

		emit(StreamEvent{
			Type:    EventStatus,
			Message: a.status.Generate(ctx, message, StatusWorking),
		})

		result := a.run(ctx, sessionID, message, emit)
		emit(StreamEvent{Type: EventComplete, Result: &result})
	}()
	return events
}

// ClearSession deletes stored history for a session.
func (a *Agent) ClearSession(ctx context.Context, sessionID string) error {
	return a.store.Delete(ctx, sessionID)
}

// run is the shared loop behind Chat and ChatStream. When emit is nil
// no status events are produced.
func (a *Agent) run(ctx context.Context, sessionID, message string, emit func(StreamEvent)) (result Result) {
	log := a.log.With().Str("session_id", sessionID).Logger()
	log.Info().Str("message", truncateForLog(message)).Msg("processing message")

	// A panic escaping the turn degrades to the error result instead of
	// taking down the caller; nothing is written to history.
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered panic during chat turn")
			result = Result{Response: errorResponse, Phones: []catalog.Card{}, Type: TypeError}
		}
	}()

	if verdict := a.gate.Check(message); verdict.Flagged {
		log.Warn().Str("category", string(verdict.Category)).Msg("adversarial query detected")
		return Result{Response: verdict.Response, Phones: []catalog.Card{}, Type: TypeSafetyRedirect}
	}

	if explanation := safety.MatchExplanation(message); explanation != "" {
		log.Info().Msg("answering with tech explanation")
		if err := a.store.AppendExchange(ctx, sessionID, message, explanation); err != nil {
			log.Warn().Err(err).Msg("failed to store explanation exchange")
		}
		return Result{Response: explanation, Phones: []catalog.Card{}, Type: TypeExplanation}
	}

	history, err := a.store.Load(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load history, starting fresh")
		history = nil
	}

	messages := make([]llm.ChatMessage, 0, len(history)+2)
	messages = append(messages, llm.SystemMessage(a.cfg.SystemPrompt))
	messages = append(messages, history...)
	messages = append(messages, llm.UserMessage(message))

	opts := llm.CallOptions{
		Tools:     a.registry.Definitions(),
		MaxTokens: a.cfg.MaxTokens,
	}.WithTemperature(a.cfg.Temperature)

	var (
		collected []catalog.Card
		artifact  string
		final     string
		resp      llm.LLMResponse
	)

	for iteration := 0; iteration < a.cfg.MaxIterations; iteration++ {
		resp, err = a.client.Complete(ctx, messages, opts)
		if err != nil {
			log.Error().Err(err).Int("iteration", iteration).Msg("completion failed")
			return Result{Response: errorResponse, Phones: []catalog.Card{}, Type: TypeError}
		}

		if !resp.HasToolCalls() {
			final = orFallback(resp.Content)
			break
		}

		messages = append(messages, llm.AssistantToolCallMessage(resp.Content, resp.ToolCalls))

		for _, call := range resp.ToolCalls {
			args := tools.DecodeArgs(call.Arguments)
			log.Info().Str("tool", call.Name).Interface("args", args).Msg("tool call")

			if emit != nil {
				activity := fmt.Sprintf("Searching: %s with %v", call.Name, args)
				emit(StreamEvent{
					Type:    EventStatus,
					Message: a.status.Generate(ctx, activity, StatusSearching),
				})
			}

			output := a.registry.Dispatch(ctx, call.Name, args)

			collected = append(collected, tools.CardsFor(a.catalog, call.Name, args)...)
			if call.Name == "compare_phones" && strings.Contains(output, tableMarker) {
				artifact = output
			}

			messages = append(messages, llm.ToolResultMessage(call.ID, output))
		}

		if emit != nil {
			activity := fmt.Sprintf("Analyzing results (step %d)", iteration+1)
			emit(StreamEvent{
				Type:    EventStatus,
				Message: a.status.Generate(ctx, activity, StatusAnalyzing),
			})
		}
	}

	// Iteration cap reached mid-conversation: use whatever content the
	// last response carried.
	if final == "" {
		final = orFallback(resp.Content)
	}

	// The model was told to include comparison tables verbatim; when it
	// drops the table anyway, prepend just the table portion.
	if artifact != "" && !strings.Contains(final, tableMarker) {
		table := strings.TrimSpace(strings.SplitN(artifact, analysisHeading, 2)[0])
		final = table + "\n\n" + final
		log.Info().Msg("prepended comparison table to response")
	}

	if err := a.store.AppendExchange(ctx, sessionID, message, final); err != nil {
		log.Warn().Err(err).Msg("failed to store exchange")
	}

	cards := catalog.DedupCards(collected, a.cfg.MaxCards)
	responseType := TypeGeneral
	if len(cards) > 0 {
		responseType = TypeRecommendation
	}

	log.Info().
		Int("response_length", len(final)).
		Int("phones", len(cards)).
		Str("type", string(responseType)).
		Msg("response generated")

	return Result{Response: final, Phones: cards, Type: responseType}
}

func orFallback(content string) string {
	if content == "" {
		return fallbackResponse
	}
	return content
}

func truncateForLog(s string) string {
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}
