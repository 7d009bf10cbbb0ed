package agent

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/richinex/phonewise/llm"
)

// Default status lines used when generation fails or times out.
const (
	StatusWorking   = "Working on it..."
	StatusSearching = "Searching..."
	StatusAnalyzing = "Analyzing..."
)

const (
	statusPrompt      = "Generate a short (5-10 words) friendly status message for a phone shopping assistant. End with '...'"
	statusTemperature = 0.9
	statusTimeout     = 5 * time.Second
	statusWorkers     = 4
)

// StatusGenerator produces short progress lines for streaming chats.
// Generation runs through a bounded worker pool so concurrent streams
// cannot flood the backend; a saturated pool or a failed call degrades
// to the caller's fallback line. Safe for concurrent use.
type StatusGenerator struct {
	client *llm.Client
	pool   *pool.Pool
	log    zerolog.Logger
}

// NewStatusGenerator creates a generator backed by the given client.
func NewStatusGenerator(client *llm.Client, log zerolog.Logger) *StatusGenerator {
	return &StatusGenerator{
		client: client,
		pool:   pool.New().WithMaxGoroutines(statusWorkers),
		log:    log.With().Str("component", "status").Logger(),
	}
}

// Generate asks the model for a status line describing activity.
// Never returns an error: any failure yields fallback.
func (g *StatusGenerator) Generate(ctx context.Context, activity, fallback string) string {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	done := make(chan string, 1)
	g.pool.Go(func() {
		text, err := g.client.Text(ctx, []llm.ChatMessage{
			llm.SystemMessage(statusPrompt),
			llm.UserMessage(activity),
		}, statusTemperature)
		if err != nil {
			g.log.Debug().Err(err).Msg("status generation failed")
			done <- ""
			return
		}
		done <- strings.Trim(strings.TrimSpace(text), `"`)
	})

	select {
	case text := <-done:
		if text == "" {
			return fallback
		}
		return text
	case <-ctx.Done():
		return fallback
	}
}

// Close drains the worker pool. The generator is unusable afterwards.
func (g *StatusGenerator) Close() {
	g.pool.Wait()
}
