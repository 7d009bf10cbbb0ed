// Command execution for CLI commands.
//
// Information Hiding:
// - Provider/agent/server setup hidden
// - Output formatting hidden

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/richinex/phonewise/agent"
	"github.com/richinex/phonewise/catalog"
	"github.com/richinex/phonewise/config"
	"github.com/richinex/phonewise/llm"
	"github.com/richinex/phonewise/server"
	"github.com/richinex/phonewise/session"
	"github.com/richinex/phonewise/tools"
)

// Options holds CLI execution options.
type Options struct {
	Provider string
	Model    string
	Verbose  bool
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func createProvider(settings config.Settings, model string) (llm.Provider, error) {
	providerType, err := llm.ParseProviderType(settings.LLM.Provider)
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = settings.LLM.Model
	}
	return llm.NewProviderBuilder(providerType).
		Model(model).
		MaxTokens(uint32(settings.LLM.MaxTokens)).
		Temperature(settings.LLM.Temperature).
		FromEnv()
}

func buildAgent(opts Options, sqlitePath string, log zerolog.Logger) (*agent.Agent, config.Settings, error) {
	settings, err := config.New(opts.Provider)
	if err != nil {
		return nil, settings, err
	}
	if sqlitePath == "" {
		sqlitePath = settings.Session.SqlitePath
	}

	provider, err := createProvider(settings, opts.Model)
	if err != nil {
		return nil, settings, err
	}

	var store session.Store
	if sqlitePath != "" {
		sqlite, err := session.OpenSqlite(sqlitePath, settings.Session.MaxMessages)
		if err != nil {
			return nil, settings, fmt.Errorf("failed to open session database: %w", err)
		}
		store = sqlite
	} else {
		store = session.NewMemoryStore(settings.Session.MaxMessages)
	}

	cfg := agent.DefaultConfig()
	cfg.MaxIterations = settings.Agent.MaxIterations
	cfg.MaxCards = settings.Agent.MaxCards
	cfg.Temperature = settings.LLM.Temperature
	cfg.MaxTokens = settings.LLM.MaxTokens

	a, err := agent.NewBuilder(llm.NewClient(provider)).
		Store(store).
		Config(cfg).
		Logger(log).
		Build()
	if err != nil {
		return nil, settings, err
	}
	return a, settings, nil
}

// Serve runs the HTTP API until interrupted.
func Serve(ctx context.Context, addr, sqlitePath string, opts Options) error {
	log := newLogger(opts.Verbose)

	a, settings, err := buildAgent(opts, sqlitePath, log)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = settings.Server.Addr
	}

	srv := server.NewServer(addr, a, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Chat starts an interactive shopping session on stdin/stdout.
func Chat(ctx context.Context, sessionID, sqlitePath string, opts Options) error {
	log := newLogger(opts.Verbose)

	a, _, err := buildAgent(opts, sqlitePath, log)
	if err != nil {
		return err
	}
	if sessionID == "" {
		sessionID = "cli"
	}

	fmt.Println("Phone shopping assistant. Type 'exit' to quit, '/clear' to reset the session.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}
		if input == "/clear" {
			if err := a.ClearSession(ctx, sessionID); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Println("Session cleared.")
			continue
		}

		result := a.Chat(ctx, sessionID, input)
		fmt.Printf("\n%s\n\n", result.Response)
		printCards(result.Phones)
	}
	return scanner.Err()
}

// Ask answers a single question and exits.
func Ask(ctx context.Context, question, sessionID string, opts Options) error {
	log := newLogger(opts.Verbose)

	a, _, err := buildAgent(opts, "", log)
	if err != nil {
		return err
	}
	if sessionID == "" {
		sessionID = "ask"
	}

	result := a.Chat(ctx, sessionID, question)
	fmt.Println(result.Response)
	printCards(result.Phones)

	if result.Type == agent.TypeError {
		return fmt.Errorf("request failed")
	}
	return nil
}

// Tools prints the registered tool surface.
func Tools() error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	reg, err := tools.NewPhoneRegistry(cat)
	if err != nil {
		return err
	}
	fmt.Printf("Available tools (%d):\n\n", len(reg.Names()))
	for _, def := range reg.Definitions() {
		fmt.Printf("  %s\n    %s\n\n", def.Name, def.Description)
	}
	return nil
}

func printCards(cards []catalog.Card) {
	if len(cards) == 0 {
		return
	}
	fmt.Println("Matching phones:")
	for _, c := range cards {
		fmt.Printf("  - %s (%s, %s, rated %.1f)\n",
			c.Name, catalog.FormatPrice(c.Price), c.Battery, c.Rating)
	}
	fmt.Println()
}
