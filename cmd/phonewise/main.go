// Package main provides the phonewise CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/richinex/phonewise/cli"
)

var (
	// Global flags
	provider string
	model    string
	verbose  bool
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "phonewise",
		Short: "LLM-powered phone shopping assistant",
		Long: `An agentic phone shopping assistant backed by a local phone catalog.

The assistant answers questions about phones, compares models side by
side, and recommends options for budgets and use cases (camera, battery,
gaming, compact). It runs against Ollama by default and also supports
OpenAI, Anthropic, DeepSeek, and Gemini backends.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&provider, "provider", "p", "", "LLM provider (ollama, openai, anthropic, deepseek, gemini)")
	rootCmd.PersistentFlags().StringVarP(&model, "model", "m", "", "Model override for the selected provider")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(toolsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func options() cli.Options {
	return cli.Options{
		Provider: provider,
		Model:    model,
		Verbose:  verbose,
	}
}

func serveCmd() *cobra.Command {
	var addr string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the shopping assistant as an HTTP API.

Endpoints:
  POST /api/chat          one-shot chat turn
  POST /api/chat/stream   chat turn with SSE status updates
  POST /api/clear         reset a session
  GET  /api/phones        full catalog
  GET  /api/phones/{id}   single phone record
  POST /api/compare       direct comparison table
  GET  /health            liveness check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Serve(context.Background(), addr, dbPath, options())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default :8000)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite path for session persistence (default in-memory)")

	return cmd
}

func chatCmd() *cobra.Command {
	var sessionID string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive shopping session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Chat(context.Background(), sessionID, dbPath, options())
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID for conversation persistence")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite path for session persistence (default in-memory)")

	return cmd
}

func askCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Ask(context.Background(), args[0], sessionID, options())
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID to continue a previous conversation")

	return cmd
}

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools exposed to the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Tools()
		},
	}
}
