package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/trackmycareer/careertrack/internal/analysis"
	"github.com/trackmycareer/careertrack/internal/config"
	"github.com/trackmycareer/careertrack/internal/llm"
	"github.com/trackmycareer/careertrack/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis HTTP server",
	Long: `Start the HTTP server exposing POST /analyze.

When BACKEND_URL is set the server relays uploads to that external
analysis backend; otherwise the built-in engine answers directly.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	analyzer, cleanup, err := buildAnalyzer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return server.New(cfg, analyzer).Start()
}

// buildAnalyzer wires the catalog, the optional Gemini plan client and
// the analyzer. The returned cleanup closes the LLM client.
func buildAnalyzer(ctx context.Context, cfg *config.Config) (*analysis.Analyzer, func(), error) {
	catalog := analysis.DefaultCatalog()

	var client llm.Client
	cleanup := func() {}
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		client = gemini
		cleanup = func() {
			if err := gemini.Close(); err != nil {
				log.Printf("failed to close Gemini client: %v", err)
			}
		}
	}

	plans := analysis.NewPlanGenerator(catalog, client)
	return analysis.NewAnalyzer(catalog, plans), cleanup, nil
}
