package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/swapnilsaysloud/hireai-outreach/internal/config"
	"github.com/swapnilsaysloud/hireai-outreach/internal/email"
	"github.com/swapnilsaysloud/hireai-outreach/internal/llm"
	"github.com/swapnilsaysloud/hireai-outreach/internal/outreach"
	"github.com/swapnilsaysloud/hireai-outreach/internal/search"
	"github.com/swapnilsaysloud/hireai-outreach/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the candidate search and outreach endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	deps := server.Deps{
		Search: search.NewClient(cfg.SemanticSearchURL, nil),
	}

	// Collaborators with absent credentials stay nil; their endpoints report
	// configuration errors per request instead of blocking startup.
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, "")
		if err != nil {
			return err
		}
		defer client.Close()
		deps.Generator = llm.NewTemplateGenerator(client)
	} else {
		log.Printf("Warning: %s not set; email generation disabled", config.EnvGeminiAPIKey)
	}

	if cfg.ResendAPIKey != "" {
		sender, err := email.NewResendSender(cfg.ResendAPIKey)
		if err != nil {
			return err
		}
		deps.Dispatcher = outreach.New(sender, cfg.FromAddress)
	} else {
		log.Printf("Warning: %s not set; outreach sending disabled", config.EnvResendAPIKey)
	}

	srv := server.New(server.Config{Port: servePort}, deps)
	return srv.Start()
}
