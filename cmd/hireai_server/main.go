// Package main provides the entry point for the HireAI outreach HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hireai_server",
	Short: "HireAI Outreach HTTP API Server",
	Long:  "HireAI Outreach searches candidate profiles semantically and sends bulk or AI-personalized recruiting emails via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
