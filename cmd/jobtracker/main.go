// Package main provides the entry point for the job tracker HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobtracker",
	Short: "Job application tracker HTTP API server",
	Long:  "Job tracker stores job applications and extracts structured job details from pasted text, posting URLs, and uploaded files via the Gemini API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
