package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jordan/job-tracker/internal/config"
	"github.com/jordan/job-tracker/internal/db"
	"github.com/jordan/job-tracker/internal/extract"
	"github.com/jordan/job-tracker/internal/fetch"
	"github.com/jordan/job-tracker/internal/llm"
	"github.com/jordan/job-tracker/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the job CRUD and extraction endpoints.`,
	RunE:  runServe,
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
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Missing credentials leave the corresponding client nil; the affected
	// endpoints report the missing credential per-request.
	var llmClient llm.Client
	if cfg.GeminiKey != "" {
		llmClient, err = llm.NewClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.GeminiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = llmClient.Close() }()
	} else {
		log.Println("GEMINI_API_KEY not set; extraction endpoints will be unavailable")
	}

	var fetcher *fetch.Client
	if cfg.ScraperKey != "" {
		fetcher = fetch.NewClient(cfg.ScraperKey, fetch.Options{
			MaxChars:   cfg.MaxChars,
			UseBrowser: cfg.UseBrowser,
			Verbose:    cfg.Verbose,
		})
	} else {
		log.Println("SCRAPERAPI_KEY not set; URL extraction will be unavailable")
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	} else {
		log.Println("DATABASE_URL not set; job endpoints will be unavailable")
	}

	pipeline := extract.NewPipeline(llmClient, fetcher, extract.Options{
		MaxChars: cfg.MaxChars,
		Strict:   cfg.StrictParse,
		Verbose:  cfg.Verbose,
	})

	srv := server.New(server.Config{Port: cfg.Port}, pipeline, database)
	return srv.Start()
}
