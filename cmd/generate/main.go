package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	scribe "github.com/goliatone/go-scribe"
	"github.com/goliatone/go-scribe/article"
)

func main() {
	if err := runGenerate(os.Args[1:]); err != nil {
		log.Fatalf("generate: %v", err)
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	subject := fs.String("subject", "", "Subject of the article to generate")
	indexID := fs.String("index", "", "Content index (vector store) ID holding the source documents")
	dsn := fs.String("dsn", "", "Database DSN (defaults to in-memory SQLite)")
	driver := fs.String("driver", "", "Database driver: sqlite3 or postgres")
	model := fs.String("model", "", "Provider model name")
	authorName := fs.String("author-name", "Editorial Staff", "Name recorded on the default author")
	attempts := fs.Int("poll-attempts", 0, "Maximum index readiness polls")
	interval := fs.Duration("poll-interval", 0, "Pause between readiness polls")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *subject == "" {
		return fmt.Errorf("subject is required")
	}
	if *indexID == "" {
		return fmt.Errorf("index is required")
	}

	cfg := scribe.DefaultConfig()
	cfg.Provider.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Logging.Level = *logLevel
	if *dsn != "" {
		cfg.Storage.DSN = *dsn
	}
	if *driver != "" {
		cfg.Storage.Driver = *driver
	}
	if *model != "" {
		cfg.Provider.Model = *model
	}
	if *attempts > 0 {
		cfg.Poller.Attempts = *attempts
	}
	if *interval > 0 {
		cfg.Poller.Interval = *interval
	}

	module, err := scribe.New(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if _, err := module.SeedDefaultAuthor(ctx, *authorName, cfg.Generation.AuthorRole); err != nil {
		return fmt.Errorf("seed author: %w", err)
	}

	job, err := module.EnqueueSubject(ctx, *subject, *indexID)
	if err != nil {
		return fmt.Errorf("enqueue job: %w", err)
	}

	start := time.Now()
	result, err := module.Run(ctx, job.ID)
	if err != nil {
		if errors.Is(err, article.ErrJobAlreadyRunning) {
			return fmt.Errorf("job %s is already running", job.ID)
		}
		return err
	}

	fmt.Printf("article %s created\n", result.ArticleID)
	fmt.Printf("  title:   %s\n", result.Title)
	fmt.Printf("  slug:    %s\n", result.Slug)
	fmt.Printf("  elapsed: %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
