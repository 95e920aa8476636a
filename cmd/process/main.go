// Command process runs the statement pipeline offline against a plain-text
// file (pages separated by form feeds) and prints the JSON result, without
// a database or HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"autoledger/internal/aiclassify"
	_ "autoledger/internal/aiclassify/noop"
	_ "autoledger/internal/aiclassify/sonar"
	"autoledger/internal/bank"
	"autoledger/internal/config"
	"autoledger/internal/domain"
	"autoledger/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	file := flag.String("file", "", "path to statement text file (pages separated by form feeds)")
	flag.Parse()

	if *file == "" {
		return fmt.Errorf("usage: process -file statement.txt")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("reading statement file: %w", err)
	}

	classifier, err := aiclassify.New(&cfg.Classifier)
	if err != nil {
		return fmt.Errorf("failed to initialize classifier: %w", err)
	}

	pipeline := service.NewPipelineService(bank.DefaultRegistry(), classifier, &cfg.Pipeline, &cfg.Classifier)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Pipeline.ParseTimeout())
	defer cancel()

	result, err := pipeline.Process(ctx, &domain.StatementDocument{
		Name:  *file,
		Pages: splitPages(string(raw)),
	})
	if err != nil {
		return fmt.Errorf("processing statement: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func splitPages(text string) [][]string {
	var pages [][]string
	for _, page := range strings.Split(text, "\f") {
		page = strings.TrimRight(page, "\n")
		if page == "" {
			pages = append(pages, nil)
			continue
		}
		pages = append(pages, strings.Split(page, "\n"))
	}
	return pages
}
