package main

import (
	"fmt"
	"log"

	"autoledger/internal/aiclassify"
	_ "autoledger/internal/aiclassify/noop"
	_ "autoledger/internal/aiclassify/sonar"
	"autoledger/internal/bank"
	"autoledger/internal/config"
	"autoledger/internal/handler"
	"autoledger/internal/repository/postgres"
	"autoledger/internal/router"
	"autoledger/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	statementRepo := postgres.NewStatementRepo(db)

	// Initialize the AI ambiguity classifier
	classifier, err := aiclassify.New(&cfg.Classifier)
	if err != nil {
		return fmt.Errorf("failed to initialize classifier: %w", err)
	}

	// Initialize services
	pipelineSvc := service.NewPipelineService(bank.DefaultRegistry(), classifier, &cfg.Pipeline, &cfg.Classifier)
	statementSvc := service.NewStatementService(statementRepo)

	// Initialize handlers
	statementH := handler.NewStatementHandler(pipelineSvc, statementSvc, cfg.Pipeline.ParseTimeout())
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, statementH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
