package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"autoledger/internal/aiclassify"
	"autoledger/internal/bank"
	"autoledger/internal/classify"
	"autoledger/internal/config"
	"autoledger/internal/domain"
	"autoledger/internal/ledger"
	"autoledger/internal/port"
	"autoledger/internal/statement"
)

// PipelineService runs the statement-processing pipeline: bank detection,
// segmentation, field extraction, classification, ledger generation and
// P&L aggregation, plus the optional AI pass over ambiguous entries.
type PipelineService interface {
	Process(ctx context.Context, doc *domain.StatementDocument) (*domain.StatementResult, error)
	SupportedBanks() []bank.BankInfo
}

type pipelineService struct {
	registry   *bank.Registry
	classifier port.AmbiguityClassifier

	generator *ledger.Generator
	pnlOpts   ledger.PnLOptions
	cleanOpts classify.Options

	samplePages    int
	sampleMaxBytes int
	maxAIEntries   int
	aiTimeout      time.Duration
}

// NewPipelineService creates a PipelineService from the registry, the
// configured AI classifier, and the pipeline configuration tables. The
// configuration is copied at construction and never mutated afterwards.
func NewPipelineService(registry *bank.Registry, classifier port.AmbiguityClassifier, cfg *config.PipelineConfig, clsCfg *config.ClassifierConfig) PipelineService {
	mappings := make([]ledger.Mapping, 0)
	for _, m := range cfg.AccountMappings() {
		mappings = append(mappings, ledger.Mapping{Identifier: m.Identifier, Account: m.Account})
	}

	return &pipelineService{
		registry:   registry,
		classifier: classifier,
		generator: ledger.NewGenerator(ledger.Accounts{
			Bank:            cfg.BankAccount,
			DefaultIncome:   cfg.DefaultIncomeAccount,
			DefaultExpense:  cfg.DefaultExpenseAccount,
			DefaultTransfer: cfg.DefaultTransferAccount,
			Suspense:        cfg.SuspenseAccount,
		}, mappings),
		pnlOpts: ledger.PnLOptions{
			IncomeKeywords:  cfg.IncomeKeywords,
			ExpenseKeywords: cfg.ExpenseKeywords,
		},
		cleanOpts: classify.Options{
			OwnAccounts: cfg.OwnAccounts,
			BankAccount: cfg.BankAccount,
		},
		samplePages:    cfg.SamplePages,
		sampleMaxBytes: cfg.SampleMaxBytes,
		maxAIEntries:   clsCfg.MaxEntries,
		aiTimeout:      clsCfg.Timeout(),
	}
}

// SupportedBanks lists the configured bank profiles.
func (s *pipelineService) SupportedBanks() []bank.BankInfo {
	return s.registry.Supported()
}

// Process runs the whole pipeline for one document under the caller's
// context. A document that yields no parseable transaction at all is a
// document-level failure (domain.ErrNoTransactions); everything softer
// degrades per stage and the run continues.
func (s *pipelineService) Process(ctx context.Context, doc *domain.StatementDocument) (*domain.StatementResult, error) {
	start := time.Now()

	if len(doc.Pages) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	code := s.registry.Detect(s.sample(doc.Pages))
	profile := s.registry.ByCode(code)

	var parsed []domain.ParsedTransaction
	var flagged []domain.AmbiguousEntry

	for pageNum, page := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("processing page %d: %w", pageNum, err)
		}
		if len(page) == 0 {
			log.Printf("service.Pipeline: page %d has no text, skipping", pageNum)
			continue
		}

		for _, block := range statement.Segment(page, profile) {
			txn, ok := statement.Extract(block, profile)
			if ok {
				parsed = append(parsed, *txn)
				continue
			}
			flagged = append(flagged, domain.AmbiguousEntry{
				Lines:      block.Lines,
				Narration:  block.Text(),
				Suggestion: aiclassify.NoSuggestion,
			})
		}
	}

	if len(parsed) == 0 {
		return nil, domain.ErrNoTransactions
	}

	cleaned := classify.Clean(parsed, s.cleanOpts)
	entries := s.generator.Generate(cleaned)
	pnl := ledger.ComputePnL(entries, s.pnlOpts)

	s.classifyFlagged(ctx, flagged)

	result := &domain.StatementResult{
		ID:   uuid.New(),
		Name: doc.Name,
		Summary: domain.ProcessSummary{
			TotalTransactions:   len(parsed),
			FlaggedTransactions: len(flagged),
			CleanedTransactions: len(cleaned),
			LedgerEntries:       len(entries),
			TotalIncome:         pnl.TotalIncome,
			TotalExpense:        pnl.TotalExpense,
			NetProfit:           pnl.NetProfit,
			DetectedBank:        profile.Name,
			BankCode:            profile.Code,
			ProcessingMS:        time.Since(start).Milliseconds(),
			ProcessedAt:         time.Now().UTC(),
		},
		Transactions: parsed,
		Flagged:      flagged,
		Cleaned:      cleaned,
		Ledger:       entries,
		PnL:          pnl,
	}

	log.Printf("service.Pipeline: parsed %d transactions, %d flagged entries (bank=%s)",
		len(parsed), len(flagged), profile.Code)
	return result, nil
}

// sample concatenates the first pages into the detection sample, capped at
// sampleMaxBytes to bound detection cost.
func (s *pipelineService) sample(pages [][]string) string {
	var sb strings.Builder
	for i, page := range pages {
		if i >= s.samplePages || sb.Len() > s.sampleMaxBytes {
			break
		}
		sb.WriteString(strings.Join(page, "\n"))
		sb.WriteString("\n")
	}
	sample := sb.String()
	if len(sample) > s.sampleMaxBytes {
		sample = sample[:s.sampleMaxBytes]
	}
	return sample
}

// classifyFlagged sends a bounded prefix of the flagged entries to the AI
// classifier and writes the suggestions back in place. Any failure leaves
// the placeholder suggestions untouched; it never fails the pipeline.
func (s *pipelineService) classifyFlagged(ctx context.Context, flagged []domain.AmbiguousEntry) {
	if len(flagged) == 0 || s.classifier == nil {
		return
	}

	batch := flagged
	if s.maxAIEntries > 0 && len(batch) > s.maxAIEntries {
		batch = batch[:s.maxAIEntries]
	}

	narrations := make([]string, len(batch))
	for i := range batch {
		narrations[i] = batch[i].Narration
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	suggestions, err := s.classifier.Classify(aiCtx, narrations)
	if err != nil {
		log.Printf("service.Pipeline: ambiguity classification failed: %v", err)
		return
	}

	for i := range batch {
		if i >= len(suggestions) {
			break
		}
		batch[i].Label = suggestions[i].Label
		if suggestions[i].Suggestion != "" {
			batch[i].Suggestion = suggestions[i].Suggestion
		}
	}
}
