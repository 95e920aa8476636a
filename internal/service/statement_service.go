package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"autoledger/internal/domain"
	"autoledger/internal/port"
)

// StatementService manages the archive of processed statements.
type StatementService interface {
	Archive(ctx context.Context, result *domain.StatementResult) (*domain.Statement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error)
	List(ctx context.Context, offset, limit int) ([]domain.Statement, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type statementService struct {
	repo port.StatementRepository
}

// NewStatementService creates a StatementService backed by the given repository.
func NewStatementService(repo port.StatementRepository) StatementService {
	return &statementService{repo: repo}
}

// Archive stores a processing result, keeping the full result as JSONB next
// to the summary columns used for listing.
func (s *statementService) Archive(ctx context.Context, result *domain.StatementResult) (*domain.Statement, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshaling statement result: %w", err)
	}

	stmt := &domain.Statement{
		ID:               result.ID,
		Name:             result.Name,
		BankCode:         result.Summary.BankCode,
		DetectedBank:     result.Summary.DetectedBank,
		TransactionCount: result.Summary.TotalTransactions,
		FlaggedCount:     result.Summary.FlaggedTransactions,
		LedgerEntryCount: result.Summary.LedgerEntries,
		TotalIncome:      result.Summary.TotalIncome,
		TotalExpense:     result.Summary.TotalExpense,
		NetProfit:        result.Summary.NetProfit,
		Result:           raw,
		ProcessingMS:     result.Summary.ProcessingMS,
	}
	if err := s.repo.Create(ctx, stmt); err != nil {
		return nil, fmt.Errorf("archiving statement: %w", err)
	}
	return stmt, nil
}

func (s *statementService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *statementService) List(ctx context.Context, offset, limit int) ([]domain.Statement, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *statementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
