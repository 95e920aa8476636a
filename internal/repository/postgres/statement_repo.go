package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"autoledger/internal/domain"
	"autoledger/internal/port"
)

type statementRepo struct {
	db *sqlx.DB
}

// NewStatementRepo creates a new PostgreSQL-backed StatementRepository.
func NewStatementRepo(db *sqlx.DB) port.StatementRepository {
	return &statementRepo{db: db}
}

func (r *statementRepo) Create(ctx context.Context, stmt *domain.Statement) error {
	stmt.CreatedAt = time.Now().UTC()

	query := `INSERT INTO statements (
		id, name, bank_code, detected_bank,
		transaction_count, flagged_count, ledger_entry_count,
		total_income, total_expense, net_profit,
		result, processing_ms, created_at
	) VALUES (
		$1, $2, $3, $4,
		$5, $6, $7,
		$8, $9, $10,
		$11, $12, $13
	)`

	_, err := r.db.ExecContext(ctx, query,
		stmt.ID, stmt.Name, stmt.BankCode, stmt.DetectedBank,
		stmt.TransactionCount, stmt.FlaggedCount, stmt.LedgerEntryCount,
		stmt.TotalIncome, stmt.TotalExpense, stmt.NetProfit,
		stmt.Result, stmt.ProcessingMS, stmt.CreatedAt)
	if err != nil {
		return fmt.Errorf("statementRepo.Create: %w", err)
	}
	return nil
}

func (r *statementRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error) {
	var stmt domain.Statement
	err := r.db.GetContext(ctx, &stmt, "SELECT * FROM statements WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStatementNotFound
		}
		return nil, fmt.Errorf("statementRepo.GetByID: %w", err)
	}
	return &stmt, nil
}

func (r *statementRepo) List(ctx context.Context, offset, limit int) ([]domain.Statement, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM statements"); err != nil {
		return nil, 0, fmt.Errorf("statementRepo.List count: %w", err)
	}

	var stmts []domain.Statement
	err := r.db.SelectContext(ctx, &stmts,
		`SELECT id, name, bank_code, detected_bank,
		        transaction_count, flagged_count, ledger_entry_count,
		        total_income, total_expense, net_profit,
		        '{}'::jsonb AS result, processing_ms, created_at
		 FROM statements ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("statementRepo.List: %w", err)
	}
	return stmts, total, nil
}

func (r *statementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM statements WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("statementRepo.Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("statementRepo.Delete rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrStatementNotFound
	}
	return nil
}
