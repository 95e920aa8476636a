package port

import (
	"context"

	"github.com/google/uuid"

	"autoledger/internal/domain"
)

// StatementRepository defines the contract for statement archive persistence.
type StatementRepository interface {
	Create(ctx context.Context, stmt *domain.Statement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error)
	List(ctx context.Context, offset, limit int) ([]domain.Statement, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
