package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatementDocument is the upstream input: ordered pages, each an ordered
// sequence of text lines in reading order. An image-only page arrives as an
// empty line slice.
type StatementDocument struct {
	Name  string     `json:"name"`
	Pages [][]string `json:"pages"`
}

// TransactionBlock is a contiguous run of raw lines believed to describe a
// single transaction. The first line always matches the active profile's
// date pattern at its start.
type TransactionBlock struct {
	Lines []string `json:"lines"`
}

// Text returns the block lines joined with single spaces.
func (b TransactionBlock) Text() string {
	return strings.Join(b.Lines, " ")
}

// ParsedTransaction is the field-extraction result for one block. Amount is
// kept as the captured decimal string; Date is an ISO calendar date when the
// profile's format parsed, otherwise the raw token.
type ParsedTransaction struct {
	Date      string    `json:"date"`
	Reference string    `json:"reference"`
	Amount    string    `json:"amount"`
	Direction Direction `json:"direction"`
	Narrative string    `json:"narrative"`
	BankCode  string    `json:"bank_code"`
}

// AmbiguousEntry is a block the extractor could not fully parse, retained
// verbatim for external review. Label and Suggestion are filled in by the
// AI classifier when one is configured.
type AmbiguousEntry struct {
	Lines      []string `json:"lines"`
	Narration  string   `json:"narration"`
	Label      string   `json:"label,omitempty"`
	Suggestion string   `json:"ai_suggestion"`
}

// CleanedTransaction is a ParsedTransaction with the amount coerced to a
// decimal value, a derived counterparty, and an assigned transaction kind.
type CleanedTransaction struct {
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Direction    Direction       `json:"type"`
	Kind         TransactionKind `json:"transaction_type"`
	Counterparty string          `json:"counterparty"`
	Account      string          `json:"account"`
	Narrative    string          `json:"narrative"`
}

// LedgerEntry is one side of a double-entry pair. Exactly one of Debit and
// Credit is non-zero.
type LedgerEntry struct {
	Date         string          `json:"date"`
	Account      string          `json:"account"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Narration    string          `json:"narration"`
	Kind         TransactionKind `json:"transaction_type"`
	Counterparty string          `json:"counterparty"`
}

// PnLAccount is one breakdown row of the P&L summary. Amount is signed:
// positive for income accounts, negative for expense accounts.
type PnLAccount struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	Type    string          `json:"type"`
}

// PnLSummary holds profit-and-loss totals and the per-account breakdown.
type PnLSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	Breakdown    []PnLAccount    `json:"breakdown"`
}

// ProcessSummary holds document-level counts and totals for one run.
type ProcessSummary struct {
	TotalTransactions   int             `json:"total_transactions"`
	FlaggedTransactions int             `json:"flagged_transactions"`
	CleanedTransactions int             `json:"cleaned_transactions"`
	LedgerEntries       int             `json:"ledger_entries"`
	TotalIncome         decimal.Decimal `json:"total_income"`
	TotalExpense        decimal.Decimal `json:"total_expense"`
	NetProfit           decimal.Decimal `json:"net_profit"`
	DetectedBank        string          `json:"detected_bank"`
	BankCode            string          `json:"bank_code"`
	ProcessingMS        int64           `json:"processing_time_ms"`
	ProcessedAt         time.Time       `json:"processed_at"`
}

// StatementResult is the full pipeline output for one document.
type StatementResult struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Summary      ProcessSummary       `json:"summary"`
	Transactions []ParsedTransaction  `json:"transactions"`
	Flagged      []AmbiguousEntry     `json:"flagged_transactions"`
	Cleaned      []CleanedTransaction `json:"cleaned_transactions"`
	Ledger       []LedgerEntry        `json:"ledger_entries"`
	PnL          PnLSummary           `json:"pnl_summary"`
}

// Statement is an archived processing result as stored in Postgres. The full
// StatementResult is kept as JSONB alongside the summary columns used for
// listing.
type Statement struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	Name             string          `db:"name" json:"name"`
	BankCode         string          `db:"bank_code" json:"bank_code"`
	DetectedBank     string          `db:"detected_bank" json:"detected_bank"`
	TransactionCount int             `db:"transaction_count" json:"transaction_count"`
	FlaggedCount     int             `db:"flagged_count" json:"flagged_count"`
	LedgerEntryCount int             `db:"ledger_entry_count" json:"ledger_entry_count"`
	TotalIncome      decimal.Decimal `db:"total_income" json:"total_income"`
	TotalExpense     decimal.Decimal `db:"total_expense" json:"total_expense"`
	NetProfit        decimal.Decimal `db:"net_profit" json:"net_profit"`
	Result           json.RawMessage `db:"result" json:"result,omitempty"`
	ProcessingMS     int64           `db:"processing_ms" json:"processing_ms"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}
