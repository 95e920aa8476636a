package ledger

import (
	"strings"

	"autoledger/internal/domain"
)

// Sentinel account names used by counterparty mapping.
const (
	AccountUnclassified = "Unclassified"
	AccountUnmapped     = "Unmapped Party"
)

// Accounts names the fixed ledger accounts used when resolving the two
// sides of an entry pair.
type Accounts struct {
	Bank            string
	DefaultIncome   string
	DefaultExpense  string
	DefaultTransfer string
	Suspense        string
}

// Mapping associates a counterparty identifier substring with a ledger
// account. Mappings are applied in declared order, first match wins.
type Mapping struct {
	Identifier string
	Account    string
}

// Generator emits balanced double-entry ledger rows from cleaned
// transactions. It is read-only after construction.
type Generator struct {
	accounts Accounts
	mappings []Mapping
}

// NewGenerator creates a Generator with the given account names and ordered
// counterparty mappings.
func NewGenerator(accounts Accounts, mappings []Mapping) *Generator {
	return &Generator{accounts: accounts, mappings: mappings}
}

// MapCounterparty resolves the "other account" for a counterparty by ordered
// case-insensitive substring match. Empty counterparty maps to Unclassified;
// no match maps to the Unmapped Party sentinel.
func (g *Generator) MapCounterparty(counterparty string) string {
	if counterparty == "" {
		return AccountUnclassified
	}
	upper := strings.ToUpper(counterparty)
	for _, m := range g.mappings {
		if strings.Contains(upper, strings.ToUpper(m.Identifier)) {
			return m.Account
		}
	}
	return AccountUnmapped
}

// Generate emits exactly two rows (one debit-only, one credit-only, same
// amount) per transaction with a strictly positive amount. Total debits
// equal total credits by construction. Transactions with non-positive
// amounts are skipped.
func (g *Generator) Generate(txns []domain.CleanedTransaction) []domain.LedgerEntry {
	var entries []domain.LedgerEntry

	for _, txn := range txns {
		if !txn.Amount.IsPositive() {
			continue
		}

		other := g.MapCounterparty(txn.Counterparty)

		var debitAccount, creditAccount string
		switch txn.Kind {
		case domain.KindIncome:
			debitAccount = g.accounts.Bank
			creditAccount = orDefault(other, g.accounts.DefaultIncome)
		case domain.KindExpense:
			debitAccount = orDefault(other, g.accounts.DefaultExpense)
			creditAccount = g.accounts.Bank
		case domain.KindTransfer:
			debitAccount = g.accounts.Bank
			creditAccount = orDefault(other, g.accounts.DefaultTransfer)
		default:
			debitAccount = g.accounts.Suspense
			creditAccount = g.accounts.Suspense
		}

		entries = append(entries,
			domain.LedgerEntry{
				Date:         txn.Date,
				Account:      debitAccount,
				Debit:        txn.Amount,
				Narration:    txn.Narrative,
				Kind:         txn.Kind,
				Counterparty: txn.Counterparty,
			},
			domain.LedgerEntry{
				Date:         txn.Date,
				Account:      creditAccount,
				Credit:       txn.Amount,
				Narration:    txn.Narrative,
				Kind:         txn.Kind,
				Counterparty: txn.Counterparty,
			},
		)
	}
	return entries
}

// orDefault substitutes the default account when mapping fell through to
// the Unmapped Party sentinel.
func orDefault(mapped, def string) string {
	if mapped == AccountUnmapped {
		return def
	}
	return mapped
}
