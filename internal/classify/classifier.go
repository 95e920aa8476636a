package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"autoledger/internal/domain"
)

// Options carries the configuration tables the classifier needs. Values are
// treated as immutable; OwnAccounts order is preserved but irrelevant since
// only membership matters.
type Options struct {
	// OwnAccounts are identifier substrings belonging to the statement
	// holder, used to tell transfers apart from genuine income/expense.
	OwnAccounts []string
	// BankAccount is the ledger account representing the statement's bank
	// account, attached to every cleaned transaction.
	BankAccount string
}

// Kind assigns a semantic transaction kind. Rules are evaluated top-down
// and the first applicable one wins:
//
//  1. transfer-style narration with an own-account counterparty → transfer
//  2. debit + "TO TRANSFER" → expense, unless own-account → transfer
//  3. credit + "BY TRANSFER" → income, unless own-account → transfer
//  4. credit → income; debit → expense; otherwise uncategorized
//
// Own-account matching is case-insensitive substring containment.
func Kind(narrative string, direction domain.Direction, counterparty string, ownAccounts []string) domain.TransactionKind {
	narrUpper := strings.ToUpper(narrative)
	cpUpper := strings.ToUpper(counterparty)

	ownMatch := false
	for _, ac := range ownAccounts {
		if strings.Contains(cpUpper, strings.ToUpper(ac)) {
			ownMatch = true
			break
		}
	}

	if strings.Contains(narrUpper, "TO TRANSFER") || strings.Contains(narrUpper, "BY TRANSFER") {
		if ownMatch {
			return domain.KindTransfer
		}
	}

	if direction == domain.DirectionDebit && strings.Contains(narrUpper, "TO TRANSFER") {
		if ownMatch {
			return domain.KindTransfer
		}
		return domain.KindExpense
	}

	if direction == domain.DirectionCredit && strings.Contains(narrUpper, "BY TRANSFER") {
		if ownMatch {
			return domain.KindTransfer
		}
		return domain.KindIncome
	}

	switch direction {
	case domain.DirectionCredit:
		return domain.KindIncome
	case domain.DirectionDebit:
		return domain.KindExpense
	default:
		return domain.KindUncategorized
	}
}

// Clean coerces parsed transactions into cleaned ones: the amount string
// becomes a decimal (zero on coercion failure, never an error), and a
// counterparty and transaction kind are derived.
func Clean(txns []domain.ParsedTransaction, opts Options) []domain.CleanedTransaction {
	cleaned := make([]domain.CleanedTransaction, 0, len(txns))
	for _, txn := range txns {
		amt := coerceAmount(txn.Amount)
		cp := Counterparty(txn.Narrative)
		cleaned = append(cleaned, domain.CleanedTransaction{
			Date:         txn.Date,
			Amount:       amt,
			Direction:    txn.Direction,
			Kind:         Kind(txn.Narrative, txn.Direction, cp, opts.OwnAccounts),
			Counterparty: cp,
			Account:      opts.BankAccount,
			Narrative:    txn.Narrative,
		})
	}
	return cleaned
}

// coerceAmount parses a captured amount string, tolerating thousands
// separators. Failures coerce to zero; such transactions are later dropped
// by the ledger's positive-amount guard but stay visible upstream.
func coerceAmount(raw string) decimal.Decimal {
	cleaned := strings.ReplaceAll(raw, ",", "")
	amt, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amt
}
