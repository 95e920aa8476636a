package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"autoledger/internal/domain"
)

// PnLOptions holds the keyword sets that decide whether an account
// participates in the profit-and-loss totals.
type PnLOptions struct {
	IncomeKeywords  []string
	ExpenseKeywords []string
}

// ComputePnL aggregates ledger rows into a P&L summary. Income counts
// credit amounts on income-kind rows whose account name contains one of the
// income keywords (case-insensitive); expense counts debit amounts on
// expense-kind rows the same way. The breakdown lists income accounts then
// expense accounts, alphabetically within each group, with expense amounts
// negated.
func ComputePnL(entries []domain.LedgerEntry, opts PnLOptions) domain.PnLSummary {
	incomeByAccount := map[string]decimal.Decimal{}
	expenseByAccount := map[string]decimal.Decimal{}
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, e := range entries {
		switch {
		case e.Kind == domain.KindIncome && e.Credit.IsPositive() && containsAny(e.Account, opts.IncomeKeywords):
			incomeByAccount[e.Account] = incomeByAccount[e.Account].Add(e.Credit)
			totalIncome = totalIncome.Add(e.Credit)
		case e.Kind == domain.KindExpense && e.Debit.IsPositive() && containsAny(e.Account, opts.ExpenseKeywords):
			expenseByAccount[e.Account] = expenseByAccount[e.Account].Add(e.Debit)
			totalExpense = totalExpense.Add(e.Debit)
		}
	}

	breakdown := make([]domain.PnLAccount, 0, len(incomeByAccount)+len(expenseByAccount))
	for _, account := range sortedKeys(incomeByAccount) {
		breakdown = append(breakdown, domain.PnLAccount{
			Account: account,
			Amount:  incomeByAccount[account],
			Type:    "income",
		})
	}
	for _, account := range sortedKeys(expenseByAccount) {
		breakdown = append(breakdown, domain.PnLAccount{
			Account: account,
			Amount:  expenseByAccount[account].Neg(),
			Type:    "expense",
		})
	}

	return domain.PnLSummary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		NetProfit:    totalIncome.Sub(totalExpense),
		Breakdown:    breakdown,
	}
}

func containsAny(account string, keywords []string) bool {
	lower := strings.ToLower(account)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
