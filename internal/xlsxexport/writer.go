// Package xlsxexport builds an Excel workbook from a statement result:
// one sheet for the double-entry ledger, one for the P&L summary.
package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"autoledger/internal/domain"
)

const (
	ledgerSheet = "Ledger"
	pnlSheet    = "Profit & Loss"
)

var ledgerHeader = []interface{}{
	"Date", "Account", "Debit", "Credit", "Narration", "Transaction Type", "Counterparty",
}

// NewWorkbook builds an xlsx workbook for a processed statement.
func NewWorkbook(result *domain.StatementResult) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", ledgerSheet)
	if _, err := f.NewSheet(pnlSheet); err != nil {
		return nil, fmt.Errorf("creating pnl sheet: %w", err)
	}

	if err := writeLedger(f, result.Ledger); err != nil {
		return nil, err
	}
	if err := writePnL(f, &result.PnL); err != nil {
		return nil, err
	}
	return f, nil
}

func writeLedger(f *excelize.File, entries []domain.LedgerEntry) error {
	if err := f.SetSheetRow(ledgerSheet, "A1", &ledgerHeader); err != nil {
		return fmt.Errorf("writing ledger header: %w", err)
	}
	for i, e := range entries {
		debit, _ := e.Debit.Float64()
		credit, _ := e.Credit.Float64()
		row := []interface{}{e.Date, e.Account, debit, credit, e.Narration, string(e.Kind), e.Counterparty}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return fmt.Errorf("writing ledger row %d: %w", i, err)
		}
	}
	return nil
}

func writePnL(f *excelize.File, pnl *domain.PnLSummary) error {
	totalIncome, _ := pnl.TotalIncome.Float64()
	totalExpense, _ := pnl.TotalExpense.Float64()
	netProfit, _ := pnl.NetProfit.Float64()

	rows := [][]interface{}{
		{"Total Income", totalIncome},
		{"Total Expense", totalExpense},
		{"Net Profit", netProfit},
		{},
		{"Account", "Amount", "Type"},
	}
	for _, acc := range pnl.Breakdown {
		amount, _ := acc.Amount.Float64()
		rows = append(rows, []interface{}{acc.Account, amount, acc.Type})
	}

	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(pnlSheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("writing pnl row %d: %w", i, err)
		}
	}
	return nil
}
