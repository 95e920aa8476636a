package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoledger/internal/domain"
)

func TestWriter_LedgerExport(t *testing.T) {
	entries := []domain.LedgerEntry{
		{
			Date:         "2024-01-15",
			Account:      "Current Account",
			Debit:        decimal.RequireFromString("1250.00"),
			Narration:    "BY TRANSFER FROM SHACHI",
			Kind:         domain.KindIncome,
			Counterparty: "Shachi Client",
		},
		{
			Date:         "2024-01-15",
			Account:      "Client Income",
			Credit:       decimal.RequireFromString("1250.5"),
			Narration:    "BY TRANSFER FROM SHACHI",
			Kind:         domain.KindIncome,
			Counterparty: "Shachi Client",
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteEntries(entries))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Account", "Debit", "Credit", "Narration", "Transaction Type", "Counterparty"}, rows[0])
	// Amounts are rendered with two decimal places, zero sides included.
	assert.Equal(t, []string{"2024-01-15", "Current Account", "1250.00", "0.00", "BY TRANSFER FROM SHACHI", "income", "Shachi Client"}, rows[1])
	assert.Equal(t, "1250.50", rows[2][3])
}

func TestWriter_NoEntries(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteEntries(nil))
	w.Flush()

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
