package csvexport

import (
	"encoding/csv"
	"io"

	"autoledger/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the ledger CSV header row.
var columns = []string{
	"Date",
	"Account",
	"Debit",
	"Credit",
	"Narration",
	"Transaction Type",
	"Counterparty",
}

// Writer wraps csv.Writer for exporting ledger entries as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteEntries converts ledger entries to CSV rows and writes them.
func (w *Writer) WriteEntries(entries []domain.LedgerEntry) error {
	for i := range entries {
		if err := w.csv.Write(entryToRow(&entries[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func entryToRow(e *domain.LedgerEntry) []string {
	return []string{
		e.Date,
		e.Account,
		e.Debit.StringFixed(2),
		e.Credit.StringFixed(2),
		e.Narration,
		string(e.Kind),
		e.Counterparty,
	}
}
