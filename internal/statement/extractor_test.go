package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoledger/internal/bank"
	"autoledger/internal/domain"
)

func TestExtract_SBITransaction(t *testing.T) {
	block := domain.TransactionBlock{Lines: []string{
		"15 Jan 2024",
		"UPI/CR/12345678 TRANSFER FROM JOHN DOE 1,250.00",
	}}

	txn, ok := Extract(block, sbiProfile(t))
	require.True(t, ok)
	assert.Equal(t, "2024-01-15", txn.Date)
	assert.Equal(t, "UPI/CR/12345678", txn.Reference)
	assert.Equal(t, "1,250.00", txn.Amount)
	assert.Equal(t, domain.DirectionCredit, txn.Direction)
	assert.Equal(t, "UPI/CR/12345678 TRANSFER FROM JOHN DOE 1,250.00", txn.Narrative)
	assert.Equal(t, bank.CodeSBI, txn.BankCode)
}

func TestExtract_AmountPatternPrecedence(t *testing.T) {
	// Both the TRANSFER-anchored pattern and the line-end pattern match;
	// the first declared pattern wins.
	block := domain.TransactionBlock{Lines: []string{
		"15 Jan 2024 BY TRANSFER 500.00 BALANCE 2,000.00",
	}}

	txn, ok := Extract(block, sbiProfile(t))
	require.True(t, ok)
	assert.Equal(t, "500.00", txn.Amount)
}

func TestExtract_NoAmountIsAmbiguous(t *testing.T) {
	block := domain.TransactionBlock{Lines: []string{
		"16 Jan 2024",
		"UPI/DR/99999999 REVERSAL PENDING",
	}}

	txn, ok := Extract(block, sbiProfile(t))
	assert.False(t, ok)
	assert.Nil(t, txn)
}

func TestExtract_NoDateIsAmbiguous(t *testing.T) {
	block := domain.TransactionBlock{Lines: []string{"no date here 100.00"}}

	_, ok := Extract(block, sbiProfile(t))
	assert.False(t, ok)
}

func TestExtract_EmptyBlock(t *testing.T) {
	_, ok := Extract(domain.TransactionBlock{}, sbiProfile(t))
	assert.False(t, ok)
}

func TestExtract_DateParseFailureKeepsRawToken(t *testing.T) {
	block := domain.TransactionBlock{Lines: []string{
		"99 Jan 2024 BY TRANSFER 100.00",
	}}

	txn, ok := Extract(block, sbiProfile(t))
	require.True(t, ok)
	assert.Equal(t, "99 Jan 2024", txn.Date)
}

func TestExtract_DirectionKeywordContainment(t *testing.T) {
	hdfc := bank.DefaultRegistry().ByCode(bank.CodeHDFC)

	// "CR" is a substring of "MICROSOFT"; containment matching makes this a
	// credit regardless of anything else on the line. Accepted behavior.
	block := domain.TransactionBlock{Lines: []string{
		"15/01/2024 MICROSOFT 365 FEE 499.00",
	}}
	txn, ok := Extract(block, hdfc)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionCredit, txn.Direction)
}

func TestExtract_DirectionWordBoundaryFallback(t *testing.T) {
	// No keyword from either set appears as a substring; the final
	// whole-word DR check decides.
	sbi := sbiProfile(t)
	block := domain.TransactionBlock{Lines: []string{
		"15 Jan 2024 ATM WHL DR 2,500.00",
	}}
	txn, ok := Extract(block, sbi)
	require.True(t, ok)
	assert.Equal(t, domain.DirectionDebit, txn.Direction)
}

func TestExtract_DirectionUnknown(t *testing.T) {
	block := domain.TransactionBlock{Lines: []string{
		"15 Jan 2024 CHQ CLEARING 1,000.00",
	}}

	txn, ok := Extract(block, sbiProfile(t))
	require.True(t, ok)
	assert.Equal(t, domain.DirectionUnknown, txn.Direction)
}

func TestExtract_ReferenceAbsentIsEmpty(t *testing.T) {
	block := domain.TransactionBlock{Lines: []string{
		"15 Jan 2024 CASH DEPOSIT 3,000.00",
	}}

	txn, ok := Extract(block, sbiProfile(t))
	require.True(t, ok)
	assert.Equal(t, "", txn.Reference)
}
