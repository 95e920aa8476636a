package domain

import "errors"

var (
	// ErrNoTransactions indicates a document yielded no parseable transactions.
	ErrNoTransactions = errors.New("no transactions found in document")

	// ErrEmptyDocument indicates a document with no pages at all.
	ErrEmptyDocument = errors.New("document has no pages")

	// ErrStatementNotFound indicates the requested archived statement does not exist.
	ErrStatementNotFound = errors.New("statement not found")
)
