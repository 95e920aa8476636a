package domain

// Direction indicates which side of the account a transaction moved money.
type Direction string

const (
	DirectionCredit  Direction = "credit"
	DirectionDebit   Direction = "debit"
	DirectionUnknown Direction = "unknown"
)

// TransactionKind is the semantic category assigned by the classifier.
type TransactionKind string

const (
	KindIncome        TransactionKind = "income"
	KindExpense       TransactionKind = "expense"
	KindTransfer      TransactionKind = "transfer"
	KindUncategorized TransactionKind = "uncategorized"
)
