package model

import "github.com/shopspring/decimal"

// Account represents a row in the users reference file. Balance is the
// only mutable field and is adjusted exclusively by the batch processor
// after an approved transaction.
type Account struct {
	ID          string
	Name        string
	Balance     decimal.Decimal
	Country     string // ISO2
	Frozen      bool
	DepositMin  decimal.Decimal
	DepositMax  decimal.Decimal
	WithdrawMin decimal.Decimal
	WithdrawMax decimal.Decimal
}
