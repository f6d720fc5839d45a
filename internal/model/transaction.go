package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind classifies the direction of a transaction.
type Kind string

const (
	KindDeposit  Kind = "DEPOSIT"
	KindWithdraw Kind = "WITHDRAW"
)

// Instrument classifies the payment instrument of a transaction.
type Instrument string

const (
	InstrumentCard     Instrument = "CARD"
	InstrumentTransfer Instrument = "TRANSFER"
)

// cardPrefixLen is the number of leading card digits consulted for the
// BIN range lookup.
const cardPrefixLen = 10

// Malformed-input categories. A record failing construction never
// reaches the validation pipeline.
var (
	ErrInvalidKind       = errors.New("kind must be DEPOSIT or WITHDRAW")
	ErrInvalidInstrument = errors.New("instrument must be CARD or TRANSFER")
	ErrInvalidReference  = errors.New("invalid instrument reference")
)

// Transaction is a single candidate payment, immutable once constructed.
// Reference holds the card number for CARD and the IBAN for TRANSFER.
type Transaction struct {
	ID         string
	AccountID  string
	Kind       Kind
	Amount     decimal.Decimal
	Instrument Instrument
	Reference  string
}

// NewTransaction validates kind, instrument and instrument reference and
// returns an immutable Transaction.
func NewTransaction(id, accountID, kind string, amount decimal.Decimal, instrument, reference string) (Transaction, error) {
	k := Kind(kind)
	if k != KindDeposit && k != KindWithdraw {
		return Transaction{}, fmt.Errorf("transaction %s: %w (got %q)", id, ErrInvalidKind, kind)
	}

	ins := Instrument(instrument)
	if ins != InstrumentCard && ins != InstrumentTransfer {
		return Transaction{}, fmt.Errorf("transaction %s: %w (got %q)", id, ErrInvalidInstrument, instrument)
	}

	if ins == InstrumentCard {
		if len(reference) < cardPrefixLen {
			return Transaction{}, fmt.Errorf("transaction %s: %w: card number %q shorter than %d digits", id, ErrInvalidReference, reference, cardPrefixLen)
		}
		for _, r := range reference[:cardPrefixLen] {
			if r < '0' || r > '9' {
				return Transaction{}, fmt.Errorf("transaction %s: %w: card number %q is not numeric", id, ErrInvalidReference, reference)
			}
		}
	}

	return Transaction{
		ID:         id,
		AccountID:  accountID,
		Kind:       k,
		Amount:     amount,
		Instrument: ins,
		Reference:  reference,
	}, nil
}

// CardPrefix returns the first ten digits of a card number. Callers must
// only use it on CARD transactions, which are at least ten digits by
// construction.
func (t Transaction) CardPrefix() string {
	return t.Reference[:cardPrefixLen]
}
