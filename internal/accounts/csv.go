package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/payproc-dev/payproc/internal/model"
)

const (
	numFields      = 9
	colID          = 0
	colName        = 1
	colBalance     = 2
	colCountry     = 3
	colFrozen      = 4
	colDepositMin  = 5
	colDepositMax  = 6
	colWithdrawMin = 7
	colWithdrawMax = 8
)

// BalancesHeader is the CSV header for the balances output file.
const BalancesHeader = "user_id,balance"

// ReadAccounts reads the users reference CSV.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading users CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var accts []model.Account
	for i, rec := range records[1:] {
		a, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accts = append(accts, a)
	}
	return accts, nil
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	limits := make([]decimal.Decimal, 4)
	for i, col := range []int{colDepositMin, colDepositMax, colWithdrawMin, colWithdrawMax} {
		limits[i], err = decimal.NewFromString(record[col])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing limit %q: %w", record[col], err)
		}
	}

	return model.Account{
		ID:          record[colID],
		Name:        record[colName],
		Balance:     balance,
		Country:     record[colCountry],
		Frozen:      record[colFrozen] == "1",
		DepositMin:  limits[0],
		DepositMax:  limits[1],
		WithdrawMin: limits[2],
		WithdrawMax: limits[3],
	}, nil
}

// WriteBalances writes the final per-account balances in input order.
func WriteBalances(w io.Writer, accts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"user_id", "balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, a := range accts {
		if err := cw.Write([]string{a.ID, a.Balance.String()}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
