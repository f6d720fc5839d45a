package batch

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/payproc-dev/payproc/internal/model"
)

// DecisionsHeader is the CSV header for the decisions output file.
const DecisionsHeader = "transaction_id,status,message"

const (
	txNumFields = 6
	colTxID     = 0
	colUserID   = 1
	colKind     = 2
	colAmount   = 3
	colMethod   = 4
	colAcctNum  = 5
)

// ReadTransactions reads the transactions CSV. A row with an unknown kind
// or instrument, a non-positive amount, or a malformed card reference
// fails the whole load; malformed input never reaches the pipeline.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = txNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != txNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", txNumFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	if !amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("amount %s is not positive", amount)
	}

	return model.NewTransaction(
		record[colTxID],
		record[colUserID],
		record[colKind],
		amount,
		record[colMethod],
		record[colAcctNum],
	)
}

// WriteDecisions writes one row per Decision, in input order.
func WriteDecisions(w io.Writer, decisions []model.Decision) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"transaction_id", "status", "message"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, d := range decisions {
		if err := cw.Write([]string{d.TransactionID, string(d.Outcome), d.Message}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
