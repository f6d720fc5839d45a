package model

// Outcome is the verdict of the validation pipeline for one transaction.
type Outcome string

const (
	OutcomeApproved Outcome = "APPROVED"
	OutcomeDeclined Outcome = "DECLINED"
)

// Decision is the pipeline's verdict for a single transaction. Exactly
// one Decision is produced per input transaction, in input order.
type Decision struct {
	TransactionID string
	Outcome       Outcome
	Message       string
}

// Approved reports whether the decision accepted the transaction.
func (d Decision) Approved() bool {
	return d.Outcome == OutcomeApproved
}
