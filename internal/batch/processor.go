// Package batch runs one finite, ordered set of transactions through the
// validation pipeline to completion.
package batch

import (
	"github.com/payproc-dev/payproc/internal/accounts"
	"github.com/payproc-dev/payproc/internal/model"
	"github.com/payproc-dev/payproc/internal/pipeline"
)

// Processor applies the pipeline to a batch, in input order, and owns the
// balance mutation that follows an approved decision.
type Processor struct {
	accounts *accounts.Directory
	pipeline *pipeline.Pipeline
}

// NewProcessor creates a Processor over a directory and pipeline that
// must share the same account snapshot.
func NewProcessor(accts *accounts.Directory, p *pipeline.Pipeline) *Processor {
	return &Processor{accounts: accts, pipeline: p}
}

// Summary aggregates the verdicts of one batch run.
type Summary struct {
	Total    int
	Approved int
	Declined int
}

// Run evaluates every transaction in input order and returns one Decision
// each. Approved deltas apply to the directory immediately, so a later
// transaction on the same account sees the updated balance. Final
// balances are read back from the directory.
func (p *Processor) Run(txs []model.Transaction) []model.Decision {
	decisions := make([]model.Decision, 0, len(txs))
	ctx := pipeline.NewContext()

	for _, tx := range txs {
		d := p.pipeline.Evaluate(tx, ctx)
		decisions = append(decisions, d)

		if !d.Approved() {
			continue
		}
		delta := tx.Amount
		if tx.Kind == model.KindWithdraw {
			delta = delta.Neg()
		}
		// The pipeline approved against an existing account; Adjust cannot
		// miss here.
		_ = p.accounts.Adjust(tx.AccountID, delta)
	}

	return decisions
}

// Summarize counts outcomes for reporting.
func Summarize(decisions []model.Decision) Summary {
	s := Summary{Total: len(decisions)}
	for _, d := range decisions {
		if d.Approved() {
			s.Approved++
		} else {
			s.Declined++
		}
	}
	return s
}
