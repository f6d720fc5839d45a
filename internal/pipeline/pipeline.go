// Package pipeline decides the fate of a single transaction by running an
// ordered sequence of business-rule stages against the batch's reference
// data. The first failing stage short-circuits with a declined Decision;
// the pipeline itself never mutates account state.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/payproc-dev/payproc/internal/accounts"
	"github.com/payproc-dev/payproc/internal/bins"
	"github.com/payproc-dev/payproc/internal/country"
	"github.com/payproc-dev/payproc/internal/iban"
	"github.com/payproc-dev/payproc/internal/model"
)

// limitResult tags the outcome of the amount-limit stage.
type limitResult int

const (
	limitOK limitResult = iota
	overDeposit
	underDeposit
	overWithdraw
	underWithdraw
)

// Pipeline evaluates transactions against a snapshot of reference data.
type Pipeline struct {
	accounts  *accounts.Directory
	bins      *bins.Directory
	countries *country.Resolver
}

// New creates a Pipeline over the given directories and resolver.
func New(accts *accounts.Directory, binDir *bins.Directory, countries *country.Resolver) *Pipeline {
	return &Pipeline{accounts: accts, bins: binDir, countries: countries}
}

// Evaluate runs the stages in order and returns the Decision for tx. The
// transaction ID is recorded in ctx whatever the outcome, so a later
// transaction reusing the ID declines as non-unique.
func (p *Pipeline) Evaluate(tx model.Transaction, ctx *Context) model.Decision {
	d := p.evaluate(tx, ctx)
	ctx.mark(tx.ID)
	return d
}

func (p *Pipeline) evaluate(tx model.Transaction, ctx *Context) model.Decision {
	// Stage 1: batch-scoped ID uniqueness.
	if ctx.seen(tx.ID) {
		return declined(tx, fmt.Sprintf("Transaction %s already processed (id non-unique)", tx.ID))
	}

	// Stage 2: account existence and status.
	acct, ok := p.accounts.Get(tx.AccountID)
	if !ok {
		return declined(tx, "User not found")
	}
	if acct.Frozen {
		return declined(tx, fmt.Sprintf("%s not found in Users or is frozen", acct.Name))
	}

	// Stage 3: instrument validity.
	var bin model.BinRange
	switch tx.Instrument {
	case model.InstrumentTransfer:
		if !iban.Validate(tx.Reference) {
			return declined(tx, fmt.Sprintf("Invalid iban %s", tx.Reference))
		}
	case model.InstrumentCard:
		var found bool
		bin, found = p.bins.Lookup(tx.Reference)
		// An unmatched prefix counts as non-debit and declines the same way.
		if !found || bin.Category != model.CategoryDebit {
			return declined(tx, "Only DC cards allowed; got CC")
		}
	}

	// Stage 4: cross-border consistency.
	bankCountry := p.issuingCountry(tx, bin)
	if acct.Country != bankCountry {
		return declined(tx, fmt.Sprintf("Invalid account country %s; expected %s", acct.Country, bankCountry))
	}

	// Stage 5: per-account amount limits.
	if d, ok := p.checkLimits(tx, acct); !ok {
		return d
	}

	// Stage 6: balance sufficiency, withdrawals only.
	if tx.Kind == model.KindWithdraw && acct.Balance.LessThan(tx.Amount) {
		return declined(tx, fmt.Sprintf("Not enough balance to withdraw %s - balance is too low at %s", tx.Amount, acct.Balance))
	}

	// Stage 7: approved. The caller owns applying the balance delta.
	return model.Decision{TransactionID: tx.ID, Outcome: model.OutcomeApproved, Message: "OK"}
}

// issuingCountry resolves the instrument's issuing country to ISO2: the
// matched BIN range's country for cards, the IBAN country prefix for
// transfers.
func (p *Pipeline) issuingCountry(tx model.Transaction, bin model.BinRange) string {
	if tx.Instrument == model.InstrumentCard {
		return p.countries.Resolve(bin.Country)
	}
	return strings.ToUpper(tx.Reference[:2])
}

func (p *Pipeline) checkLimits(tx model.Transaction, acct model.Account) (model.Decision, bool) {
	var res limitResult
	switch tx.Kind {
	case model.KindDeposit:
		res = checkBounds(tx, acct.DepositMin, acct.DepositMax, overDeposit, underDeposit)
	case model.KindWithdraw:
		res = checkBounds(tx, acct.WithdrawMin, acct.WithdrawMax, overWithdraw, underWithdraw)
	}

	switch res {
	case overDeposit:
		return declined(tx, fmt.Sprintf("Amount %s is over the deposit limit of %s", tx.Amount, acct.DepositMax)), false
	case underDeposit:
		return declined(tx, fmt.Sprintf("Amount %s is under the deposit limit of %s", tx.Amount, acct.DepositMin)), false
	case overWithdraw:
		return declined(tx, fmt.Sprintf("Amount %s is over the withdraw limit of %s", tx.Amount, acct.WithdrawMax)), false
	case underWithdraw:
		return declined(tx, fmt.Sprintf("Amount %s is under the withdraw limit of %s", tx.Amount, acct.WithdrawMin)), false
	}
	return model.Decision{}, true
}

// checkBounds enforces min < amount <= max: the lower bound is exclusive,
// the upper inclusive.
func checkBounds(tx model.Transaction, min, max decimal.Decimal, over, under limitResult) limitResult {
	if tx.Amount.GreaterThan(max) {
		return over
	}
	if tx.Amount.LessThanOrEqual(min) {
		return under
	}
	return limitOK
}

func declined(tx model.Transaction, msg string) model.Decision {
	return model.Decision{TransactionID: tx.ID, Outcome: model.OutcomeDeclined, Message: msg}
}
