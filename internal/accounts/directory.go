// Package accounts provides in-memory lookup and balance bookkeeping over
// the account reference data of a batch.
package accounts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/payproc-dev/payproc/internal/model"
)

// Directory holds the accounts of one batch, keyed by ID and preserving
// input order for output serialization.
type Directory struct {
	order []string
	byID  map[string]*model.Account
}

// NewDirectory creates a Directory from a slice of accounts. A duplicate
// ID keeps the first occurrence, matching first-match lookup semantics
// elsewhere in the reference data.
func NewDirectory(accts []model.Account) *Directory {
	d := &Directory{byID: make(map[string]*model.Account, len(accts))}
	for i := range accts {
		a := accts[i]
		if _, seen := d.byID[a.ID]; seen {
			continue
		}
		d.byID[a.ID] = &a
		d.order = append(d.order, a.ID)
	}
	return d
}

// Get returns a snapshot of the account by ID.
func (d *Directory) Get(id string) (model.Account, bool) {
	a, ok := d.byID[id]
	if !ok {
		return model.Account{}, false
	}
	return *a, true
}

// Exists reports whether an account ID is known.
func (d *Directory) Exists(id string) bool {
	_, ok := d.byID[id]
	return ok
}

// All returns snapshots of every account in input order, with current
// balances.
func (d *Directory) All() []model.Account {
	out := make([]model.Account, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, *d.byID[id])
	}
	return out
}

// Adjust applies a signed balance delta to an account. Only the batch
// processor calls this, after a Decision has been committed.
func (d *Directory) Adjust(id string, delta decimal.Decimal) error {
	a, ok := d.byID[id]
	if !ok {
		return fmt.Errorf("adjusting balance: unknown account %q", id)
	}
	a.Balance = a.Balance.Add(delta)
	return nil
}
