// Package bins maps card-number prefixes to issuing-bank metadata via BIN
// range reference data.
package bins

import (
	"strconv"

	"github.com/payproc-dev/payproc/internal/model"
)

// Directory holds BIN ranges in file order. Lookups return the first
// containing range, so on (malformed) overlapping input the earlier range
// wins.
type Directory struct {
	ranges []model.BinRange
}

// NewDirectory creates a Directory from a slice of ranges.
func NewDirectory(ranges []model.BinRange) *Directory {
	return &Directory{ranges: ranges}
}

// Lookup resolves the first ten digits of cardNumber to a BIN range. A
// prefix shorter than ten characters or containing non-digits reports
// not-found; transaction construction rejects those before they get here.
func (d *Directory) Lookup(cardNumber string) (model.BinRange, bool) {
	if len(cardNumber) < 10 {
		return model.BinRange{}, false
	}
	prefix, err := strconv.ParseUint(cardNumber[:10], 10, 64)
	if err != nil {
		return model.BinRange{}, false
	}

	for _, r := range d.ranges {
		if r.Contains(prefix) {
			return r, true
		}
	}
	return model.BinRange{}, false
}

// All returns the ranges in file order.
func (d *Directory) All() []model.BinRange {
	return d.ranges
}
