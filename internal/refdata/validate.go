// Package refdata runs advisory consistency checks over a batch's
// reference data. Findings are reported, never fatal: a batch with odd
// reference data still processes, per the decline-not-crash error model.
package refdata

import (
	"fmt"

	"github.com/payproc-dev/payproc/internal/model"
)

// ValidationError describes a single reference-data inconsistency.
type ValidationError struct {
	Check       string
	Record      string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Check, e.Record, e.Description)
}

// ValidateAccounts checks account records: unique IDs, non-negative
// balances, and ordered non-negative limit bounds.
func ValidateAccounts(accts []model.Account) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(accts))
	for _, a := range accts {
		if seen[a.ID] {
			errs = append(errs, ValidationError{
				Check:       "duplicate-account",
				Record:      a.ID,
				Description: "account ID appears more than once",
			})
		}
		seen[a.ID] = true

		if a.Balance.IsNegative() {
			errs = append(errs, ValidationError{
				Check:       "negative-balance",
				Record:      a.ID,
				Description: fmt.Sprintf("balance %s is negative", a.Balance),
			})
		}

		if a.DepositMin.IsNegative() || a.WithdrawMin.IsNegative() {
			errs = append(errs, ValidationError{
				Check:       "negative-limit",
				Record:      a.ID,
				Description: "limit thresholds must be non-negative",
			})
		}
		if a.DepositMin.GreaterThan(a.DepositMax) {
			errs = append(errs, ValidationError{
				Check:       "limit-order",
				Record:      a.ID,
				Description: fmt.Sprintf("deposit_min %s exceeds deposit_max %s", a.DepositMin, a.DepositMax),
			})
		}
		if a.WithdrawMin.GreaterThan(a.WithdrawMax) {
			errs = append(errs, ValidationError{
				Check:       "limit-order",
				Record:      a.ID,
				Description: fmt.Sprintf("withdraw_min %s exceeds withdraw_max %s", a.WithdrawMin, a.WithdrawMax),
			})
		}

		if len(a.Country) != 2 {
			errs = append(errs, ValidationError{
				Check:       "country-code",
				Record:      a.ID,
				Description: fmt.Sprintf("country %q is not a two-letter code", a.Country),
			})
		}
	}

	return errs
}

// ValidateBinRanges checks BIN range records: ordered bounds, ten-digit
// width, three-letter countries, known categories, and overlaps between
// ranges (overlap resolution is first-match, so overlaps deserve a look).
func ValidateBinRanges(ranges []model.BinRange) []ValidationError {
	var errs []ValidationError

	const maxPrefix = 9_999_999_999 // largest ten-digit prefix

	for _, b := range ranges {
		if b.RangeFrom > b.RangeTo {
			errs = append(errs, ValidationError{
				Check:       "range-order",
				Record:      b.Name,
				Description: fmt.Sprintf("range_from %d exceeds range_to %d", b.RangeFrom, b.RangeTo),
			})
		}
		if b.RangeTo > maxPrefix {
			errs = append(errs, ValidationError{
				Check:       "range-width",
				Record:      b.Name,
				Description: fmt.Sprintf("range_to %d is wider than ten digits", b.RangeTo),
			})
		}
		if b.Category != model.CategoryDebit && b.Category != model.CategoryCredit {
			errs = append(errs, ValidationError{
				Check:       "card-category",
				Record:      b.Name,
				Description: fmt.Sprintf("unknown category %q", b.Category),
			})
		}
		if len(b.Country) != 3 {
			errs = append(errs, ValidationError{
				Check:       "country-code",
				Record:      b.Name,
				Description: fmt.Sprintf("country %q is not a three-letter code", b.Country),
			})
		}
	}

	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			a, b := ranges[i], ranges[j]
			if a.RangeFrom <= b.RangeTo && b.RangeFrom <= a.RangeTo {
				errs = append(errs, ValidationError{
					Check:       "range-overlap",
					Record:      fmt.Sprintf("%s/%s", a.Name, b.Name),
					Description: "BIN ranges overlap; the earlier range wins lookups",
				})
			}
		}
	}

	return errs
}

// ValidateCountryTable checks that every mapping pairs a three-letter key
// with a two-letter value.
func ValidateCountryTable(table map[string]string) []ValidationError {
	var errs []ValidationError
	for iso3, iso2 := range table {
		if len(iso3) != 3 || len(iso2) != 2 {
			errs = append(errs, ValidationError{
				Check:       "country-code",
				Record:      iso3,
				Description: fmt.Sprintf("mapping %q -> %q is not ISO3 -> ISO2 shaped", iso3, iso2),
			})
		}
	}
	return errs
}
