package model

// CardCategory classifies the card a BIN range issues.
type CardCategory string

const (
	CategoryDebit  CardCategory = "DC"
	CategoryCredit CardCategory = "CC"
)

// BinRange maps an inclusive range over the first ten card digits to the
// issuing bank. Static reference data; ranges are assumed non-overlapping
// in well-formed input, and lookups take the first match in file order.
type BinRange struct {
	Name      string
	RangeFrom uint64
	RangeTo   uint64
	Category  CardCategory
	Country   string // ISO3
}

// Contains reports whether the ten-digit card prefix falls in the range.
func (b BinRange) Contains(prefix uint64) bool {
	return b.RangeFrom <= prefix && prefix <= b.RangeTo
}
