package bins

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/payproc-dev/payproc/internal/model"
)

const (
	numFields = 5
	colName   = 0
	colFrom   = 1
	colTo     = 2
	colType   = 3
	colCtry   = 4
)

// ReadRanges reads the BIN range reference CSV.
func ReadRanges(r io.Reader) ([]model.BinRange, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bins CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var ranges []model.BinRange
	for i, rec := range records[1:] {
		b, err := UnmarshalRange(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ranges = append(ranges, b)
	}
	return ranges, nil
}

// UnmarshalRange converts a CSV row to a BinRange.
func UnmarshalRange(record []string) (model.BinRange, error) {
	if len(record) != numFields {
		return model.BinRange{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	from, err := strconv.ParseUint(record[colFrom], 10, 64)
	if err != nil {
		return model.BinRange{}, fmt.Errorf("parsing range_from %q: %w", record[colFrom], err)
	}

	to, err := strconv.ParseUint(record[colTo], 10, 64)
	if err != nil {
		return model.BinRange{}, fmt.Errorf("parsing range_to %q: %w", record[colTo], err)
	}

	return model.BinRange{
		Name:      record[colName],
		RangeFrom: from,
		RangeTo:   to,
		Category:  model.CardCategory(record[colType]),
		Country:   record[colCtry],
	}, nil
}
