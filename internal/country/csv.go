package country

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	numFields = 3
	colName   = 0
	colIso2   = 1
	colIso3   = 2
)

// ReadTable reads a country-code CSV (name,alpha2,alpha3) into an
// ISO3 -> ISO2 table. Reference exports pad and quote the code cells
// (` "EE"`), so each cell is stripped of surrounding space and quotes.
func ReadTable(r io.Reader) (map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	// Reference exports pad cells before the opening quote, which a strict
	// reader rejects as a bare quote.
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading country CSV: %w", err)
	}

	if len(records) <= 1 {
		return map[string]string{}, nil
	}

	table := make(map[string]string, len(records)-1)
	for i, rec := range records[1:] {
		iso2 := cleanCode(rec[colIso2])
		iso3 := cleanCode(rec[colIso3])
		if iso2 == "" || iso3 == "" {
			return nil, fmt.Errorf("row %d: empty country code", i+2)
		}
		table[iso3] = iso2
	}
	return table, nil
}

func cleanCode(cell string) string {
	return strings.ToUpper(strings.Trim(strings.TrimSpace(cell), `"`))
}

// WriteTable writes an ISO3 -> ISO2 table as a country-code CSV, sorted
// by ISO3 code. The name column is left empty; readers ignore it.
func WriteTable(w io.Writer, table map[string]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"name", "alpha2", "alpha3"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	iso3s := make([]string, 0, len(table))
	for iso3 := range table {
		iso3s = append(iso3s, iso3)
	}
	sort.Strings(iso3s)

	for _, iso3 := range iso3s {
		if err := cw.Write([]string{"", table[iso3], iso3}); err != nil {
			return fmt.Errorf("writing %s: %w", iso3, err)
		}
	}
	return cw.Error()
}
