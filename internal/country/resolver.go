// Package country resolves three-letter ISO country codes to their
// two-letter equivalents from a static table.
package country

import "strings"

// Resolver maps ISO3 country codes to ISO2. The table is supplied by the
// caller once per batch; validation logic never touches the filesystem.
type Resolver struct {
	iso3ToIso2 map[string]string
}

// NewResolver creates a Resolver from an ISO3 -> ISO2 table.
func NewResolver(table map[string]string) *Resolver {
	m := make(map[string]string, len(table))
	for iso3, iso2 := range table {
		m[strings.ToUpper(iso3)] = strings.ToUpper(iso2)
	}
	return &Resolver{iso3ToIso2: m}
}

// Resolve returns the ISO2 code for iso3. Unknown codes return the input
// unchanged so downstream country-equality checks degrade to a mismatch
// instead of failing the batch.
func (r *Resolver) Resolve(iso3 string) string {
	if iso2, ok := r.iso3ToIso2[strings.ToUpper(iso3)]; ok {
		return iso2
	}
	return iso3
}

// Len returns the number of mapped codes.
func (r *Resolver) Len() int {
	return len(r.iso3ToIso2)
}
