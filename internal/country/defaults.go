package country

// DefaultTable returns a built-in ISO3 -> ISO2 table covering the
// countries that appear in bin-range reference data. Workspaces can
// replace it with a full table via the countries CSV.
func DefaultTable() map[string]string {
	return map[string]string{
		"AUT": "AT",
		"BEL": "BE",
		"BGR": "BG",
		"CHE": "CH",
		"CZE": "CZ",
		"DEU": "DE",
		"DNK": "DK",
		"ESP": "ES",
		"EST": "EE",
		"FIN": "FI",
		"FRA": "FR",
		"GBR": "GB",
		"GRC": "GR",
		"HRV": "HR",
		"HUN": "HU",
		"IRL": "IE",
		"ITA": "IT",
		"LTU": "LT",
		"LUX": "LU",
		"LVA": "LV",
		"NLD": "NL",
		"NOR": "NO",
		"POL": "PL",
		"PRT": "PT",
		"ROU": "RO",
		"SVK": "SK",
		"SVN": "SI",
		"SWE": "SE",
		"USA": "US",
	}
}
