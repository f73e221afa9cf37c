package form

import (
	"regexp"
	"strings"
)

// stateZipRe matches the ", ST 12345" tail of a US mailing address.
var stateZipRe = regexp.MustCompile(`,\s*([A-Z]{2})\s+(\d{5})(?:-\d{4})?\b`)

// ParseState extracts the two-letter state code from a free-text address.
// Returns "" when the address does not carry a recognizable state+ZIP tail.
func ParseState(address string) string {
	m := stateZipRe.FindStringSubmatch(address)
	if m == nil {
		return ""
	}
	return m[1]
}

// ParseCity extracts the city token: the comma-separated segment immediately
// before the state+ZIP tail. Returns "" when no tail is present.
func ParseCity(address string) string {
	loc := stateZipRe.FindStringIndex(address)
	if loc == nil {
		return ""
	}
	head := address[:loc[0]]
	parts := strings.Split(head, ",")
	city := strings.TrimSpace(parts[len(parts)-1])
	return city
}

var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}

// StateName maps a two-letter abbreviation to the full state name. Unknown
// input is returned unchanged.
func StateName(code string) string {
	if name, ok := stateNames[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return name
	}
	return code
}
