package stations

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Station pairs a common station name with its Indian Railways code.
type Station struct {
	Name string
	Code string
}

// nameToCode maps upper-cased station or city names to station codes
var nameToCode = map[string]string{
	"NEW DELHI":         "NDLS",
	"DELHI":             "DLI",
	"OLD DELHI":         "DLI",
	"HAZRAT NIZAMUDDIN": "NZM",
	"MUMBAI":            "CSMT",
	"MUMBAI CENTRAL":    "MMCT",
	"MUMBAI CST":        "CSMT",
	"BANDRA TERMINUS":   "BDTS",
	"CHENNAI":           "MAS",
	"CHENNAI CENTRAL":   "MAS",
	"HOWRAH":            "HWH",
	"KOLKATA":           "KOAA",
	"SEALDAH":           "SDAH",
	"BANGALORE":         "SBC",
	"BENGALURU":         "SBC",
	"HYDERABAD":         "HYB",
	"SECUNDERABAD":      "SC",
	"PUNE":              "PUNE",
	"AHMEDABAD":         "ADI",
	"JAIPUR":            "JP",
	"LUCKNOW":           "LKO",
	"KANPUR":            "CNB",
	"PATNA":             "PNBE",
	"BHOPAL":            "BPL",
	"AGRA":              "AGC",
	"AGRA CANTT":        "AGC",
	"VARANASI":          "BSB",
	"AMRITSAR":          "ASR",
	"GUWAHATI":          "GHY",
}

// normalize trims the input and upper-cases it the same way for lookups and fall-through
func normalize(input string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(input))
}

// Resolve maps a station name to its code. Unknown inputs are assumed to
// already be codes and are returned upper-cased.
func Resolve(input string) string {
	key := normalize(input)
	if code, ok := nameToCode[key]; ok {
		return code
	}
	return key
}

// Known returns every mapped name sorted alphabetically.
func Known() []Station {
	known := make([]Station, 0, len(nameToCode))
	for name, code := range nameToCode {
		known = append(known, Station{Name: name, Code: code})
	}
	sort.Slice(known, func(i, j int) bool {
		return known[i].Name < known[j].Name
	})
	return known
}
