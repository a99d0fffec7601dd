package validate

import (
	"strings"
	"time"
	"unicode/utf8"

	"trainbot/pkg/clock"
)

// DateLayout is the DD-MM-YYYY format expected by the schedule API
const DateLayout = "02-01-2006"

// minCodeLength is the shortest station input that is worth sending upstream
const minCodeLength = 2

// Result holds the outcome of checking one search request.
// Suggestions[i] is the corrective hint for Issues[i].
type Result struct {
	Valid       bool
	Issues      []string
	Suggestions []string
}

func (r *Result) add(issue, suggestion string) {
	r.Issues = append(r.Issues, issue)
	r.Suggestions = append(r.Suggestions, suggestion)
}

// Validator checks user supplied search inputs against the current date.
type Validator struct {
	Clock clock.Clock
}

// New returns a Validator backed by the given clock, or the system clock if nil.
func New(c clock.Clock) *Validator {
	if c == nil {
		c = clock.Real{}
	}
	return &Validator{Clock: c}
}

// ParseDate strictly parses a DD-MM-YYYY date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// DateOK reports whether s is a well-formed journey date that is today or later.
func (v *Validator) DateOK(s string) bool {
	now := v.now()
	d, err := ParseDate(s, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// Validate collects every problem with the inputs instead of stopping at the first.
func (v *Validator) Validate(origin, destination, date string) Result {
	var res Result

	if utf8.RuneCountInString(strings.TrimSpace(origin)) < minCodeLength {
		res.add("Departure station code too short", "Use a 3-4 letter station code, e.g. NDLS")
	}
	if utf8.RuneCountInString(strings.TrimSpace(destination)) < minCodeLength {
		res.add("Destination station code too short", "Use a 3-4 letter station code, e.g. BCT")
	}
	if !v.DateOK(date) {
		res.add("Invalid date or date is in the past", "Use DD-MM-YYYY format with today's date or later")
	}

	res.Valid = len(res.Issues) == 0
	return res
}

func (v *Validator) now() time.Time {
	if v.Clock == nil {
		return time.Now()
	}
	return v.Clock.Now()
}
