package railway

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// unknownDuration sorts unparsable durations after every real one
const unknownDuration = time.Duration(math.MaxInt64)

// ParseDuration parses an elapsed "HH:MM" travel time.
func ParseDuration(s string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, true
}

func durationKey(t TrainRecord) time.Duration {
	if d, ok := ParseDuration(t.Duration); ok {
		return d
	}
	return unknownDuration
}

func haltKey(t TrainRecord) int {
	if t.HaltCount == nil {
		return math.MaxInt
	}
	return *t.HaltCount
}

// Recommend picks the fastest train, the one with the most classes and the
// one with the fewest halts across all records. Ties go to the earlier record.
// It returns "" when there is nothing to recommend.
func Recommend(records []TrainRecord) string {
	if len(records) == 0 {
		return ""
	}

	fastest, mostClasses, leastHalts := 0, 0, 0
	for i := 1; i < len(records); i++ {
		if durationKey(records[i]) < durationKey(records[fastest]) {
			fastest = i
		}
		if len(records[i].Classes) > len(records[mostClasses].Classes) {
			mostClasses = i
		}
		if haltKey(records[i]) < haltKey(records[leastHalts]) {
			leastHalts = i
		}
	}

	f := records[fastest]
	durationStr := "duration unknown"
	if _, ok := ParseDuration(f.Duration); ok {
		durationStr = f.Duration
	}

	c := records[mostClasses]
	n := len(c.Classes)

	h := records[leastHalts]
	haltStr := "halts unknown"
	if h.HaltCount != nil {
		haltStr = fmt.Sprintf("%d %s", *h.HaltCount, plural(*h.HaltCount, "halt", "halts"))
	}

	lines := []string{
		fmt.Sprintf("Fastest: %s (%s)", trainLabel(f), durationStr),
		fmt.Sprintf("Most classes: %s (%d %s)", trainLabel(c), n, plural(n, "class", "classes")),
		fmt.Sprintf("Least halts: %s (%s)", trainLabel(h), haltStr),
	}
	return strings.Join(lines, "\n")
}

func trainLabel(t TrainRecord) string {
	return strings.TrimSpace(t.Number + " " + t.Name)
}
