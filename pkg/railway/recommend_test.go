package railway

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"02:30", 2*time.Hour + 30*time.Minute, true},
		{"00:05", 5 * time.Minute, true},
		{"26:10", 26*time.Hour + 10*time.Minute, true},
		{" 1:45 ", time.Hour + 45*time.Minute, true},
		{"unknown", 0, false},
		{"", 0, false},
		{"10:75", 0, false},
		{"1:2:3", 0, false},
		{"-1:00", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDuration(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestRecommend_Empty(t *testing.T) {
	assert.Equal(t, "", Recommend(nil))
	assert.Equal(t, "", Recommend([]TrainRecord{}))
}

func TestRecommend_Fastest(t *testing.T) {
	records := []TrainRecord{
		{Number: "1", Name: "SLOW", Duration: "02:30"},
		{Number: "2", Name: "QUICK", Duration: "01:45"},
		{Number: "3", Name: "MYSTERY", Duration: "unknown"},
	}

	lines := strings.Split(Recommend(records), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Fastest: 2 QUICK (01:45)", lines[0])
}

func TestRecommend_AllDurationsUnknown(t *testing.T) {
	records := []TrainRecord{
		{Number: "1", Name: "A", Duration: "n/a"},
		{Number: "2", Name: "B", Duration: ""},
	}
	assert.Contains(t, Recommend(records), "Fastest: 1 A (duration unknown)")
}

func TestRecommend_MostClasses(t *testing.T) {
	records := []TrainRecord{
		{Number: "1", Name: "A", Classes: []string{"SL"}},
		{Number: "2", Name: "B", Classes: []string{"SL", "3A", "2A"}},
		{Number: "3", Name: "C", Classes: []string{"1A", "2A", "3A"}},
	}
	// B and C tie, first occurrence wins
	assert.Contains(t, Recommend(records), "Most classes: 2 B (3 classes)")
}

func TestRecommend_LeastHalts(t *testing.T) {
	records := []TrainRecord{
		{Number: "1", Name: "A"},
		{Number: "2", Name: "B", HaltCount: intPtr(7)},
		{Number: "3", Name: "C", HaltCount: intPtr(2)},
		{Number: "4", Name: "D", HaltCount: intPtr(2)},
	}
	assert.Contains(t, Recommend(records), "Least halts: 3 C (2 halts)")
}

func TestRecommend_AllHaltsUnknown(t *testing.T) {
	records := []TrainRecord{
		{Number: "1", Name: "A"},
		{Number: "2", Name: "B"},
	}
	assert.Contains(t, Recommend(records), "Least halts: 1 A (halts unknown)")
}

func TestRecommend_ConsidersRecordsBeyondDisplayCap(t *testing.T) {
	var records []TrainRecord
	for i := 1; i <= 7; i++ {
		records = append(records, sampleTrain(i))
	}
	records[6].Duration = "09:00"
	records[6].HaltCount = intPtr(1)

	out := Recommend(records)
	assert.Contains(t, out, "Fastest: 12007 EXPRESS 7 (09:00)")
	assert.Contains(t, out, "Least halts: 12007 EXPRESS 7 (1 halt)")
}

func TestRecommend_Deterministic(t *testing.T) {
	records := []TrainRecord{sampleTrain(1), sampleTrain(2), sampleTrain(3)}
	assert.Equal(t, Recommend(records), Recommend(records))
	assert.Contains(t, Recommend(records), "Fastest: 12001 EXPRESS 1 (16:10)")
	assert.Contains(t, Recommend(records), "Most classes: 12001 EXPRESS 1 (0 classes)")
}
