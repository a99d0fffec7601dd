package railway

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// TrainRecord is one scheduled train on the queried route
type TrainRecord struct {
	Number          string
	Name            string
	OriginCode      string
	OriginName      string
	DepartureTime   string // "16:55"
	DestinationCode string
	DestinationName string
	ArrivalTime     string // "08:35"
	Duration        string // elapsed "HH:MM", may be unparsable
	DistanceKm      *int
	HaltCount       *int // nil when the API omitted it
	RunningDays     []string
	Classes         []string
}

// Halts returns the halt count, treating an absent value as zero.
func (t TrainRecord) Halts() int {
	if t.HaltCount == nil {
		return 0
	}
	return *t.HaltCount
}

// ScheduleResponse is either Trains or Failure. Use a type switch to tell them apart.
type ScheduleResponse interface {
	isScheduleResponse()
}

// Trains is the successful result of a schedule lookup
type Trains struct {
	Records []TrainRecord
}

// Failure carries a user-facing description of why the lookup failed
type Failure struct {
	Message string
}

func (Trains) isScheduleResponse()  {}
func (Failure) isScheduleResponse() {}

// trainsResponse is the envelope returned by /api/v3/trainBetweenStations
type trainsResponse struct {
	Status  *bool      `json:"status"`
	Message string     `json:"message"`
	Data    []apiTrain `json:"data"`
}

type apiTrain struct {
	TrainNumber     string   `json:"train_number"`
	TrainName       string   `json:"train_name"`
	From            string   `json:"from"`
	FromStationName string   `json:"from_station_name"`
	FromStd         string   `json:"from_std"`
	To              string   `json:"to"`
	ToStationName   string   `json:"to_station_name"`
	ToSta           string   `json:"to_sta"`
	Duration        string   `json:"duration"`
	Distance        flexInt  `json:"distance"`
	HaltStn         flexInt  `json:"halt_stn"`
	RunDays         []string `json:"run_days"`
	ClassType       []string `json:"class_type"`
}

func (a apiTrain) record() TrainRecord {
	return TrainRecord{
		Number:          a.TrainNumber,
		Name:            a.TrainName,
		OriginCode:      a.From,
		OriginName:      a.FromStationName,
		DepartureTime:   a.FromStd,
		DestinationCode: a.To,
		DestinationName: a.ToStationName,
		ArrivalTime:     a.ToSta,
		Duration:        a.Duration,
		DistanceKm:      a.Distance.ptr(),
		HaltCount:       a.HaltStn.ptr(),
		RunningDays:     a.RunDays,
		Classes:         a.ClassType,
	}
}

// flexInt accepts both 1384 and "1384". Null, "", missing and non-numeric
// placeholders such as "N/A" leave it unset.
type flexInt struct {
	value int
	set   bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		// Some entries carry decimals like "1384.0"
		fl, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return nil
		}
		n = int(fl)
	}

	f.value = n
	f.set = true
	return nil
}

func (f flexInt) ptr() *int {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}
