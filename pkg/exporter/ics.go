package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"
	_ "time/tzdata"

	"trainbot/pkg/railway"
	"trainbot/pkg/validate"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes one calendar event per train departing on date (DD-MM-YYYY).
// Trains whose times cannot be parsed are skipped.
func GenerateICS(records []railway.TrainRecord, date string, w io.Writer) error {
	// Indian Railways timetables are published in IST
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	day, err := validate.ParseDate(date, loc)
	if err != nil {
		return fmt.Errorf("invalid journey date %q: %w", date, err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	for i, t := range records {
		start, end, ok := journeyWindow(day, t)
		if !ok {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%s-%d@trainbot", t.Number, start.Format("20060102"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("🚆 %s %s", t.Number, t.Name))
		event.SetLocation(fmt.Sprintf("%s (%s)", t.OriginName, t.OriginCode))

		desc := []string{
			fmt.Sprintf("From: %s (%s) at %s", t.OriginName, t.OriginCode, t.DepartureTime),
			fmt.Sprintf("To: %s (%s) at %s", t.DestinationName, t.DestinationCode, t.ArrivalTime),
			fmt.Sprintf("Duration: %s", t.Duration),
		}
		if len(t.Classes) > 0 {
			desc = append(desc, "Classes: "+strings.Join(t.Classes, ", "))
		}
		event.SetDescription(strings.Join(desc, "\n"))
	}

	return cal.SerializeTo(w)
}

// journeyWindow places a train's departure and arrival on the calendar.
// The travel duration wins over the arrival clock time because it also
// covers journeys that span more than one night.
func journeyWindow(day time.Time, t railway.TrainRecord) (time.Time, time.Time, bool) {
	dep, ok := clockTime(day, t.DepartureTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	if d, ok := railway.ParseDuration(t.Duration); ok {
		return dep, dep.Add(d), true
	}

	arr, ok := clockTime(day, t.ArrivalTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if arr.Before(dep) {
		arr = arr.AddDate(0, 0, 1)
	}
	return dep, arr, true
}

func clockTime(day time.Time, hhmm string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), true
}
