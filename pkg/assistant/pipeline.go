// Package assistant chains the three steps of a train search: validate the
// request, fetch and format the trains, and finalize the reply for display.
package assistant

import (
	"strings"

	"trainbot/pkg/railway"
	"trainbot/pkg/stations"
	"trainbot/pkg/validate"
)

// SearchRequest is one traveler query as typed by the user
type SearchRequest struct {
	Origin      string
	Destination string
	Date        string // DD-MM-YYYY
}

// Fetcher looks up trains between two stations
type Fetcher interface {
	FetchTrains(originCode, destinationCode, date string) railway.ScheduleResponse
}

// Outcome is the result of the fetch-and-format step
type Outcome struct {
	OriginCode      string
	DestinationCode string
	Date            string
	Response        railway.ScheduleResponse
	Listing         string
	Recommendation  string
}

// Records returns the fetched trains, or nil if the lookup failed.
func (o *Outcome) Records() []railway.TrainRecord {
	if o == nil {
		return nil
	}
	if t, ok := o.Response.(railway.Trains); ok {
		return t.Records
	}
	return nil
}

// Reply is everything the pipeline produced for one request.
// Outcome is nil when validation failed and nothing was fetched.
type Reply struct {
	Validation validate.Result
	Outcome    *Outcome
	Text       string
}

// Pipeline runs validate -> fetch+format -> finalize in that fixed order
type Pipeline struct {
	fetcher   Fetcher
	validator *validate.Validator
	finalizer Finalizer
}

// NewPipeline wires the steps together. A nil finalizer means PlainFinalizer.
func NewPipeline(fetcher Fetcher, validator *validate.Validator, finalizer Finalizer) *Pipeline {
	if validator == nil {
		validator = validate.New(nil)
	}
	if finalizer == nil {
		finalizer = PlainFinalizer{}
	}
	return &Pipeline{
		fetcher:   fetcher,
		validator: validator,
		finalizer: finalizer,
	}
}

// Validate is the first step.
func (p *Pipeline) Validate(req SearchRequest) validate.Result {
	return p.validator.Validate(req.Origin, req.Destination, req.Date)
}

// FetchAndFormat is the second step. It resolves station names, queries the
// schedule API and renders the listing and recommendations.
func (p *Pipeline) FetchAndFormat(req SearchRequest) Outcome {
	out := Outcome{
		OriginCode:      stations.Resolve(req.Origin),
		DestinationCode: stations.Resolve(req.Destination),
		Date:            strings.TrimSpace(req.Date),
	}

	out.Response = p.fetcher.FetchTrains(out.OriginCode, out.DestinationCode, out.Date)
	out.Listing = railway.FormatForDisplay(out.Response)
	out.Recommendation = railway.Recommend(out.Records())
	return out
}

// Finalize is the third step.
func (p *Pipeline) Finalize(validation validate.Result, outcome *Outcome) string {
	return p.finalizer.Finalize(validation, outcome)
}

// Run executes all three steps. Fetching is skipped when validation fails.
func (p *Pipeline) Run(req SearchRequest) Reply {
	reply := Reply{Validation: p.Validate(req)}
	if reply.Validation.Valid {
		out := p.FetchAndFormat(req)
		reply.Outcome = &out
	}
	reply.Text = p.Finalize(reply.Validation, reply.Outcome)
	return reply
}
