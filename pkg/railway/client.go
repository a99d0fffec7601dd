package railway

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trainbot/pkg/clock"
	"trainbot/pkg/stations"
	"trainbot/pkg/validate"
)

// DefaultHost is the RapidAPI host serving the IRCTC schedule endpoints
const DefaultHost = "irctc1.p.rapidapi.com"

var baseURL = "https://" + DefaultHost

// Client talks to the IRCTC train schedule API on RapidAPI.
// Every call makes exactly one request; there is no retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	validator  *validate.Validator
	logger     *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHost points the client at another RapidAPI host. It sets both the
// request URL and the x-rapidapi-host header.
func WithHost(host string) Option {
	return func(c *Client) {
		c.host = host
		c.baseURL = "https://" + host
	}
}

// WithBaseURL overrides only the request URL, keeping the host header.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock sets the clock used to reject past journey dates.
func WithClock(cl clock.Clock) Option {
	return func(c *Client) {
		c.validator = validate.New(cl)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a schedule client authenticated with the given RapidAPI key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		host:       DefaultHost,
		apiKey:     apiKey,
		validator:  validate.New(nil),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchTrains looks up trains between two stations on a DD-MM-YYYY date.
// Problems never escape as errors: they come back as a Failure.
func (c *Client) FetchTrains(originCode, destinationCode, date string) ScheduleResponse {
	if strings.TrimSpace(originCode) == "" || strings.TrimSpace(destinationCode) == "" || strings.TrimSpace(date) == "" {
		return Failure{Message: "Missing details: departure station, destination station and date are all required"}
	}
	if !c.validator.DateOK(date) {
		return Failure{Message: "Invalid date or date is in the past. Use DD-MM-YYYY format"}
	}

	from := stations.Resolve(originCode)
	to := stations.Resolve(destinationCode)

	query := url.Values{}
	query.Set("fromStationCode", from)
	query.Set("toStationCode", to)
	query.Set("dateOfJourney", strings.TrimSpace(date))
	reqURL := fmt.Sprintf("%s/api/v3/trainBetweenStations?%s", c.baseURL, query.Encode())

	c.logger.Debug("fetching trains", "url", reqURL)

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return Failure{Message: fmt.Sprintf("Connection error: %v", err)}
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("schedule request failed", "error", err)
		return Failure{Message: fmt.Sprintf("Connection error: %v", err)}
	}
	defer resp.Body.Close()

	c.logger.Debug("schedule response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Failure{Message: fmt.Sprintf("API Error: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure{Message: fmt.Sprintf("Connection error: failed to read response: %v", err)}
	}

	var trainsResp trainsResponse
	if err := json.Unmarshal(body, &trainsResp); err != nil {
		return Failure{Message: fmt.Sprintf("Connection error: failed to decode response: %v", err)}
	}

	// The API answers 200 with status=false for unknown stations and quota problems
	if trainsResp.Status != nil && !*trainsResp.Status {
		msg := trainsResp.Message
		if msg == "" {
			msg = "request rejected"
		}
		return Failure{Message: "API Error: " + msg}
	}

	records := make([]TrainRecord, 0, len(trainsResp.Data))
	for _, t := range trainsResp.Data {
		records = append(records, t.record())
	}

	c.logger.Debug("decoded trains", "count", len(records))
	return Trains{Records: records}
}
