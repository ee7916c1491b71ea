package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 1 << 20

// HTTPClient is an interface for making HTTP requests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestBuilder creates the request for one candidate against baseURL
type RequestBuilder func(ctx context.Context, baseURL string) (*http.Request, error)

// Candidate is one endpoint to try. Fields are gjson paths reported from a
// successful JSON body; PreviewLen > 0 keeps that many bytes of the body.
type Candidate struct {
	Description string
	Timeout     time.Duration
	Build       RequestBuilder
	Fields      []string
	PreviewLen  int
	DumpJSON    bool
}

type Outcome int

const (
	OutcomeReachable Outcome = iota
	OutcomeNotFound
	OutcomeOtherStatus
	OutcomeUnreachable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReachable:
		return "reachable"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeOtherStatus:
		return "other_status"
	case OutcomeUnreachable:
		return "unreachable"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Classify maps an HTTP status to an outcome
func Classify(status int) Outcome {
	switch {
	case status >= 200 && status < 300:
		return OutcomeReachable
	case status == http.StatusNotFound:
		return OutcomeNotFound
	}
	return OutcomeOtherStatus
}

// Result is what one candidate produced. Err is set only for Unreachable.
type Result struct {
	Description string
	Method      string
	URL         string
	StatusCode  int
	Outcome     Outcome
	Preview     string
	Fields      map[string]string
	JSON        string
	Err         error
}

type Prober struct {
	client HTTPClient
	logger zerolog.Logger
}

func New(logger zerolog.Logger, client HTTPClient) *Prober {
	if client == nil {
		client = NewHTTPClient()
	}
	return &Prober{client: client, logger: logger}
}

// Run tries every candidate in order, one request each. A failing candidate
// does not stop or influence the ones after it.
func (p *Prober) Run(ctx context.Context, baseURL string, candidates []Candidate) []Result {
	results := make([]Result, 0, len(candidates))
	for i, c := range candidates {
		res := p.probe(ctx, baseURL, c)
		p.report(i+1, res)
		results = append(results, res)
	}
	return results
}

func (p *Prober) probe(ctx context.Context, baseURL string, c Candidate) Result {
	res := Result{Description: c.Description, Outcome: OutcomeUnreachable}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := c.Build(ctx, baseURL)
	if err != nil {
		res.Err = fmt.Errorf("failed to build request: %w", err)
		return res
	}
	res.Method = req.Method
	res.URL = req.URL.String()

	resp, err := p.client.Do(req)
	if err != nil {
		res.Err = fmt.Errorf("request failed: %w", err)
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	res.Outcome = Classify(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		p.logger.Debug().Err(err).Str("url", res.URL).Msg("Failed to read full response body")
	}

	if c.PreviewLen > 0 {
		res.Preview = preview(body, c.PreviewLen)
	}

	if res.Outcome != OutcomeReachable || !gjson.ValidBytes(body) {
		return res
	}

	if len(c.Fields) > 0 {
		res.Fields = make(map[string]string, len(c.Fields))
		for _, path := range c.Fields {
			if v := gjson.GetBytes(body, path); v.Exists() {
				res.Fields[path] = v.String()
			}
		}
	}
	if c.DumpJSON {
		res.JSON = gjson.GetBytes(body, "@pretty").String()
	}

	return res
}

func (p *Prober) report(n int, res Result) {
	var ev *zerolog.Event
	switch res.Outcome {
	case OutcomeReachable:
		ev = p.logger.Info()
	case OutcomeUnreachable:
		ev = p.logger.Error().Err(res.Err)
	default:
		ev = p.logger.Warn()
	}

	ev = ev.Int("n", n).
		Str("method", res.Method).
		Str("url", res.URL).
		Str("outcome", res.Outcome.String())
	if res.StatusCode != 0 {
		ev = ev.Int("status", res.StatusCode)
	}
	if len(res.Fields) > 0 {
		fields := zerolog.Dict()
		for k, v := range res.Fields {
			fields = fields.Str(k, v)
		}
		ev = ev.Dict("fields", fields)
	}
	if res.Preview != "" {
		ev = ev.Str("preview", res.Preview)
	}

	switch res.Outcome {
	case OutcomeReachable:
		ev.Msg("✅ " + res.Description)
	case OutcomeNotFound, OutcomeUnreachable:
		ev.Msg("❌ " + res.Description)
	default:
		ev.Msg("⚠️  " + res.Description)
	}

	if res.JSON != "" {
		p.logger.Info().Msg(res.Description + " response:\n" + res.JSON)
	}
}

// Get builds a GET request for path
func Get(path string) RequestBuilder {
	return func(ctx context.Context, baseURL string) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	}
}

// PostJSON builds a POST request for path with payload encoded as JSON
func PostJSON(path string, payload interface{}) RequestBuilder {
	return func(ctx context.Context, baseURL string) (*http.Request, error) {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}
}

func preview(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
