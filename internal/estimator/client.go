package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/url"
	"strconv"
	"strings"
	"syscall"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/salarycli/internal/models"
	"github.com/rs/zerolog"
)

const (
	DefaultEndpoint = "http://127.0.0.1:8000/api/salary"
	DefaultCurrency = "THB"

	helloPath    = "/api/hello"
	maxBodyBytes = 1 << 20
)

// Doer sends one HTTP request. *network.Client satisfies it.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

type Client struct {
	doer     Doer
	endpoint string
	currency string
	logger   zerolog.Logger
}

func New(doer Doer, cfg models.ServiceConfig, logger zerolog.Logger) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	currency := strings.TrimSpace(cfg.DefaultCurrency)
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Client{
		doer:     doer,
		endpoint: endpoint,
		currency: currency,
		logger:   logger.With().Str("component", "estimator").Logger(),
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Estimate posts input to the estimation service and maps the reply. Every
// failure except context cancellation is returned as *Error.
func (c *Client) Estimate(ctx context.Context, input models.EstimateRequest) (models.EstimateResult, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return models.EstimateResult{}, &Error{Kind: KindUnknown, Err: err}
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.EstimateResult{}, &Error{Kind: KindUnknown, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("endpoint", c.endpoint).RawJSON("payload", payload).Msg("sending estimate request")

	status, body, err := c.roundTrip(ctx, req)
	if err != nil {
		return models.EstimateResult{}, err
	}
	if status < 200 || status > 299 {
		return models.EstimateResult{}, &Error{Kind: KindHTTP, Status: status, Detail: serviceDetail(body)}
	}

	var decoded models.EstimateResponse
	if err := decodeJSON(body, &decoded); err != nil {
		return models.EstimateResult{}, &Error{Kind: KindUnknown, Err: fmt.Errorf("decode response: %w", err)}
	}
	c.logger.Debug().Int("status", status).Bytes("body", body).Msg("estimate response")

	if decoded.Salary == nil {
		return models.EstimateResult{}, &Error{Kind: KindMissingData}
	}
	salary, err := coerceSalary(decoded.Salary)
	if err != nil {
		return models.EstimateResult{}, &Error{Kind: KindUnknown, Err: err}
	}

	currency := c.currency
	if decoded.Currency != nil && strings.TrimSpace(*decoded.Currency) != "" {
		currency = strings.TrimSpace(*decoded.Currency)
	}

	return models.EstimateResult{Salary: salary, Currency: currency}, nil
}

// Ping calls the service health endpoint next to the estimate endpoint and
// returns its greeting.
func (c *Client) Ping(ctx context.Context) (string, error) {
	target, err := HelloURL(c.endpoint)
	if err != nil {
		return "", &Error{Kind: KindUnknown, Err: err}
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return "", &Error{Kind: KindUnknown, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	status, body, err := c.roundTrip(ctx, req)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", &Error{Kind: KindHTTP, Status: status, Detail: serviceDetail(body)}
	}

	var hello models.HelloResponse
	if err := decodeJSON(body, &hello); err != nil {
		return "", &Error{Kind: KindUnknown, Err: fmt.Errorf("decode response: %w", err)}
	}
	return hello.Message, nil
}

// HelloURL swaps the path of the estimate endpoint for the health path.
func HelloURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint %q is not an absolute URL", endpoint)
	}
	u.Path = helloPath
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

func (c *Client) roundTrip(ctx context.Context, req *fhttp.Request) (int, []byte, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return 0, nil, c.requestError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, c.requestError(ctx, err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) requestError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return context.Canceled
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if IsTransportError(err) {
		c.logger.Warn().Err(err).Str("endpoint", c.endpoint).Msg("estimation service unreachable")
		return &Error{Kind: KindTransport, Err: err}
	}
	c.logger.Warn().Err(err).Str("endpoint", c.endpoint).Msg("estimate request failed")
	return &Error{Kind: KindUnknown, Err: err}
}

// IsTransportError reports whether err means the request never reached the
// service: refused or reset connections, DNS failures, dial errors and
// transport-level timeouts.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, context.DeadlineExceeded):
		return true
	}
	return false
}

func decodeJSON(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}

func coerceSalary(value any) (float64, error) {
	var (
		salary float64
		err    error
	)
	switch v := value.(type) {
	case json.Number:
		salary, err = v.Float64()
	case float64:
		salary = v
	case string:
		salary, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("unexpected salary value of type %T", value)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid salary value %v: %w", value, err)
	}
	if math.IsNaN(salary) || math.IsInf(salary, 0) {
		return 0, fmt.Errorf("invalid salary value %v", value)
	}
	return salary, nil
}

// serviceDetail extracts the error text the service puts in failure bodies,
// either {"error": "..."} or {"detail": {...}}.
func serviceDetail(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	var decoded models.EstimateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(decoded.Error); msg != "" {
		return msg
	}
	if decoded.Detail == nil {
		return ""
	}
	if text, ok := decoded.Detail.(string); ok {
		return strings.TrimSpace(text)
	}
	raw, err := json.Marshal(decoded.Detail)
	if err != nil {
		return ""
	}
	return string(raw)
}
