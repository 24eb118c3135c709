package network

import (
	"errors"
	"strings"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/jimezsa/salarycli/internal/models"
)

const DefaultUserAgent = "salarycli"

var ErrInvalidTimeout = errors.New("timeout must not be negative")

type Client struct {
	http      tls_client.HttpClient
	userAgent string
}

// NewClient builds the outbound transport. A zero timeout disables the
// request deadline.
func NewClient(cfg models.ServiceConfig) (*Client, error) {
	if cfg.Timeout < 0 {
		return nil, ErrInvalidTimeout
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(timeoutSeconds(cfg.Timeout)),
	}
	if proxy := strings.TrimSpace(cfg.Proxy); proxy != "" {
		options = append(options, tls_client.WithProxyUrl(proxy))
	}

	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, err
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{http: client, userAgent: userAgent}, nil
}

func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.http.Do(req)
}

func timeoutSeconds(timeout time.Duration) int {
	if timeout <= 0 {
		return 0
	}
	seconds := int(timeout / time.Second)
	if timeout%time.Second != 0 {
		seconds++
	}
	return seconds
}
