package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"telemetry-gateway/internal/platform/logger"
	"telemetry-gateway/internal/platform/metrics"
	"telemetry-gateway/internal/platform/requestid"
	"telemetry-gateway/internal/telemetry/core/domain"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 10 << 20
)

// HTTPDoer is the subset of *http.Client used by the clients.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures an upstream client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient HTTPDoer
	Logger     *zerolog.Logger
	Metrics    *metrics.Metrics
}

// client issues single, bounded GET calls; it never retries.
type client struct {
	baseURL string
	timeout time.Duration
	doer    HTTPDoer
	log     zerolog.Logger
	metrics *metrics.Metrics
}

func newClient(opts Options) (*client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("upstream: base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("upstream: parse base url: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	doer := opts.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}

	log := logger.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &client{
		baseURL: base,
		timeout: timeout,
		doer:    doer,
		log:     log,
		metrics: opts.Metrics,
	}, nil
}

// get performs GET baseURL+path?params and hands a 2xx body to decode.
// Every failure is returned as *domain.UpstreamError; decode errors are
// reported as UpstreamDecode.
func (c *client) get(ctx context.Context, service, path string, params url.Values, decode func([]byte) error) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			var upErr *domain.UpstreamError
			if errors.As(err, &upErr) {
				outcome = upErr.Kind.String()
				c.logFailure(ctx, upErr, time.Since(start))
			}
		}
		c.metrics.ObserveUpstream(service, outcome, time.Since(start))
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.UpstreamError{Service: service, Kind: domain.UpstreamTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if id := requestid.From(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return transportError(service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return transportError(service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.UpstreamError{
			Service:    service,
			Kind:       domain.UpstreamHTTPStatus,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	if err := decode(body); err != nil {
		return &domain.UpstreamError{Service: service, Kind: domain.UpstreamDecode, Err: err}
	}

	return nil
}

func (c *client) logFailure(ctx context.Context, upErr *domain.UpstreamError, elapsed time.Duration) {
	ev := c.log.Warn().
		Str("service", upErr.Service).
		Str("kind", upErr.Kind.String()).
		Dur("elapsed", elapsed)
	if id := requestid.From(ctx); id != "" {
		ev = ev.Str("request_id", id)
	}
	if upErr.Kind == domain.UpstreamHTTPStatus {
		ev = ev.Int("status", upErr.StatusCode).Bytes("body", upErr.Body)
	}
	ev.Err(upErr.Err).Msg("upstream call failed")
}

func transportError(service string, err error) *domain.UpstreamError {
	kind := domain.UpstreamTransport
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = domain.UpstreamTimeout
	}
	return &domain.UpstreamError{Service: service, Kind: kind, Err: err}
}

func decodeJSON(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
