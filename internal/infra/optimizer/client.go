package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/logging"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/tracing"
)

const optimizePath = "/optimize"

type Config struct {
	BaseURL        string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ Optimizer = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse optimizer URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("optimizer URL must be absolute: %q", cfg.BaseURL)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = optimizePath
	}

	return &Client{
		endpoint:   u.String(),
		httpClient: newHTTPClient(cfg.BaseURL, cfg),
	}, nil
}

// newTransport bounds dialing by the connect timeout and waiting for the
// response headers by the read timeout.
func newTransport(cfg Config) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = (&net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	t.TLSHandshakeTimeout = cfg.ConnectTimeout
	t.ResponseHeaderTimeout = cfg.ReadTimeout
	return t
}

func (c *Client) Optimize(ctx context.Context, req *Request) (Response, error) {
	ctx, span := tracing.StartExternalAPISpan(ctx, "optimize", c.endpoint)
	defer span.End()

	resp, err := c.optimize(ctx, req)
	tracing.RecordError(span, err)
	return resp, err
}

func (c *Client) optimize(ctx context.Context, req *Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal optimizer request: %w", err)
	}

	slog.DebugContext(ctx, "sending optimizer request",
		slog.String("url", c.endpoint),
		slog.Int("task_count", len(req.Tasks)),
		slog.Int("fixed_block_count", len(req.FixedBlocks)),
		slog.Int("current_slot", req.CurrentSlot),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	httpReq.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, httpReq)

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to optimizer",
			slog.String("url", c.endpoint),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrOptimizerUnavailable, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read optimizer response body",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrOptimizerUnavailable, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		slog.ErrorContext(ctx, "unexpected status code from optimizer",
			slog.String("url", c.endpoint),
			slog.Int("status_code", httpResp.StatusCode),
		)
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrOptimizerResponse, httpResp.StatusCode)
	}

	if err := validateResponse(raw); err != nil {
		slog.ErrorContext(ctx, "optimizer response rejected",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrOptimizerResponse, err)
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", domain.ErrOptimizerResponse, err)
	}

	for _, a := range out {
		if a.End <= a.Start {
			return nil, fmt.Errorf("%w: assignment %s has end %d <= start %d",
				domain.ErrOptimizerResponse, a.ID, a.End, a.Start)
		}
	}

	slog.DebugContext(ctx, "optimizer responded",
		slog.Int("assignment_count", len(out)),
		slog.Int64("latency_ms", time.Since(start).Milliseconds()),
	)

	return out, nil
}
