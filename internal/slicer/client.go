package slicer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"time"
)

// Client provides access to the remote slicing service.
type Client interface {
	// Slice uploads a model and returns the sliced result.
	Slice(ctx context.Context, req SliceRequest) (*SliceResult, error)

	// Health fetches the service health report.
	Health(ctx context.Context) (*HealthStatus, error)

	// Available checks whether the service is reachable.
	Available(ctx context.Context) bool
}

// httpClient implements Client against the service's HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that talks to the slicing service named by
// cfg.Endpoint.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Slice(ctx context.Context, req SliceRequest) (*SliceResult, error) {
	start := time.Now()

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	result, err := c.doSlice(ctx, req)
	latency := time.Since(start).Milliseconds()

	if err == nil {
		c.observer.OnCallComplete(CallEvent{
			Op:        "slice",
			LatencyMs: latency,
			Success:   true,
		})
		return result, nil
	}

	c.observer.OnCallComplete(CallEvent{
		Op:        "slice",
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(err),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if isConnectionError(err) {
		return nil, ErrServiceUnavailable
	}
	return nil, err
}

func (c *httpClient) doSlice(ctx context.Context, req SliceRequest) (*SliceResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("model", req.ModelName)
	if err != nil {
		return nil, fmt.Errorf("creating model part: %w", err)
	}
	if _, err := part.Write(req.Model); err != nil {
		return nil, fmt.Errorf("writing model part: %w", err)
	}

	cfgJSON, err := json.Marshal(req.Config)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	if err := mw.WriteField("config", string(cfgJSON)); err != nil {
		return nil, fmt.Errorf("writing config part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	url := c.cfg.Endpoint + "/slice"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: httpResp.StatusCode, Body: string(respBody)}
	}

	var result SliceResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

func (c *httpClient) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	url := c.cfg.Endpoint + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observer.OnCallComplete(CallEvent{
			Op:        "health",
			LatencyMs: time.Since(start).Milliseconds(),
			Success:   false,
			ErrorCode: errorCode(err),
		})
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, ErrServiceUnavailable
		}
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	var health HealthStatus
	if err := json.Unmarshal(respBody, &health); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	c.observer.OnCallComplete(CallEvent{
		Op:        "health",
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   true,
	})
	return &health, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	health, err := c.Health(ctx)
	return err == nil && health.Status == "healthy"
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.Is(err, ErrServiceUnavailable), isConnectionError(err):
		return "UNAVAILABLE"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("STATUS_%d", statusErr.Code)
	default:
		return "UNKNOWN"
	}
}
