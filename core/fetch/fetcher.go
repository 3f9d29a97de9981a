package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// envelope is the upstream response framing: a status code mirror, the
// payload, optional paging, and an optional application-level error that may
// appear even inside an HTTP 200 body.
type envelope struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Paging *paging         `json:"paging,omitempty"`
	Error  *apiError       `json:"error,omitempty"`
}

type paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type apiError struct {
	Message string `json:"message"`
}

// Request identifies one upstream call.
type Request struct {
	Path  string
	Query url.Values
}

// Fetcher wraps upstream calls with retry, backoff, and rate-limit aware
// waiting. Rate-limited responses back off exponentially (base * 2^attempt);
// generic transient failures back off linearly (base * attempt). An
// application error inside a well-formed response is never retried.
type Fetcher struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
	sleep      func(time.Duration)
}

// NewFetcher creates a fetcher with strict connect and response timeouts.
func NewFetcher(cfg Config, logger *zap.Logger) *Fetcher {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Fetcher{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		logger: logger,
		sleep:  time.Sleep,
	}
}

// Do performs the request with up to cfg.MaxAttempts attempts and returns the
// decoded result payload. Paged listings are handled by the typed client, not
// here; Do returns a single envelope's result along with its paging header.
func (f *Fetcher) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	result, _, err := f.do(ctx, req)
	return result, err
}

func (f *Fetcher) do(ctx context.Context, req Request) (json.RawMessage, *paging, error) {
	maxAttempts := f.cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	baseDelay := time.Duration(f.cfg.BaseDelayMS) * time.Millisecond

	var lastErr *Error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, pg, err := f.attempt(ctx, req)
		if err == nil {
			return result, pg, nil
		}

		fe, ok := err.(*Error)
		if !ok {
			return nil, nil, err
		}
		if fe.Terminal {
			return nil, nil, fe
		}
		lastErr = fe

		if attempt == maxAttempts {
			break
		}

		var wait time.Duration
		if fe.RateLimited {
			wait = baseDelay * time.Duration(1<<attempt)
		} else {
			wait = baseDelay * time.Duration(attempt)
		}
		f.logger.Warn("fetch attempt failed, retrying",
			zap.String("path", req.Path),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(fe),
		)
		f.sleep(wait)
	}

	// Attempt budget exhausted; the last transient error becomes terminal.
	lastErr.Terminal = true
	return nil, nil, lastErr
}

func (f *Fetcher) attempt(ctx context.Context, req Request) (json.RawMessage, *paging, error) {
	u := strings.TrimRight(f.cfg.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, &Error{Path: req.Path, Message: err.Error(), Terminal: true, Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+f.cfg.APIKey)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, &Error{Path: req.Path, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Path: req.Path, Status: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, nil, &Error{Path: req.Path, Status: resp.StatusCode, Message: "rate limited", RateLimited: true}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, &Error{Path: req.Path, Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, &Error{Path: req.Path, Status: resp.StatusCode, Message: "undecodable response body", Err: err}
	}

	// An error object inside a 200 body is an application error, not a
	// transport hiccup. It will not succeed on retry.
	if env.Error != nil {
		return nil, nil, &Error{Path: req.Path, Status: resp.StatusCode, Message: env.Error.Message, Terminal: true}
	}

	return env.Result, env.Paging, nil
}
