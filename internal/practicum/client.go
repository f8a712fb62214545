package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	logx "hwbot/pkg/logx"
)

// DefaultEndpoint is the only endpoint this bot ever queries.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const defaultTimeout = 30 * time.Second

type Config struct {
	// Endpoint overrides DefaultEndpoint (tests only).
	Endpoint string
	Token    string
	// Timeout bounds each request so a stalled connection can't block the
	// poll loop forever.
	Timeout time.Duration
}

// Client issues one GET per poll cycle. It does not retry; retry is the
// outer fixed-interval loop.
type Client struct {
	cfg  Config
	http *http.Client
	log  logx.Logger
}

func NewClient(cfg Config, log logx.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// Fetch queries homework statuses changed since from (Unix seconds) and
// returns the decoded JSON payload as generic data; shape checking is
// CheckResponse's job.
func (c *Client) Fetch(ctx context.Context, from int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "OAuth "+c.cfg.Token)

	c.log.Debug("querying status endpoint", logx.Int64("from_date", from))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &RemoteError{Status: resp.StatusCode}
	}

	var v any
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return v, nil
}
