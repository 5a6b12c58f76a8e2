package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// DefaultMaxBody caps every response body read by Client.
const DefaultMaxBody = 32 << 20

// ErrBodyTooLarge is returned when a response body exceeds the client's cap.
var ErrBodyTooLarge = errors.New("response body too large")

// StatusError is returned for any response outside the 2xx range. Its message
// is the response body text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return e.Body
}

// Check passes successful responses through unchanged. Anything else is
// drained, closed, and turned into a *StatusError.
func Check(resp *http.Response) (*http.Response, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %d response body: %w", resp.StatusCode, err)
	}
	return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
}

// Client implements httpkit.ClientInterface on top of an *http.Client. Every
// response goes through Check, so callers see *StatusError with the upstream
// body text, and bodies are capped at maxBody bytes.
type Client struct {
	http    *http.Client
	maxBody int64
}

var _ httpkit.ClientInterface = (*Client)(nil)

// NewClient wraps hc. maxBody <= 0 uses DefaultMaxBody.
func NewClient(hc *http.Client, maxBody int64) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	return &Client{http: hc, maxBody: maxBody}
}

// DoRequest sends req and returns the successful body.
func (c *Client) DoRequest(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	resp, err = Check(resp)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", req.URL, ErrBodyTooLarge, c.maxBody)
	}
	return body, nil
}

// FetchBytes GETs url and returns the successful body.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.DoRequest(req)
}

// FetchAndDecodeJSON GETs url and decodes the successful body into v.
func (c *Client) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.DoRequest(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *Client) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return c.PostRawBodyAndFetchBytes(ctx, url, payload, "application/json")
}

func (c *Client) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.DoRequest(req)
}

// GetJSON fetches url through client and decodes the body into a new T.
func GetJSON[T any](ctx context.Context, client httpkit.ClientInterface, url string) (*T, error) {
	v := new(T)
	if err := client.FetchAndDecodeJSON(ctx, url, v); err != nil {
		return nil, err
	}
	return v, nil
}
