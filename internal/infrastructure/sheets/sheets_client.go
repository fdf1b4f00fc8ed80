package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"murilov3d/internal/domain/entities"
	"murilov3d/internal/usecase/interfaces"
)

const defaultTimeout = 25 * time.Second

// Client implements the action-based protocol of the Apps Script web app
// backing the spreadsheet mirror.
//
// Reads are GET requests with an action query parameter; writes are POSTs
// with the action inside the JSON body. The body is sent as text/plain
// because Apps Script web apps reject preflighted content types.
type Client struct {
	http *http.Client
}

var _ interfaces.ISheetsClient = (*Client)(nil)

func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: defaultTimeout}}
}

// envelope is the common response shape: every reply carries ok, and the
// payload field depends on the action. History and Costs are pointers so an
// absent payload is distinguishable from an empty one; callers overwrite
// local state with these, so a payload-less reply must surface as an error,
// never as "empty".
type envelope struct {
	OK      bool                    `json:"ok"`
	Message string                  `json:"message"`
	Error   string                  `json:"error"`
	History *[]entities.QuoteRecord `json:"history"`
	Costs   *entities.CostCatalog   `json:"costs"`
}

func (c *Client) Ping(ctx context.Context, endpoint string) (string, error) {
	env, err := c.get(ctx, endpoint, "ping")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) GetHistory(ctx context.Context, endpoint string) ([]entities.QuoteRecord, error) {
	env, err := c.get(ctx, endpoint, "getHistory")
	if err != nil {
		return nil, err
	}
	if env.History == nil {
		return nil, fmt.Errorf("sheets getHistory: response has no history payload")
	}
	return *env.History, nil
}

func (c *Client) GetCosts(ctx context.Context, endpoint string) (entities.CostCatalog, error) {
	env, err := c.get(ctx, endpoint, "getCosts")
	if err != nil {
		return entities.CostCatalog{}, err
	}
	if env.Costs == nil {
		return entities.CostCatalog{}, fmt.Errorf("sheets getCosts: response has no costs payload")
	}
	return *env.Costs, nil
}

func (c *Client) SaveHistory(ctx context.Context, endpoint string, history []entities.QuoteRecord) error {
	if history == nil {
		history = []entities.QuoteRecord{}
	}
	_, err := c.post(ctx, endpoint, map[string]any{
		"action":  "saveHistory",
		"history": history,
	})
	return err
}

func (c *Client) SaveCosts(ctx context.Context, endpoint string, costs entities.CostCatalog) error {
	_, err := c.post(ctx, endpoint, map[string]any{
		"action": "saveCosts",
		"costs":  costs,
	})
	return err
}

func (c *Client) get(ctx context.Context, endpoint, action string) (envelope, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return envelope{}, fmt.Errorf("sheets %s: invalid endpoint: %w", action, err)
	}
	q := u.Query()
	q.Set("action", action)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return envelope{}, fmt.Errorf("sheets %s: %w", action, err)
	}
	return c.do(req, action)
}

func (c *Client) post(ctx context.Context, endpoint string, body map[string]any) (envelope, error) {
	action, _ := body["action"].(string)
	payload, err := json.Marshal(body)
	if err != nil {
		return envelope{}, fmt.Errorf("sheets %s: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return envelope{}, fmt.Errorf("sheets %s: %w", action, err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	return c.do(req, action)
}

func (c *Client) do(req *http.Request, action string) (envelope, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("sheets %s: %w", action, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 10<<20))
	if err != nil {
		return envelope{}, fmt.Errorf("sheets %s: %w", action, err)
	}
	if res.StatusCode != http.StatusOK {
		return envelope{}, fmt.Errorf("sheets %s: unexpected status %d", action, res.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, fmt.Errorf("sheets %s: malformed response: %w", action, err)
	}
	if !env.OK {
		if env.Error != "" {
			return envelope{}, fmt.Errorf("sheets %s: remote error: %s", action, env.Error)
		}
		return envelope{}, fmt.Errorf("sheets %s: remote did not acknowledge", action)
	}
	return env, nil
}
