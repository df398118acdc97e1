package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agentverse-browser/internal/config"
	"agentverse-browser/internal/model"
)

// Client is a read-only HTTP client for the catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog API client from config.
func NewClient(cfg *config.APIConfig) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// Platforms lists the source platforms known to the catalog.
func (c *Client) Platforms(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/platforms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AgentTypes lists the agent-type facet values.
func (c *Client) AgentTypes(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/agent-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContentTypes lists the content-type facet values.
func (c *Client) ContentTypes(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/content-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tags lists the tags present in the catalog.
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/tags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats fetches the catalog-wide counters.
func (c *Client) Stats(ctx context.Context) (*model.Stats, error) {
	var out model.Stats
	if err := c.get(ctx, "/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recent fetches the most recently indexed items.
func (c *Client) Recent(ctx context.Context, limit int) ([]model.ContentItem, error) {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	var out []model.ContentItem
	if err := c.get(ctx, "/recent", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Featured fetches editorially featured items.
func (c *Client) Featured(ctx context.Context, limit int) ([]model.ContentItem, error) {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	var out []model.ContentItem
	if err := c.get(ctx, "/featured", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search runs a paged catalog search. Empty facet fields are omitted from
// the query string.
func (c *Client) Search(ctx context.Context, params model.SearchParams) (*model.ResultPage, error) {
	var out model.ResultPage
	if err := c.get(ctx, "/search", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Content fetches a single item by id. Unknown ids yield ErrNotFound.
func (c *Client) Content(ctx context.Context, id int) (*model.ContentItem, error) {
	var out model.ContentItem
	if err := c.get(ctx, "/content/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get issues one GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNetwork, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && strings.HasPrefix(path, "/content/") {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s returned %d", ErrServer, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return nil
}
