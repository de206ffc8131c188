package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/quillcv/quill/internal/output"
)

// apiVersion is the Notion-Version header value this client speaks.
const apiVersion = "2022-06-28"

// defaultBaseURL is the Notion API endpoint.
const defaultBaseURL = "https://api.notion.com"

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a token-authenticated Notion API client.
type Client struct {
	token      string
	baseURL    string
	httpClient HTTPDoer
}

// New creates a client for the given integration token.
func New(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// NewWithDoer creates a client with an injected HTTP doer and base URL.
// Empty baseURL keeps the production endpoint.
func NewWithDoer(token string, doer HTTPDoer, baseURL string) *Client {
	c := New(token)
	c.httpClient = doer
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

// queryRequest is the body of a database query call.
type queryRequest struct {
	StartCursor string         `json:"start_cursor,omitempty"`
	Filter      map[string]any `json:"filter,omitempty"`
}

// pageList is the paginated response of a database query.
type pageList struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// blockList is the paginated response of a block children call.
type blockList struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

// QueryDatabase returns every page of the database where the named checkbox
// property is set. Pagination is followed until the API reports no more
// results, so callers always receive the complete ordered list.
func (c *Client) QueryDatabase(ctx context.Context, databaseID, checkboxProp string) ([]Page, error) {
	var pages []Page
	cursor := ""
	for {
		body := queryRequest{StartCursor: cursor}
		if checkboxProp != "" {
			body.Filter = map[string]any{
				"property": checkboxProp,
				"checkbox": map[string]any{"equals": true},
			}
		}

		respBody, err := c.post(ctx, "/v1/databases/"+url.PathEscape(databaseID)+"/query", body)
		if err != nil {
			return nil, err
		}

		var list pageList
		if err := json.Unmarshal(respBody, &list); err != nil {
			return nil, output.NewSystemErrorWithCause("failed to parse database query response", err)
		}

		pages = append(pages, list.Results...)
		if !list.HasMore {
			return pages, nil
		}
		cursor = list.NextCursor
	}
}

// BlockChildren returns the direct children of a block or page, following
// pagination. Children of children are not fetched; see ResolveChildren.
func (c *Client) BlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	var blocks []Block
	cursor := ""
	for {
		path := "/v1/blocks/" + url.PathEscape(blockID) + "/children?page_size=100"
		if cursor != "" {
			path += "&start_cursor=" + url.QueryEscape(cursor)
		}

		respBody, err := c.get(ctx, path)
		if err != nil {
			return nil, err
		}

		var list blockList
		if err := json.Unmarshal(respBody, &list); err != nil {
			return nil, output.NewSystemErrorWithCause("failed to parse block children response", err)
		}

		blocks = append(blocks, list.Results...)
		if !list.HasMore {
			return blocks, nil
		}
		cursor = list.NextCursor
	}
}

// ResolveChildren fetches and attaches the child sequence of every block
// flagged has_children, recursively, returning a fully materialized tree.
// The conversion layer operates only on materialized trees.
func (c *Client) ResolveChildren(ctx context.Context, blocks []Block) ([]Block, error) {
	resolved := make([]Block, len(blocks))
	for i, b := range blocks {
		if b.HasChildren {
			children, err := c.BlockChildren(ctx, b.ID)
			if err != nil {
				return nil, err
			}
			children, err = c.ResolveChildren(ctx, children)
			if err != nil {
				return nil, err
			}
			b.Children = children
		}
		resolved[i] = b
	}
	return resolved, nil
}

// PageBlocks fetches the complete materialized block tree of a page.
func (c *Client) PageBlocks(ctx context.Context, pageID string) ([]Block, error) {
	blocks, err := c.BlockChildren(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return c.ResolveChildren(ctx, blocks)
}

// post performs an authenticated POST with a JSON body.
func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to marshal request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// get performs an authenticated GET.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create request", err)
	}
	return c.do(req)
}

// do executes a request with auth headers and reads the body.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Truncate error body to prevent sensitive data leakage and memory issues
		errBody := string(respBody)
		if len(errBody) > 500 {
			errBody = errBody[:500]
		}
		return nil, output.NewSystemError(fmt.Sprintf("Notion API error (status %d): %s", resp.StatusCode, errBody))
	}

	return respBody, nil
}
