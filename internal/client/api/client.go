// Package api is the typed client for the deskline REST endpoints. It is
// what the helpdesk and storefront services use to talk to the server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"deskline/internal/querysync"
	"deskline/internal/shared/errors"
)

// Client is the deskline API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// NewClient creates a new API client for the given base URL
// (e.g., "http://localhost:4100").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTickets retrieves a page of tickets for the given query state.
func (c *Client) ListTickets(ctx context.Context, query querysync.TicketQuery) (*TicketPage, error) {
	endpoint := c.baseURL + "/tickets" + encodeParams(query.Encode())

	var page TicketPage
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTicket retrieves a single ticket.
func (c *Client) GetTicket(ctx context.Context, id string) (*Ticket, error) {
	endpoint := fmt.Sprintf("%s/tickets/%s", c.baseURL, url.PathEscape(id))

	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListTicketLog retrieves the change log for a ticket, newest first.
func (c *Client) ListTicketLog(ctx context.Context, ticketID string) ([]LogEntry, error) {
	endpoint := c.baseURL + "/tickets-log?ticketId=" + url.QueryEscape(ticketID)

	var entries []LogEntry
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListAgents retrieves all agents, sorted by name.
func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	var agents []Agent
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/agents", nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// ChangeTicketStatus patches a ticket's status with a mandatory comment.
// The response is returned as a patch so callers can shallow-merge it
// into their displayed ticket.
func (c *Client) ChangeTicketStatus(ctx context.Context, id, status, comment string) (*TicketPatch, error) {
	endpoint := fmt.Sprintf("%s/tickets/%s", c.baseURL, url.PathEscape(id))
	body := statusChangeRequest{Status: status, Comment: comment}

	var patch TicketPatch
	if err := c.doRequest(ctx, http.MethodPatch, endpoint, body, &patch); err != nil {
		return nil, err
	}
	return &patch, nil
}

// ListItems retrieves the full catalog.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// doRequest performs an HTTP request and decodes the response. Non-2xx
// responses carrying a structured {"error": "..."} body surface as typed
// application errors so callers can show the server's message verbatim.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.NewInternalError("failed to marshal request", err.Error())
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.NewInternalError("failed to create request", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewNetworkError("request failed", err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewNetworkError("failed to read response", err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.NewNetworkError("failed to decode response", err.Error())
		}
	}

	return nil
}

func (c *Client) decodeError(statusCode int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		switch statusCode {
		case http.StatusBadRequest:
			return errors.NewValidationError(eb.Error)
		case http.StatusNotFound:
			return errors.NewNotFoundError(eb.Error)
		default:
			return errors.NewNetworkError(eb.Error)
		}
	}

	return errors.NewNetworkError(fmt.Sprintf("unexpected status %d", statusCode))
}

func encodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return "?" + values.Encode()
}
