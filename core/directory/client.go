package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fioparser/core/reconcile"

	"go.uber.org/zap"
)

const contactsPath = "/api/v4/contacts"

// maxPages bounds a single listing in case the API keeps returning next links.
const maxPages = 10000

// Client talks to the amoCRM v4 contacts API.
type Client struct {
	baseURL    string
	pageLimit  int
	tokens     TokenSource
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the configured account.
func NewClient(cfg Config, tokens TokenSource, logger *zap.Logger) (*Client, error) {
	baseURL := cfg.Endpoint()
	if baseURL == "" {
		return nil, errors.New("directory domain or base_url must be set")
	}
	if tokens == nil {
		tokens = StaticToken(cfg.AccessToken)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		pageLimit:  cfg.limit(),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger.With(zap.String("adapter", "amocrm")),
	}, nil
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Authorized reports whether a token is currently available.
func (c *Client) Authorized(ctx context.Context) bool {
	tok, err := c.tokens.Token(ctx)
	return err == nil && tok != ""
}

// ListContacts returns contacts created at or after since, oldest first.
func (c *Client) ListContacts(ctx context.Context, since time.Time) ([]reconcile.Contact, error) {
	q := url.Values{}
	q.Set("filter[created_at][from]", strconv.FormatInt(since.Unix(), 10))
	q.Set("order", "created_at")
	return c.list(ctx, q)
}

// ListAllContacts returns every contact, following pagination to the end.
func (c *Client) ListAllContacts(ctx context.Context) ([]reconcile.Contact, error) {
	q := url.Values{}
	q.Set("order", "created_at")
	return c.list(ctx, q)
}

// UpdateNameFields sets the first and last name of a contact.
// Client-side rejections wrap reconcile.ErrClientRejected.
func (c *Client) UpdateNameFields(ctx context.Context, contactID int64, firstName, lastName string) error {
	body, err := json.Marshal(updateRequest{FirstName: firstName, LastName: lastName})
	if err != nil {
		return fmt.Errorf("amocrm: encode update: %w", err)
	}

	path := contactsPath + "/" + strconv.FormatInt(contactID, 10)
	resp, err := c.do(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readAPIError(resp)
	}

	c.logger.Debug("Contact patched",
		zap.Int64("contact_id", contactID),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}

func (c *Client) list(ctx context.Context, q url.Values) ([]reconcile.Contact, error) {
	q.Set("limit", strconv.Itoa(c.pageLimit))

	var contacts []reconcile.Contact
	for page := 1; page <= maxPages; page++ {
		q.Set("page", strconv.Itoa(page))

		batch, hasNext, err := c.fetchPage(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("amocrm: list contacts page %d: %w", page, err)
		}
		contacts = append(contacts, batch...)

		if !hasNext {
			break
		}
	}

	c.logger.Debug("Contacts listed", zap.Int("count", len(contacts)))
	return contacts, nil
}

func (c *Client) fetchPage(ctx context.Context, q url.Values) ([]reconcile.Contact, bool, error) {
	resp, err := c.do(ctx, http.MethodGet, contactsPath, q, nil)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	// amoCRM answers an empty listing with 204 and no body.
	if resp.StatusCode == http.StatusNoContent {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, readAPIError(resp)
	}

	var p contactsPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, false, fmt.Errorf("decode json: %w", err)
	}

	out := make([]reconcile.Contact, 0, len(p.Embedded.Contacts))
	for _, ac := range p.Embedded.Contacts {
		out = append(out, ac.toContact())
	}
	return out, p.Links.Next != nil && p.Links.Next.Href != "", nil
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body []byte) (*http.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("amocrm: %w", err)
	}

	reqURL := c.baseURL + path
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("amocrm: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("amocrm: %s %s: %w", method, path, err)
	}
	return resp, nil
}
