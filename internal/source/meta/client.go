package meta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"post_syncer/internal/config"
	"post_syncer/internal/domain"
)

// LinkedAccount identifies the business account behind an authorization.
type LinkedAccount struct {
	ID   string
	Name string
}

// Client talks to the Meta Graph API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	clientID       string
	clientSecret   string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a Graph API client from config.
func New(cfg config.MetaConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		clientID:       cfg.ClientID,
		clientSecret:   cfg.ClientSecret,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.Retry.MaxAttempts,
		initialBackoff: cfg.Retry.InitialBackoff,
		maxBackoff:     cfg.Retry.MaxBackoff,
		logger:         logger.With("component", "meta"),
	}
}

// ExchangeLongLivedToken swaps a short-lived token from the browser flow
// for a long-lived one that the batch can keep using.
func (c *Client) ExchangeLongLivedToken(ctx context.Context, shortToken string) (string, error) {
	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("fb_exchange_token", shortToken)
	params.Set("client_id", c.clientID)
	params.Set("client_secret", c.clientSecret)

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/oauth/access_token", params, &resp); err != nil {
		return "", fmt.Errorf("exchange token: %w", err)
	}
	return resp.AccessToken, nil
}

// ResolveLinkedAccount finds the instagram business account among the
// authorized pages. Returns ErrAccountNotFound when no page carries one,
// which the caller surfaces differently from API failures.
func (c *Client) ResolveLinkedAccount(ctx context.Context, token string) (*LinkedAccount, error) {
	params := url.Values{}
	params.Set("fields", "accounts{name,instagram_business_account}")
	params.Set("access_token", token)

	var resp accountsResponse
	if err := c.do(ctx, http.MethodGet, "/me", params, &resp); err != nil {
		return nil, fmt.Errorf("resolve account: %w", err)
	}

	for _, page := range resp.Accounts.Data {
		if page.InstagramBusinessAccount != nil && page.InstagramBusinessAccount.ID != "" {
			return &LinkedAccount{ID: page.InstagramBusinessAccount.ID, Name: page.Name}, nil
		}
	}
	return nil, ErrAccountNotFound
}

// FetchMedia requests one page of published media including carousel
// children and returns it oldest-first. An account with no media yields an
// empty slice, not an error.
func (c *Client) FetchMedia(ctx context.Context, token, accountID string) ([]domain.Media, error) {
	params := url.Values{}
	params.Set("fields", "id,caption,media_url,timestamp,media_type,permalink,children{id,media_url,media_type}")
	params.Set("limit", fmt.Sprintf("%d", c.pageSize))
	params.Set("access_token", token)

	var resp mediaListResponse
	if err := c.doWithRetry(ctx, http.MethodGet, "/"+accountID+"/media", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}

	c.logger.Debug("fetched media page", "account_id", accountID, "count", len(resp.Data))

	return c.transform(resp.Data), nil
}

func (c *Client) doWithRetry(ctx context.Context, method, path string, params url.Values, out any) error {
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.do(ctx, method, path, params, out)
		if err == nil {
			return nil
		}
		// Classified API errors are terminal; retrying cannot fix an
		// expired token or a bad request.
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return err
		}
		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classify(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// classify wraps a non-2xx body into an APIError carrying the platform's
// machine-readable code and subcode.
func classify(status int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &APIError{StatusCode: status, Message: string(body)}
	}
	return &APIError{
		StatusCode: status,
		Code:       envelope.Error.Code,
		Subcode:    envelope.Error.ErrorSubcode,
		Message:    envelope.Error.Message,
	}
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

// transform maps the Graph payload onto domain media, reversed so that the
// oldest item comes first. The API returns newest-first; downstream filters
// and publish order rely on oldest-first.
func (c *Client) transform(items []mediaItem) []domain.Media {
	media := make([]domain.Media, 0, len(items))

	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		ts, err := time.Parse("2006-01-02T15:04:05-0700", item.Timestamp)
		if err != nil {
			// Some responses carry RFC3339 with a colon in the offset.
			ts, err = time.Parse(time.RFC3339, item.Timestamp)
		}
		if err != nil {
			c.logger.Warn("failed to parse timestamp",
				"media_id", item.ID,
				"timestamp", item.Timestamp,
			)
			continue
		}

		m := domain.Media{
			ID:        item.ID,
			MediaURL:  item.MediaURL,
			Timestamp: ts,
			Kind:      domain.MediaKind(item.MediaType),
			Permalink: item.Permalink,
		}
		if item.Caption != nil {
			m.Caption = *item.Caption
		}
		if item.Children != nil {
			for _, child := range item.Children.Data {
				m.Children = append(m.Children, domain.MediaChild{
					ID:       child.ID,
					MediaURL: child.MediaURL,
					Kind:     domain.MediaKind(child.MediaType),
				})
			}
		}

		media = append(media, m)
	}

	return media
}
