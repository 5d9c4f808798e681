package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"post_syncer/internal/domain"
)

const (
	uploadRoute     = "?rest_route=/rodut/v1/upload-media"
	createPostRoute = "?rest_route=/rodut/v1/create-post"

	headerTimestamp = "X-Aroot-Timestamp"
	headerSignature = "X-Aroot-Signature"
)

// Config describes one tenant's WordPress site.
type Config struct {
	WordpressURL  string
	SecretPhrase  string
	OperatorEmail string
	StripHashtags bool
	Timeout       time.Duration
	Now           func() time.Time
}

// Client publishes source media onto a tenant's WordPress site through the
// A-Root adapter plugin. One client per tenant; the signing key is derived
// from the tenant's secret phrase and site domain.
type Client struct {
	httpClient    *http.Client
	site          string
	baseURL       string
	signer        *Signer
	email         string
	stripHashtags bool
	logger        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	site := bareDomain(cfg.WordpressURL)
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		site:          site,
		baseURL:       "https://" + site,
		signer:        NewSigner(cfg.SecretPhrase, site, cfg.Now),
		email:         cfg.OperatorEmail,
		stripHashtags: cfg.StripHashtags,
		logger:        logger.With("component", "wordpress", "site", site),
	}
}

// Publish creates one post per media, dispatching on the media kind. A
// failed item is logged and skipped; the remaining items still publish.
func (c *Client) Publish(ctx context.Context, items []domain.Media) []domain.PublishResult {
	results := make([]domain.PublishResult, 0, len(items))

	for _, item := range items {
		var (
			link string
			err  error
		)
		switch item.Kind {
		case domain.KindImage, domain.KindVideo:
			link, err = c.postSingle(ctx, item)
		case domain.KindCarousel:
			link, err = c.postCarousel(ctx, item)
		default:
			continue
		}
		if err != nil {
			c.logger.Error("publish failed, skipping item",
				"media_id", item.ID,
				"kind", item.Kind,
				"error", err,
			)
			continue
		}

		results = append(results, domain.PublishResult{
			MediaID:       item.ID,
			Timestamp:     item.Timestamp,
			MediaURL:      item.MediaURL,
			Permalink:     item.Permalink,
			WordpressLink: link,
		})
	}

	return results
}

// CheckReachable probes the site's public posts endpoint. A failure here
// means the site is down or the adapter is broken, not a publish error.
func (c *Client) CheckReachable(ctx context.Context) error {
	endpoint := c.baseURL + "/wp-json/wp/v2/posts?per_page=1&page=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &AuthError{Site: c.site, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &AuthError{Site: c.site, Message: fmt.Sprintf("health check status %d", resp.StatusCode)}
	}
	return nil
}

func (c *Client) postSingle(ctx context.Context, item domain.Media) (string, error) {
	asset, err := c.transferMedia(ctx, item.MediaURL, item.Kind)
	if err != nil {
		return "", fmt.Errorf("transfer media: %w", err)
	}

	var embed string
	if item.Kind == domain.KindVideo {
		embed = VideoHTML(asset.SourceURL)
	} else {
		embed = ImageHTML(asset.SourceURL)
	}
	content := embed + ContentHTML(item.Caption, c.stripHashtags)

	return c.createPost(ctx, Title(item.Caption), content, asset.MediaID)
}

func (c *Client) postCarousel(ctx context.Context, item domain.Media) (string, error) {
	var assets []domain.UploadedAsset
	for _, child := range item.Children {
		if child.Kind != domain.KindImage && child.Kind != domain.KindVideo {
			continue
		}
		asset, err := c.transferMedia(ctx, child.MediaURL, child.Kind)
		if err != nil {
			return "", fmt.Errorf("transfer child %s: %w", child.ID, err)
		}
		assets = append(assets, *asset)
	}
	if len(assets) == 0 {
		return "", fmt.Errorf("carousel %s has no uploadable children", item.ID)
	}

	content := GalleryHTML(assets) + ContentHTML(item.Caption, c.stripHashtags)

	// The first uploaded asset becomes the featured one.
	return c.createPost(ctx, Title(item.Caption), content, assets[0].MediaID)
}

// transferMedia downloads the source file to a transient local file and
// re-uploads it to the target site.
func (c *Client) transferMedia(ctx context.Context, mediaURL string, kind domain.MediaKind) (*domain.UploadedAsset, error) {
	suffix := ".jpeg"
	contentType := "image/jpeg"
	if kind == domain.KindVideo {
		suffix = ".mp4"
		contentType = "video/mp4"
	}

	tmp, err := os.CreateTemp("", "aroot-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := c.download(ctx, mediaURL, tmp); err != nil {
		return nil, fmt.Errorf("download media: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind temp file: %w", err)
	}

	return c.uploadMedia(ctx, tmp, filepath.Base(tmp.Name()), contentType, kind)
}

func (c *Client) download(ctx context.Context, mediaURL string, dst io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: "media download failed"}
	}
	if _, err := io.Copy(dst, resp.Body); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	return nil
}

func (c *Client) uploadMedia(ctx context.Context, file io.Reader, filename, contentType string, kind domain.MediaKind) (*domain.UploadedAsset, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := writer.WriteField("email", c.email); err != nil {
		return nil, fmt.Errorf("write email field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	endpoint := c.baseURL + "/" + uploadRoute
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	// The file body is not part of the signed message; only the
	// timestamp, operator email, and filename are.
	timestamp, signature := c.signer.SignUpload(c.email, filename)
	req.Header.Set(headerTimestamp, timestamp)
	req.Header.Set(headerSignature, signature)

	var resp struct {
		ID        int64  `json:"id"`
		SourceURL string `json:"source_url"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("uploaded media", "target_id", resp.ID, "content_type", contentType)

	return &domain.UploadedAsset{
		MediaID:   resp.ID,
		Kind:      kind,
		SourceURL: resp.SourceURL,
	}, nil
}

func (c *Client) createPost(ctx context.Context, title, content string, featuredMedia int64) (string, error) {
	payload := struct {
		Title         string `json:"title"`
		Content       string `json:"content"`
		Status        string `json:"status"`
		FeaturedMedia int64  `json:"featured_media"`
	}{
		Title:         title,
		Content:       content,
		Status:        "publish",
		FeaturedMedia: featuredMedia,
	}

	// json.Marshal emits canonical compact JSON; the raw bytes sent on the
	// wire are exactly the signed bytes.
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal post: %w", err)
	}

	endpoint := c.baseURL + "/" + createPostRoute
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	timestamp, signature := c.signer.SignJSON(body)
	req.Header.Set(headerTimestamp, timestamp)
	req.Header.Set(headerSignature, signature)

	var resp struct {
		PostID  int64  `json:"post_id"`
		PostURL string `json:"post_url"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return "", err
	}

	c.logger.Info("created post", "post_id", resp.PostID, "link", resp.PostURL)

	return resp.PostURL, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Site: c.site, Message: string(body)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
