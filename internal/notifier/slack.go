package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"post_syncer/internal/config"
)

// Slack posts batch alerts and informational messages to an incoming
// webhook. Delivery failures are logged and swallowed: a broken alert
// channel must never fail a batch.
type Slack struct {
	webhookURL string
	mention    string
	username   string
	client     *http.Client
	logger     *slog.Logger
}

func NewSlack(cfg config.SlackConfig, logger *slog.Logger) *Slack {
	return &Slack{
		webhookURL: cfg.WebhookURL,
		mention:    cfg.Mention,
		username:   cfg.Username,
		client:     &http.Client{Timeout: 5 * time.Second},
		logger:     logger.With("component", "slack"),
	}
}

type payload struct {
	IconEmoji string `json:"icon_emoji"`
	Username  string `json:"username"`
	Text      string `json:"text"`
}

// SendAlert posts a mention-prefixed failure notice.
func (s *Slack) SendAlert(ctx context.Context, text string) {
	if s.mention != "" {
		text = fmt.Sprintf("<@%s>\n%s", s.mention, text)
	}
	s.post(ctx, payload{
		IconEmoji: ":cold_sweat:",
		Username:  s.username,
		Text:      text,
	})
}

// SendMessage posts a low-urgency informational notice.
func (s *Slack) SendMessage(ctx context.Context, text string) {
	s.post(ctx, payload{
		IconEmoji: ":incoming_envelope:",
		Username:  s.username,
		Text:      text,
	})
}

func (s *Slack) post(ctx context.Context, p payload) {
	if s.webhookURL == "" {
		s.logger.Debug("webhook not configured, dropping message")
		return
	}

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("failed to marshal payload", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		s.logger.Error("failed to create request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("failed to deliver message", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("slack rejected message", "status", resp.StatusCode)
	}
}
