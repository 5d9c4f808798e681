package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"post_syncer/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "publisher"),
	}, nil
}

// SyncEvent announces one media that became a target-site post.
type SyncEvent struct {
	Event         string    `json:"event"`
	TenantID      int64     `json:"tenant_id"`
	TenantName    string    `json:"tenant_name"`
	MediaID       string    `json:"media_id"`
	Permalink     string    `json:"permalink"`
	WordpressLink string    `json:"wordpress_link"`
	Timestamp     time.Time `json:"timestamp"`
}

// SummaryEvent announces the end of a batch run.
type SummaryEvent struct {
	Event     string    `json:"event"`
	RunID     string    `json:"run_id"`
	Tenants   int       `json:"tenants"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Expired   int       `json:"expired"`
	Published int       `json:"published"`
	Skipped   int       `json:"skipped"`
	Duration  string    `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *RabbitMQ) PublishResult(ctx context.Context, tenant *domain.Tenant, result domain.PublishResult) error {
	event := SyncEvent{
		Event:         "post_synced",
		TenantID:      tenant.ID,
		TenantName:    tenant.Name,
		MediaID:       result.MediaID,
		Permalink:     result.Permalink,
		WordpressLink: result.WordpressLink,
		Timestamp:     time.Now().UTC(),
	}

	if err := r.publish(ctx, event); err != nil {
		return err
	}

	r.logger.Debug("published sync event",
		"tenant_id", tenant.ID,
		"media_id", result.MediaID,
	)
	return nil
}

func (r *RabbitMQ) PublishSummary(ctx context.Context, stats *domain.BatchStats) error {
	event := SummaryEvent{
		Event:     "batch_completed",
		RunID:     stats.RunID.String(),
		Tenants:   stats.Tenants,
		Succeeded: stats.Succeeded,
		Failed:    stats.Failed,
		Expired:   stats.Expired,
		Published: stats.Published,
		Skipped:   stats.Skipped,
		Duration:  stats.Duration.String(),
		Timestamp: time.Now().UTC(),
	}
	return r.publish(ctx, event)
}

func (r *RabbitMQ) publish(ctx context.Context, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
