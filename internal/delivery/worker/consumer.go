package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rescue/config"
	"rescue/internal/delivery"
	"rescue/internal/delivery/worker/handler"
	"rescue/internal/domain/constants"
	"rescue/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerPrefetch   = 50
	maxReconnectDelay  = 30 * time.Second
	baseReconnectDelay = time.Second
)

// PushMessageHandler processes one decoded push event
type PushMessageHandler interface {
	Process(ctx context.Context, event *service.PushEvent, attributeRequestID string) error
}

type rabbitMQConsumer struct {
	url     string
	queue   string
	handler PushMessageHandler
	logger  *slog.Logger

	ctx context.Context
}

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewRabbitMQConsumer creates the push queue consumer. It serves nothing unless the
// rabbitmq provider is configured.
func NewRabbitMQConsumer(params ConsumerParams) delivery.Delivery {
	ctx, cancel := context.WithCancel(context.Background())

	c := &rabbitMQConsumer{
		handler: params.PushHandler,
		logger:  params.Logger,
		ctx:     ctx,
	}

	if cfg := params.Cfg.PubSub; cfg != nil && cfg.Provider == constants.PubSubProviderRabbitMQ {
		c.url = cfg.RabbitMQURL
		c.queue = cfg.Queue
		if c.queue == "" {
			c.queue = constants.DefaultPushQueue
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return c
}

// Serve consumes until the worker stops, reconnecting with exponential backoff
func (c *rabbitMQConsumer) Serve(ctx context.Context) error {
	if c.url == "" {
		return nil
	}

	backoff := baseReconnectDelay
	for {
		connected, err := c.consume()
		if c.ctx.Err() != nil {
			return nil
		}

		if connected {
			backoff = baseReconnectDelay
		}
		c.logger.WarnContext(ctx, "[RabbitMQ] Consumer disconnected, reconnecting",
			slog.Duration("backoff", backoff),
			slog.Any("error", err),
		)

		select {
		case <-c.ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxReconnectDelay)
	}
}

// consume runs for one connection's lifetime. connected reports whether consuming started.
func (c *rabbitMQConsumer) consume() (connected bool, err error) {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return false, errors.Wrap(err, "failed to dial rabbitmq")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return false, errors.Wrap(err, "failed to open rabbitmq channel")
	}
	defer ch.Close()

	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		return false, errors.Wrap(err, "failed to set prefetch")
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return false, errors.Wrapf(err, "failed to declare queue %s", c.queue)
	}

	deliveries, err := ch.ConsumeWithContext(c.ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return false, errors.Wrap(err, "failed to start consuming")
	}

	c.logger.InfoContext(c.ctx, "[RabbitMQ] Consuming push queue", slog.String("queue", c.queue))

	for {
		select {
		case <-c.ctx.Done():
			return true, nil
		case d, open := <-deliveries:
			if !open {
				return true, errors.New("deliveries channel closed")
			}
			c.handle(d)
		}
	}
}

func (c *rabbitMQConsumer) handle(d amqp.Delivery) {
	var event service.PushEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.logger.ErrorContext(c.ctx, "[RabbitMQ] Dropping malformed push event",
			slog.String("messageId", d.MessageId),
			slog.Any("error", err),
		)
		_ = d.Nack(false, false)

		return
	}

	requestID, _ := d.Headers["request_id"].(string)
	err := c.handler.Process(c.ctx, &event, requestID)
	switch {
	case err == nil, !handler.IsRetryable(err):
		_ = d.Ack(false)
	case d.Redelivered:
		// One redelivery only, so a poisoned event cannot cycle forever.
		_ = d.Nack(false, false)
	default:
		_ = d.Nack(false, true)
	}
}
