package queue

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/void-labs/showcase/internal/config"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// NotificationEvent is the message published whenever something happens that
// should surface in a user's notification feed (new feedback, collaboration
// request, report resolution).
type NotificationEvent struct {
	UserID  uuid.UUID              `json:"user_id"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// Publisher writes NotificationEvents to the notification queue.
type Publisher struct {
	conn  *amqp.Connection
	queue string
	log   *zap.Logger
}

func NewPublisher(conn *amqp.Connection, cfg *config.Config, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	if _, err := ch.QueueDeclare(cfg.RabbitMQ.Queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, queue: cfg.RabbitMQ.Queue, log: log}, nil
}

// Publish sends an event. Failures are logged, never surfaced to the request:
// a lost notification must not fail the write that produced it.
func (p *Publisher) Publish(ctx context.Context, ev NotificationEvent) {
	body, err := sonic.Marshal(ev)
	if err != nil {
		p.log.Sugar().Errorw("marshal notification event", "err", err)
		return
	}
	ch, err := p.conn.Channel()
	if err != nil {
		p.log.Sugar().Errorw("open channel", "err", err)
		return
	}
	defer ch.Close()

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.log.Sugar().Errorw("publish notification event", "err", err)
	}
}

// NotificationSink persists a consumed event. Implemented by the notification
// service; kept as an interface so the consumer stays decoupled from gorm.
type NotificationSink interface {
	Deliver(ctx context.Context, userID uuid.UUID, message string, data datatypes.JSONMap) error
}

// Consumer drains the notification queue into Notification rows.
type Consumer struct {
	conn *amqp.Connection
	cfg  *config.Config
	sink NotificationSink
	log  *zap.Logger
}

func NewConsumer(conn *amqp.Connection, cfg *config.Config, sink NotificationSink, log *zap.Logger) *Consumer {
	return &Consumer{conn: conn, cfg: cfg, sink: sink, log: log}
}

func (c *Consumer) Start(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	if err := ch.Qos(c.cfg.RabbitMQ.Prefetch, 0, false); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(c.cfg.RabbitMQ.Queue, true, false, false, false, nil); err != nil {
		return err
	}
	deliveries, err := ch.Consume(c.cfg.RabbitMQ.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				c.handle(ctx, d)
			}
		}
	}()
	return nil
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	var ev NotificationEvent
	if err := sonic.Unmarshal(d.Body, &ev); err != nil {
		c.log.Sugar().Errorw("decode notification event", "err", err)
		_ = d.Nack(false, false)
		return
	}
	if err := c.sink.Deliver(ctx, ev.UserID, ev.Message, datatypes.JSONMap(ev.Data)); err != nil {
		c.log.Sugar().Errorw("deliver notification", "user_id", ev.UserID, "err", err)
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}
