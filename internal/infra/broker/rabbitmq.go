package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"frontdesk/internal/pkg/config"
	"frontdesk/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errs.New("rabbitmq publisher is closed")

// Publisher sends outbox payloads to one durable queue per topic on the
// default exchange. The connection is opened lazily and re-dialed after a
// failed publish.
type Publisher struct {
	url    string
	prefix string
	dial   func(url string) (*amqp.Connection, error)

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]struct{}
	closed   bool
}

func NewPublisher(cfg config.RabbitMQConfig) *Publisher {
	return &Publisher{
		url:      cfg.URL,
		prefix:   cfg.QueuePrefix,
		dial:     amqp.Dial,
		declared: make(map[string]struct{}),
	}
}

// QueueName maps a topic such as "reservation.created" to its queue.
func (p *Publisher) QueueName(topic string) string {
	if p.prefix == "" {
		return topic
	}
	return p.prefix + "." + topic
}

func (p *Publisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}
	if err := p.connectLocked(); err != nil {
		return err
	}

	queue := p.QueueName(topic)
	if _, ok := p.declared[queue]; !ok {
		if _, err := p.ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			p.resetLocked()
			return errs.Wrapf(err, "failed to declare queue %s", queue)
		}
		p.declared[queue] = struct{}{}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         topic,
		Body:         payload,
	}
	if err := p.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		p.resetLocked()
		return errs.Wrapf(err, "failed to publish to %s", queue)
	}
	return nil
}

func (p *Publisher) connectLocked() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.resetLocked()

	conn, err := p.dial(p.url)
	if err != nil {
		return errs.Wrap(err, "failed to dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "failed to open rabbitmq channel")
	}
	p.conn = conn
	p.ch = ch
	return nil
}

func (p *Publisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			slog.Warn("failed to close rabbitmq connection", "error", err.Error())
		}
		p.conn = nil
	}
	p.declared = make(map[string]struct{})
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.resetLocked()
	return nil
}
