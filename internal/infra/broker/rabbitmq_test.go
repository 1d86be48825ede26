//go:build unit

package broker

import (
	"context"
	"errors"
	"testing"

	"frontdesk/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_QueueName(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		topic  string
		want   string
	}{
		{name: "with prefix", prefix: "frontdesk", topic: "reservation.created", want: "frontdesk.reservation.created"},
		{name: "without prefix", prefix: "", topic: "payment.recorded", want: "payment.recorded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPublisher(config.RabbitMQConfig{URL: "amqp://localhost", QueuePrefix: tt.prefix})
			assert.Equal(t, tt.want, p.QueueName(tt.topic))
		})
	}
}

func TestPublisher_DialFailure(t *testing.T) {
	p := NewPublisher(config.RabbitMQConfig{URL: "amqp://localhost"})
	dialErr := errors.New("connection refused")
	p.dial = func(string) (*amqp.Connection, error) { return nil, dialErr }

	err := p.Publish(context.Background(), "reservation.created", []byte(`{}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, dialErr)
}

func TestPublisher_Closed(t *testing.T) {
	p := NewPublisher(config.RabbitMQConfig{URL: "amqp://localhost"})
	require.NoError(t, p.Close())

	err := p.Publish(context.Background(), "reservation.created", []byte(`{}`))

	assert.ErrorIs(t, err, ErrPublisherClosed)
}
