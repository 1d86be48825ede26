package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"frontdesk/internal/pkg/config"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// Subscribers that fall this far behind lose events rather than stall the
// shared redis connection.
const subscriberBuffer = 64

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

func Channel(hotelID string) string {
	return fmt.Sprintf("frontdesk:hotel:%s:reservations", hotelID)
}

type RedisPublisher struct {
	client redis.UniversalClient
}

func NewRedisPublisher(client redis.UniversalClient) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) PublishReservationChanged(ctx context.Context, event shared.ReservationChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation change")
	}
	if err := p.client.Publish(ctx, Channel(event.HotelID), payload).Err(); err != nil {
		return errs.Wrap(err, "failed to publish reservation change")
	}
	return nil
}

type RedisFeed struct {
	client redis.UniversalClient
}

func NewRedisFeed(client redis.UniversalClient) *RedisFeed {
	return &RedisFeed{client: client}
}

// Subscribe streams the hotel's reservation changes until ctx is done. The
// returned channel is closed when the subscription ends.
func (f *RedisFeed) Subscribe(ctx context.Context, hotelID string) (<-chan shared.ReservationChanged, error) {
	sub := f.client.Subscribe(ctx, Channel(hotelID))
	// Receive waits for the subscription confirmation so callers see
	// connection errors immediately.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, errs.Wrap(err, "failed to subscribe to reservation feed")
	}

	out := make(chan shared.ReservationChanged, subscriberBuffer)
	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				event, err := decode(msg.Payload)
				if err != nil {
					slog.Warn("dropping malformed reservation change",
						"hotel_id", hotelID,
						"error", err.Error())
					continue
				}
				select {
				case out <- event:
				default:
					slog.Warn("reservation feed subscriber is slow, dropping event",
						"hotel_id", hotelID,
						"reservation_id", event.ReservationID.String())
				}
			}
		}
	}()
	return out, nil
}

func decode(payload string) (shared.ReservationChanged, error) {
	var event shared.ReservationChanged
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return shared.ReservationChanged{}, err
	}
	return event, nil
}

// NoopPublisher is used when redis is not configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishReservationChanged(context.Context, shared.ReservationChanged) error {
	return nil
}
