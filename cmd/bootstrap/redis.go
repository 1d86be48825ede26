package bootstrap

import (
	"context"
	"log/slog"

	"frontdesk/internal/infra/feed"
	"frontdesk/internal/pkg/config"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewReservationFeed,
	),
)

type FeedResult struct {
	fx.Out

	Publisher commands.ChangePublisher
	Feed      queries.ReservationFeed
}

// NewReservationFeed wires the live feed to Redis. Without REDIS_ADDR changes
// are dropped and subscribers get a nil feed.
func NewReservationFeed(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (FeedResult, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("Redis not configured, live reservation feed disabled")
		return FeedResult{Publisher: feed.NoopPublisher{}}, nil
	}

	client, err := feed.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return FeedResult{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return FeedResult{
		Publisher: feed.NewRedisPublisher(client),
		Feed:      feed.NewRedisFeed(client),
	}, nil
}
