package bootstrap

import (
	"context"
	"log/slog"

	"frontdesk/internal/infra/broker"
	"frontdesk/internal/infra/metrics"
	"frontdesk/internal/infra/outbox"
	"frontdesk/internal/infra/uow"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/config"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		startOutboxDispatcher,
	),
)

// startOutboxDispatcher drains queued notification jobs to RabbitMQ. Jobs
// stay queued while RABBITMQ_URL is empty.
func startOutboxDispatcher(
	lc fx.Lifecycle,
	cfg config.Config,
	u *uow.PostgresUoW,
	m *metrics.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
) {
	if !cfg.RabbitMQ.Enabled() {
		logger.Info("RabbitMQ not configured, outbox dispatcher disabled")
		return
	}

	pub := broker.NewPublisher(cfg.RabbitMQ)
	dispatcher := outbox.NewDispatcher(u.Pool(), u.Notifications(), pub, m, clk, cfg.Outbox)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			logger.Info("Outbox dispatcher started", "interval", cfg.Outbox.PollInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := dispatcher.Stop(ctx); err != nil {
				logger.Warn("Outbox dispatcher did not stop cleanly", "error", err)
			}
			return pub.Close()
		},
	})
}
