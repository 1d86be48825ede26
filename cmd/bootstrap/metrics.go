package bootstrap

import (
	"frontdesk/internal/handler"
	"frontdesk/internal/infra/metrics"
	"frontdesk/internal/infra/outbox"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(queries.CheckRecorder)),
			fx.As(new(commands.ReservationRecorder)),
			fx.As(new(outbox.Recorder)),
			fx.As(new(handler.MetricsExporter)),
		),
	),
)
