package fx

import (
	"context"

	"Cartera/config"
	"Cartera/internal/infrastructure"
	"Cartera/internal/logger"
	"Cartera/internal/scheduler"

	"go.uber.org/fx"
)

// SchedulerModule liga o fechamento diário de faturas ao ciclo de vida da
// aplicação.
var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		newSchedulerConfig,
		newSchedulerWorker,
	),
	fx.Invoke(
		startScheduler,
	),
)

func newSchedulerConfig(cfg *config.Config) scheduler.Config {
	return scheduler.Config{
		Enabled:      cfg.Scheduler.Enabled,
		PollInterval: cfg.Scheduler.Interval,
	}
}

func newSchedulerWorker(repo *infrastructure.CreditCardRepository, cfg scheduler.Config) *scheduler.Worker {
	return scheduler.NewWorker(repo, cfg)
}

func startScheduler(lc fx.Lifecycle, cfg scheduler.Config, worker *scheduler.Worker) {
	if !cfg.Enabled {
		logger.Info().Msg("Fechamento automático de faturas desabilitado")
		return
	}

	workerCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go worker.RunForever(workerCtx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}
