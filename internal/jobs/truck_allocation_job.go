package jobs

import (
	"context"
	"log/slog"

	"haulage/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TruckAllocationJob runs the periodic allocation sweep that matches pending
// orders with idle trucks. The sweep is also triggered directly after truck
// releases; the cron run is the backstop that picks up anything missed.
type TruckAllocationJob struct {
	handler commands.AllocateTrucksCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTruckAllocationJob creates a new job for the allocation sweep.
// Uses AllocateTrucksCommandHandler to match orders with trucks every 10 seconds.
func NewTruckAllocationJob(handler commands.AllocateTrucksCommandHandler, logger *slog.Logger) *TruckAllocationJob {
	return &TruckAllocationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "truck_allocation_job"),
	}
}

// Start begins the allocation sweep job to run every 10 seconds.
func (j *TruckAllocationJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAllocateTrucksCommand()

		allocated, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Truck allocation sweep failed", "error", err)
			return
		}

		// An empty sweep is the steady state of an idle yard.
		if allocated > 0 {
			j.logger.InfoContext(ctx, "Truck allocation sweep completed", "allocated", allocated)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Truck allocation job started (running every 10 seconds)")
	return nil
}

// Stop stops the allocation sweep job.
func (j *TruckAllocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Truck allocation job stopped")
}
