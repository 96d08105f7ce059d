// Package jobs provides scheduled background tasks for the orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// PendingOrdersJob periodically reports the pending-order backlog so that a
// growing queue of unconfirmed orders is visible in the logs.
package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob reports the pending-order backlog on a fixed schedule.
// Runs every minute and logs how many orders are still awaiting confirmation.
type PendingOrdersJob struct {
	handler queries.GetPendingOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a new backlog-monitoring job.
// Uses GetPendingOrdersQueryHandler to count pending orders every minute.
func NewPendingOrdersJob(handler queries.GetPendingOrdersQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start begins the backlog-monitoring job to run every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingOrdersQuery()

		pending, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Pending order backlog", "count", len(pending))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the backlog-monitoring job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
