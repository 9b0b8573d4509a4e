package jobs

import (
	"context"
	"errors"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// statusRefreshActor is recorded as the acting user on sweep-driven
// transitions and audit rows.
const statusRefreshActor = "status-refresh-job"

// orderSource lists the orders a sweep should re-examine.
type orderSource interface {
	GetAllAwaitingChildren(ctx context.Context) ([]*order.Order, error)
}

// StatusRefreshJob periodically re-derives the status of every order that is
// waiting on child purchase orders or install tasks. Procurement and field
// service are external systems that push no events into this module, so the
// sweep is how their progress eventually reaches the order.
//
// A concurrency conflict on an individual order is expected noise: someone
// else touched the order between load and write, and the next sweep will see
// the fresh row.
type StatusRefreshJob struct {
	source   orderSource
	handler  commands.RefreshOrderStatusCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewStatusRefreshJob creates the sweep job. schedule is a six-field cron
// expression.
func NewStatusRefreshJob(
	source orderSource,
	handler commands.RefreshOrderStatusCommandHandler,
	schedule string,
	logger *slog.Logger,
) *StatusRefreshJob {
	return &StatusRefreshJob{
		source:   source,
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "status_refresh_job"),
	}
}

// Start schedules the sweep.
func (j *StatusRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.runSweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *StatusRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status refresh job stopped")
}

func (j *StatusRefreshJob) runSweep(ctx context.Context) {
	orders, err := j.source.GetAllAwaitingChildren(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Status refresh sweep failed to list orders", "error", err)
		return
	}

	refreshed := 0
	for _, aggregate := range orders {
		command, cmdErr := commands.NewRefreshOrderStatusCommand(
			aggregate.ID(), aggregate.TenantID(), statusRefreshActor)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Status refresh command rejected",
				"orderNo", aggregate.OrderNo(), "error", cmdErr)
			continue
		}

		result, handleErr := j.handler.Handle(ctx, command)
		switch {
		case handleErr == nil:
			if result.NewStatus != nil {
				refreshed++
				j.logger.InfoContext(ctx, "Order status refreshed",
					"orderNo", aggregate.OrderNo(),
					"oldStatus", result.Status,
					"newStatus", *result.NewStatus)
			}
		case errors.Is(handleErr, errs.ErrConcurrencyConflict):
			j.logger.DebugContext(ctx, "Order skipped, concurrent write won",
				"orderNo", aggregate.OrderNo())
		default:
			j.logger.ErrorContext(ctx, "Status refresh failed",
				"orderNo", aggregate.OrderNo(), "error", handleErr)
		}
	}

	if refreshed > 0 {
		j.logger.InfoContext(ctx, "Status refresh sweep finished",
			"examined", len(orders), "refreshed", refreshed)
	}
}
