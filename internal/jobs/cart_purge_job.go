package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartPurgeJob periodically deletes cart slots that have not been written
// for longer than the retention window. Keeps the slot table bounded when
// visitors abandon carts.
type CartPurgeJob struct {
	handler   commands.PurgeStaleCartsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCartPurgeJob creates a new job for purging stale carts with the given
// retention window.
func NewCartPurgeJob(
	handler commands.PurgeStaleCartsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *CartPurgeJob {
	return &CartPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "cart_purge_job"),
	}
}

// Start begins the cart purge job, running at the top of every hour.
func (j *CartPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeStaleCartsCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart purge command invalid", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart purge job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged stale cart slots", "removed", removed)
		} else {
			j.logger.DebugContext(ctx, "No stale cart slots to purge")
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart purge job started (running hourly)",
		"retention", j.retention.String())
	return nil
}

// Stop stops the cart purge job.
func (j *CartPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart purge job stopped")
}
