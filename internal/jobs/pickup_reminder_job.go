package jobs

import (
	"context"
	"log/slog"
	"time"

	"errand/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPickupReminderSchedule runs the sweep at the start of every hour.
const DefaultPickupReminderSchedule = "@hourly"

// SweepHandler runs one pickup sweep.
type SweepHandler interface {
	Handle(ctx context.Context, cmd commands.SweepPickupRemindersCommand) (commands.SweepResult, error)
}

// PickupReminderJob closes expired pickups and reminds customers on a cron schedule.
// A run that is still going when the next one fires is skipped; sweeps in other
// processes are excluded by the sweep lock.
type PickupReminderJob struct {
	handler  SweepHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewPickupReminderJob creates the job. An empty schedule means DefaultPickupReminderSchedule.
func NewPickupReminderJob(handler SweepHandler, schedule string, logger *slog.Logger) *PickupReminderJob {
	if schedule == "" {
		schedule = DefaultPickupReminderSchedule
	}

	logger = logger.With("component", "pickup_reminder_job")

	return &PickupReminderJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Start registers the sweep and starts the scheduler.
func (j *PickupReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *PickupReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}

func (j *PickupReminderJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewSweepPickupRemindersCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", err)
		return
	}

	if result.Skipped {
		j.logger.DebugContext(ctx, "Pickup sweep skipped")
		return
	}

	j.logger.InfoContext(ctx, "Pickup sweep finished", "closed", result.Closed, "reminded", result.Reminded)
}
