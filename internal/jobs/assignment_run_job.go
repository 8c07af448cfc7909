package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultAssignmentSchedule runs a batch every thirty seconds.
const DefaultAssignmentSchedule = "*/30 * * * * *"

// RunAssignmentHandler executes one assignment batch.
type RunAssignmentHandler interface {
	Handle(ctx context.Context, cmd commands.RunAssignmentCommand) (commands.RunAssignmentResult, error)
}

// AssignmentRunJob periodically matches pending orders to delivery partners.
// A tick that finds the previous run still going is skipped.
type AssignmentRunJob struct {
	handler  RunAssignmentHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAssignmentRunJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty schedule means DefaultAssignmentSchedule.
// Each run is cancelled after timeout, zero means no limit.
func NewAssignmentRunJob(handler RunAssignmentHandler, schedule string, timeout time.Duration, logger *slog.Logger) *AssignmentRunJob {
	if schedule == "" {
		schedule = DefaultAssignmentSchedule
	}
	return &AssignmentRunJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "assignment_run_job"),
	}
}

// Start registers the run on the schedule and starts the scheduler.
func (j *AssignmentRunJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.runOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment run job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a run in flight to finish.
func (j *AssignmentRunJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Assignment run job stopped")
}

func (j *AssignmentRunJob) runOnce(ctx context.Context) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	result, err := j.handler.Handle(ctx, commands.NewRunAssignmentCommand())
	switch {
	case errors.Is(err, ports.ErrRunInProgress):
		// another replica holds the lock
		j.logger.InfoContext(ctx, "Assignment run skipped, another run is in progress")
	case err != nil:
		j.logger.ErrorContext(ctx, "Assignment run failed", "error", err)
	case len(result.Outcomes) > 0:
		assigned := 0
		for _, a := range result.Outcomes {
			if a.IsSuccess() {
				assigned++
			}
		}
		j.logger.InfoContext(ctx, "Assignment run finished",
			"orders", len(result.Outcomes),
			"assigned", assigned,
			"failed", len(result.Outcomes)-assigned)
	}
}
