package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager owns the scheduled jobs of the dispatch service.
type JobManager struct {
	assignmentRunJob *AssignmentRunJob
}

// NewJobManager wires the assignment run job to its handler and schedule.
func NewJobManager(
	runAssignmentHandler RunAssignmentHandler,
	assignmentSchedule string,
	runTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentRunJob: NewAssignmentRunJob(runAssignmentHandler, assignmentSchedule, runTimeout, logger),
	}
}

// StartAll schedules every job. A malformed cron expression surfaces here.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentRunJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment run job: %w", err)
	}
	return nil
}

// StopAll stops scheduling and waits for runs in flight.
func (jm *JobManager) StopAll() {
	jm.assignmentRunJob.Stop()
}
