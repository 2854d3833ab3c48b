package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsJob        *StatsJob
	journalFlushJob *JournalFlushJob
}

// NewJobManager creates a job manager. journalFlushJob is nil when the
// journal is disabled.
func NewJobManager(statsJob *StatsJob, journalFlushJob *JournalFlushJob) *JobManager {
	return &JobManager{
		statsJob:        statsJob,
		journalFlushJob: journalFlushJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats job: %w", err)
	}

	if jm.journalFlushJob == nil {
		return nil
	}

	if err := jm.journalFlushJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.statsJob.Stop()
		return fmt.Errorf("failed to start journal flush job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.journalFlushJob != nil {
		jm.journalFlushJob.Stop()
	}
	jm.statsJob.Stop()
}
