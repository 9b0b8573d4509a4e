package jobs

import "fmt"

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	statusRefreshJob *StatusRefreshJob
}

// NewJobManager creates a job manager owning the given jobs.
func NewJobManager(statusRefreshJob *StatusRefreshJob) *JobManager {
	return &JobManager{statusRefreshJob: statusRefreshJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.statusRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start status refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusRefreshJob.Stop()
}
