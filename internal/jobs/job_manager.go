package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	uploadSweeperJob *UploadSweeperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(db *gorm.DB, uploadDir string, logger *slog.Logger) *JobManager {
	return &JobManager{
		uploadSweeperJob: NewUploadSweeperJob(db, uploadDir, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.uploadSweeperJob.Start(); err != nil {
		return fmt.Errorf("failed to start upload sweeper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.uploadSweeperJob.Stop()
}
