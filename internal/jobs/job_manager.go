package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	promotionExpiryJob *PromotionExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expirePromotionsHandler PromotionExpirer,
	promotionSweepSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		promotionExpiryJob: NewPromotionExpiryJob(expirePromotionsHandler, promotionSweepSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.promotionExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start promotion expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.promotionExpiryJob.Stop()
}
