// Package jobs provides scheduled background tasks for the service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// PromotionExpiryJob un-promotes restaurants whose paid promotion ended. It
// runs on PROMOTION_SWEEP_SPEC, every two seconds by default. A sweep is
// idempotent, so overlapping runs are harmless.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expirePromotionsHandler, "*/2 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick. An invalid spec
// fails StartAll.
package jobs
