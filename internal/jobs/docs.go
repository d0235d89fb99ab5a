// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping required for the delivery service.
//
// # Available Jobs
//
// 1. UploadSweeperJob - Runs hourly to delete proof-of-delivery uploads that
// no order references anymore
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, uploadDir, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweeper logs sweep failures and carries on; a single failed run only
// delays cleanup until the next hour.
package jobs
