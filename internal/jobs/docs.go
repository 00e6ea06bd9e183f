// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the storefront service needs.
//
// # Available Jobs
//
// 1. CartPurgeJob - Runs hourly to delete cart slots untouched for longer
// than the configured retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, retention, logger)
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
// A failed purge run is logged and retried on the next tick; a run that
// removes nothing is normal and logged at debug level only.
package jobs
