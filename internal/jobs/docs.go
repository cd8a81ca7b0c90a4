// Package jobs provides scheduled background tasks for the haulage dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. TruckAllocationJob - Runs every 10 seconds to match pending orders with idle trucks
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(allocateTrucksHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The allocation job uses the cron expression "*/10 * * * * *", running every
// 10 seconds. Completing or cancelling a dispatch triggers a sweep directly,
// so the cron run is a backstop rather than the primary allocation path.
//
// # Error Handling
//
// - Sweeps that allocate nothing are the steady state and are not logged
// - Failed sweeps are logged and retried on the next tick
package jobs
