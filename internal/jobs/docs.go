// Package jobs provides scheduled background tasks for the order lifecycle
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatusRefreshJob - Periodically sweeps orders that are waiting on child
// purchase orders or install tasks and re-derives their status.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statusRefreshJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The refresh job treats concurrency conflicts as expected contention (another
// writer advanced the order first) and logs everything else.
package jobs
