// Package jobs provides scheduled background tasks for the tracking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatsJob - samples the number of tracked shipments and live subscribers into gauges
// 2. JournalFlushJob - writes buffered event journal entries to PostgreSQL (only when the journal is enabled)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statsJob, journalFlushJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed journal flush is logged and retried on the next tick; entries stay buffered
// - Stopping the flush job performs one final flush
// - Failed job starts will stop any already running jobs
package jobs
