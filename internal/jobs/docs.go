// Package jobs provides scheduled background tasks for the errand service.
//
// Jobs are built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PickupReminderJob runs the pickup sweep: completed orders whose pickup window
// elapsed are closed, and customers with an open window get a reminder.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sweepHandler, cfg.SweepCron, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a standard five-field cron expression or a descriptor such as
// "@hourly" (the default) or "@every 15m". Overlapping runs in one process are
// skipped; across processes the sweep lock makes every sweep single-flight.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. A skipped sweep is
// logged at debug level only.
package jobs
