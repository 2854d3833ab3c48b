package jobs

import (
	"context"
	"log/slog"

	"tracking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultJournalFlushSchedule runs the flush every five seconds.
const DefaultJournalFlushSchedule = "*/5 * * * * *"

type journalFlusher interface {
	Handle(ctx context.Context, cmd commands.FlushJournalCommand) (int, error)
}

type journalFlushMetrics interface {
	RecordJournalFlush(saved, pending int)
}

// JournalFlushJob periodically writes buffered journal entries to storage.
// A failed flush is logged; the entries stay buffered for the next run.
type JournalFlushJob struct {
	handler  journalFlusher
	pending  func() int
	metrics  journalFlushMetrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewJournalFlushJob creates the flush job. pending reports the buffer size
// after each run; metrics may be nil. An empty schedule uses DefaultJournalFlushSchedule.
func NewJournalFlushJob(
	handler journalFlusher,
	pending func() int,
	metrics journalFlushMetrics,
	schedule string,
	logger *slog.Logger,
) *JournalFlushJob {
	if schedule == "" {
		schedule = DefaultJournalFlushSchedule
	}
	return &JournalFlushJob{
		handler:  handler,
		pending:  pending,
		metrics:  metrics,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "journal_flush_job"),
	}
}

// Start schedules the flush.
func (j *JournalFlushJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Journal flush job started", "schedule", j.schedule)
	return nil
}

// Run performs one flush.
func (j *JournalFlushJob) Run(ctx context.Context) {
	saved, err := j.handler.Handle(ctx, commands.NewFlushJournalCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Journal flush failed", "error", err)
	} else if saved > 0 {
		j.logger.DebugContext(ctx, "Journal flushed", "entries", saved)
	}

	if j.metrics != nil {
		j.metrics.RecordJournalFlush(saved, j.pending())
	}
}

// Stop waits for a running flush to finish and then flushes once more so
// entries accepted before shutdown are not lost.
func (j *JournalFlushJob) Stop() {
	<-j.cron.Stop().Done()
	j.Run(context.Background())
	j.logger.InfoContext(context.Background(), "Journal flush job stopped")
}
