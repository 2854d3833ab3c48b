package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule samples gauges every fifteen seconds.
const DefaultStatsSchedule = "*/15 * * * * *"

type shipmentCounter interface {
	Count(ctx context.Context) int
}

type subscriberCounter interface {
	Len() int
}

type statsRecorder interface {
	SetShipmentsTracked(n int)
	SubscribersActive(n int)
}

// StatsJob samples repository and hub sizes into gauges.
type StatsJob struct {
	shipments   shipmentCounter
	subscribers subscriberCounter
	recorder    statsRecorder
	cron        *cron.Cron
	logger      *slog.Logger
}

func NewStatsJob(
	shipments shipmentCounter,
	subscribers subscriberCounter,
	recorder statsRecorder,
	logger *slog.Logger,
) *StatsJob {
	return &StatsJob{
		shipments:   shipments,
		subscribers: subscribers,
		recorder:    recorder,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "stats_job"),
	}
}

func (j *StatsJob) Start() error {
	_, err := j.cron.AddFunc(DefaultStatsSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats job started", "schedule", DefaultStatsSchedule)
	return nil
}

// Run records one sample.
func (j *StatsJob) Run(ctx context.Context) {
	shipments := j.shipments.Count(ctx)
	subscribers := j.subscribers.Len()

	j.recorder.SetShipmentsTracked(shipments)
	j.recorder.SubscribersActive(subscribers)
	j.logger.DebugContext(ctx, "Stats sampled", "shipments", shipments, "subscribers", subscribers)
}

func (j *StatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stats job stopped")
}
