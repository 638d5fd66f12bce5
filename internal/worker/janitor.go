package worker

import (
	"context"
	"log/slog"
	"time"

	"punchcard/internal/pkg/clock"
	"punchcard/internal/pkg/config"

	"github.com/go-co-op/gocron/v2"
)

// QRCodePurger deletes consumed codes older than the cutoff. Unused
// codes are never touched; a customer may sit on one indefinitely.
type QRCodePurger interface {
	DeleteConsumedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Janitor periodically purges consumed QR codes past their retention.
type Janitor struct {
	scheduler gocron.Scheduler
	purger    QRCodePurger
	clock     clock.Clock
	cfg       config.JanitorConfig
}

func NewJanitor(purger QRCodePurger, clk clock.Clock, cfg config.JanitorConfig) (*Janitor, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Janitor{
		scheduler: scheduler,
		purger:    purger,
		clock:     clk,
		cfg:       cfg,
	}, nil
}

func (j *Janitor) Start() error {
	_, err := j.scheduler.NewJob(
		gocron.DurationJob(j.cfg.Interval),
		gocron.NewTask(j.purge),
	)
	if err != nil {
		return err
	}

	j.scheduler.Start()
	return nil
}

func (j *Janitor) Stop() error {
	return j.scheduler.Shutdown()
}

func (j *Janitor) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := j.clock.Now().Add(-j.cfg.QRRetention)
	deleted, err := j.purger.DeleteConsumedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("qr code purge failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("purged consumed qr codes", "count", deleted, "cutoff", cutoff)
	}
}
