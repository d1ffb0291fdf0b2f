// Package scheduler runs background jobs on a fixed cron cadence.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"visitbook-go/pkg/logger"
	"github.com/robfig/cron/v3"
)

// EventCounter reports how many visit bookings landed inside the
// current-day window.
type EventCounter interface {
	CountCreatedToday(ctx context.Context) (int64, error)
}

// Notifier receives the periodic booking digest. The default
// implementation only logs; a push backend can be swapped in.
type Notifier interface {
	NotifyBookings(ctx context.Context, count int64) error
}

type logNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) NotifyBookings(_ context.Context, count int64) error {
	n.log.Info("booking reminder digest", "bookings_today", count)
	return nil
}

type Reminders struct {
	cron     *cron.Cron
	events   EventCounter
	notifier Notifier
	log      logger.Logger
	interval time.Duration
}

func NewReminders(events EventCounter, notifier Notifier, interval time.Duration, log logger.Logger) *Reminders {
	return &Reminders{
		cron:     cron.New(),
		events:   events,
		notifier: notifier,
		log:      log,
		interval: interval,
	}
}

// Start registers the reminder job and launches the cron loop.
func (r *Reminders) Start() error {
	schedule := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	r.cron.Start()
	r.log.Info("reminder scheduler started", "interval", r.interval.String())
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (r *Reminders) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Reminders) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := r.events.CountCreatedToday(ctx)
	if err != nil {
		r.log.Error("reminder job failed", "error", err)
		return
	}
	if count == 0 {
		return
	}
	if err := r.notifier.NotifyBookings(ctx, count); err != nil {
		r.log.Error("reminder notify failed", "error", err)
	}
}
