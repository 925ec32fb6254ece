package cmd

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"trading-journal/internal/service"
	"trading-journal/pkg/logger"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// cronLogger adapts the zap wrapper to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}

// newSnapshotScheduler registers the snapshot job on spec. Overlapping runs
// are skipped.
func newSnapshotScheduler(ctx context.Context, spec string, log *logger.Logger, snapshots service.SnapshotService) (*cron.Cron, error) {
	cl := cronLogger{log: log}
	c := cron.New(
		cron.WithParser(cronParser),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	_, err := c.AddFunc(spec, func() {
		if err := snapshots.Execute(ctx); err != nil {
			log.ErrorContext(ctx, "Scheduled snapshot failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot schedule %q: %w", spec, err)
	}
	return c, nil
}
