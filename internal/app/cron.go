package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akvfolio/portfolio-core/internal/config"
	"github.com/akvfolio/portfolio-core/internal/modules/storage/upload"
	pkgcron "github.com/akvfolio/portfolio-core/internal/pkg/cron"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, store *upload.Store, cfg *config.AppConfig, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:     "orphan_sweep",
		Interval: cfg.Sweep.Interval,
		Fn: func(ctx context.Context) error {
			removed, err := upload.SweepOrphans(db, store, cfg.Sweep.MaxAge)
			if err != nil {
				cronLogger.Warn("orphan sweep failed", zap.Error(err))
				return err
			}
			if removed > 0 {
				cronLogger.Info(fmt.Sprintf("orphan sweep removed %d stale uploads", removed))
			}
			return nil
		},
	})
}
