package scheduler

import (
	"time"

	"farm-app/config"
	"farm-app/mailer"
	"farm-app/repositories"
	"farm-app/services"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Scheduler runs the daily alert digest mail.
type Scheduler struct {
	cron   *cron.Cron
	db     *gorm.DB
	logger *zap.Logger
}

func NewScheduler(db *gorm.DB, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(),
		db:     db,
		logger: logger,
	}
}

// Start registers the digest job on the configured cron expression and kicks
// off the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("digestCron", config.DigestCron))

	if _, err := s.cron.AddFunc(config.DigestCron, s.sendAlertDigest); err != nil {
		s.logger.Error("failed to schedule alert digest", zap.Error(err))
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendAlertDigest() {
	repo := repositories.NewSnapshotRepository(s.db)
	snap, err := repo.FetchAll()
	if err != nil {
		s.logger.Error("failed to load snapshot for alert digest", zap.Error(err))
		return
	}

	alerts := services.ComputeAlerts(snap, time.Now())
	if len(alerts) == 0 {
		s.logger.Info("no active alerts, digest skipped")
		return
	}

	if err := mailer.SendAlertDigest(alerts); err != nil {
		s.logger.Error("failed to send alert digest", zap.Error(err))
		return
	}

	s.logger.Info("alert digest sent", zap.Int("alerts", len(alerts)))
}
