package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// CronService runs the periodic jobs: currently an hourly snapshot of
// the entity counts, logged for operational visibility.
type CronService struct {
	cron      *cron.Cron
	dashboard *DashboardService
	log       zerolog.Logger
}

// NewCronService creates a new cron service
func NewCronService(dashboard *DashboardService, log zerolog.Logger) *CronService {
	return &CronService{
		cron:      cron.New(),
		dashboard: dashboard,
		log:       log,
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.logSnapshot); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Msg("cron service started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("cron service stopped")
}

func (s *CronService) logSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snap := s.dashboard.Counts(ctx)
	s.log.Info().
		Int64("users", snap.Users).
		Int64("projects", snap.Projects).
		Int64("teams", snap.Teams).
		Msg("entity snapshot")
}
