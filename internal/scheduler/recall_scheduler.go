package scheduler

import (
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// RecallScheduler sweeps due recalls once a day so follow-up lists stay
// current without anyone opening the report first.
type RecallScheduler struct {
	cron          *cron.Cron
	recallService service.RecallService
}

func NewRecallScheduler(recallService service.RecallService) *RecallScheduler {
	return &RecallScheduler{
		cron:          cron.New(),
		recallService: recallService,
	}
}

// Start registers the daily sweep at 08:00 and runs one immediately so a
// restart never skips a day.
func (s *RecallScheduler) Start() error {
	_, err := s.cron.AddFunc("0 8 * * *", s.sweep)
	if err != nil {
		logger.Error("Failed to register recall sweep job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Recall scheduler started (daily at 8:00 AM)", nil)

	go s.sweep()

	return nil
}

func (s *RecallScheduler) sweep() {
	count, err := s.recallService.SweepDue(time.Now())
	if err != nil {
		logger.Error("Recall sweep failed", err)
		return
	}

	logger.Info("Recall sweep completed", map[string]interface{}{
		"flagged": count,
	})
}

func (s *RecallScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Recall scheduler stopped", nil)
}
