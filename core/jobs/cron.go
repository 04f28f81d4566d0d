package jobs

import (
	"focusflow-api/core/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the in-process periodic sweeps (stale session cleanup,
// suggestion history purge).
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// AddJob registers fn under a standard 5-field cron spec.
func (s *Scheduler) AddJob(spec, name string, fn func()) error {
	_, err := s.cron.AddFunc(spec, func() {
		logger.Info("Scheduler:Run", "job", name)
		fn()
	})
	if err != nil {
		logger.Error("Scheduler:AddJob", "job", name, "spec", spec, "error", err)
		return err
	}
	logger.Info("Scheduler:Registered", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
