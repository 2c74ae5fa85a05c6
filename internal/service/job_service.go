package service

import (
	"go.uber.org/zap"

	"mkpp-service/internal/metrics"
	"mkpp-service/internal/repository"
)

type JobService struct {
	Repo    *repository.SessionRepository
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewJobService(repo *repository.SessionRepository, m *metrics.Metrics, log *zap.Logger) *JobService {
	return &JobService{Repo: repo, metrics: m, log: log}
}

// SweepExpiredSessions drops page sessions nobody touched within the TTL.
// Abandoned bookings go with them.
func (s *JobService) SweepExpiredSessions() int {
	removed := s.Repo.DeleteExpired()
	active := s.Repo.Count()
	s.metrics.ActiveSessions.Set(float64(active))

	if removed == 0 {
		s.log.Debug("Cron Job: no expired page sessions", zap.Int("active", active))
		return 0
	}
	s.log.Info("Cron Job: swept expired page sessions", zap.Int("removed", removed), zap.Int("active", active))
	return removed
}
