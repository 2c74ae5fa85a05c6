package service

import (
	"go.uber.org/zap"

	"mkpp-service/internal/booking"
	"mkpp-service/internal/metrics"
)

const (
	outcomeAccepted   = "accepted"
	outcomeIncomplete = "incomplete"
)

// NotifyService is where submit toasts end up on the server side: a log line
// and a counter. The toast itself is shown by the page from the response.
type NotifyService struct {
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewNotifyService(log *zap.Logger, m *metrics.Metrics) *NotifyService {
	return &NotifyService{log: log, metrics: m}
}

// For returns a notifier that tags everything with the visitor id.
func (s *NotifyService) For(visitorID string) booking.Notifier {
	return booking.NotifierFunc(func(n booking.Notification) {
		outcome := outcomeAccepted
		if n.Severity == booking.SeverityDestructive {
			outcome = outcomeIncomplete
		}
		s.metrics.Submissions.WithLabelValues(outcome).Inc()
		s.log.Info("Booking notification",
			zap.String("visitor", visitorID),
			zap.String("outcome", outcome),
			zap.String("title", n.Title),
			zap.String("severity", string(n.Severity)),
		)
	})
}
