package journal

import (
	"log/slog"
	"time"

	"github.com/starford/logbook/internal/daylog"
	"github.com/starford/logbook/internal/vcs"
)

// Option is a functional option for configuring the Service.
type Option func(*Service)

// WithStore sets the daily-log store.
func WithStore(store *daylog.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithPublisher sets the log-repository publisher.
func WithPublisher(p vcs.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithClock sets the time source. Tests pin the date with this.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}
