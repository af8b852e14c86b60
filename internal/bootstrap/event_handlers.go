package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/fitquest/FitQuest_Go/internal/event"
	"github.com/fitquest/FitQuest_Go/internal/metrics"
)

// RegisterEventHandlers sets up all event subscribers.
// Today that is the metrics collector, which turns domain events into
// Prometheus counters.
func RegisterEventHandlers(bus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
