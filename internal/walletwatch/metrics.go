package walletwatch

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/walletwatch/internal/walletwatch"

type metrics struct {
	received      metric.Int64Counter
	filtered      metric.Int64Counter
	notifications metric.Int64Counter
	persisted     metric.Int64Counter
}

func newMetrics(meter metric.Meter) (metrics, error) {
	received, errReceived := meter.Int64Counter("walletwatch.events.received",
		metric.WithDescription("Transactions delivered by chain providers"))
	filtered, errFiltered := meter.Int64Counter("walletwatch.events.filtered",
		metric.WithDescription("Transactions rejected by the notification filter"))
	notifications, errNotifications := meter.Int64Counter("walletwatch.notifications",
		metric.WithDescription("Notification attempts by notifier and outcome"))
	persisted, errPersisted := meter.Int64Counter("walletwatch.events.persisted",
		metric.WithDescription("Transaction persistence attempts by outcome"))

	return metrics{
		received:      received,
		filtered:      filtered,
		notifications: notifications,
		persisted:     persisted,
	}, errors.Join(errReceived, errFiltered, errNotifications, errPersisted)
}

func defaultMeter() metric.Meter {
	return otel.Meter(instrumentationName)
}
