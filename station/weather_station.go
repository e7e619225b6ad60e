package station

import (
	"context"
	"log/slog"

	"github.com/turbot/observe/observable"
)

// WeatherStation is a concrete observable subject. It holds the most recent
// temperature reading and notifies its observers each time the reading
// changes. It keeps no history - observers that want history must keep
// their own.
//
// The station is a plain synchronous call chain: SetTemperature assigns the
// reading then runs the notification pass to completion before returning.
// It is not safe for concurrent use from multiple goroutines.
type WeatherStation struct {
	observable.ObservableImpl[*WeatherStation]

	name string
	// nil until the first reading is recorded - a station that has never
	// reported is distinct from one reporting zero degrees
	temperature *int
}

type WeatherStationOption func(*WeatherStation)

// WithContinueOnError makes the station keep notifying the remaining
// observers when one of them fails, instead of aborting the pass.
func WithContinueOnError() WeatherStationOption {
	return func(s *WeatherStation) {
		s.SetContinueOnError(true)
	}
}

func NewWeatherStation(name string, opts ...WeatherStationOption) *WeatherStation {
	s := &WeatherStation{
		name: name,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *WeatherStation) Name() string {
	return s.name
}

// AddObserver registers an observer with the station.
func (s *WeatherStation) AddObserver(o observable.Observer[*WeatherStation]) {
	s.ObservableImpl.AddObserver(o)

	slog.Debug("observer added", "station", s.name, "observer_count", s.ObserverCount())
}

// RemoveObserver removes the first registration of the given observer; a
// no-op if it is not registered.
func (s *WeatherStation) RemoveObserver(o observable.Observer[*WeatherStation]) {
	s.ObservableImpl.RemoveObserver(o)

	slog.Debug("observer removed", "station", s.name, "observer_count", s.ObserverCount())
}

// Temperature returns the most recent reading in degrees celsius.
// ok is false if no reading has been recorded yet.
func (s *WeatherStation) Temperature() (celsius int, ok bool) {
	if s.temperature == nil {
		return 0, false
	}
	return *s.temperature, true
}

// SetTemperature records a new reading and synchronously notifies every
// registered observer, in registration order. The reading is assigned
// before the notification pass starts, so observers always see the new
// value - and it stays assigned even if the pass returns an error.
func (s *WeatherStation) SetTemperature(ctx context.Context, celsius int) error {
	s.temperature = &celsius

	slog.Debug("temperature changed", "station", s.name, "celsius", celsius)

	return s.NotifyObservers(ctx, s)
}
