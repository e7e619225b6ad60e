package displays

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/turbot/observe/station"
)

const StatisticsIdentifier = "statistics"

// Stats holds the aggregates over every reading a StatisticsDisplay has
// received.
type Stats struct {
	Avg float64
	Max int
	Min int
}

// StatisticsDisplay keeps the full history of readings it has been notified
// of and renders avg/max/min over that history on every update. The history
// is private to the display instance - it grows by exactly one entry per
// notification, independent of the station's own state.
type StatisticsDisplay struct {
	writer io.Writer

	// every reading received, oldest first
	temperatures []int
}

func NewStatisticsDisplay(opts ...DisplayOption) *StatisticsDisplay {
	// the history slice is allocated per instance - two displays never
	// share one
	d := &StatisticsDisplay{
		writer:       os.Stdout,
		temperatures: []int{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *StatisticsDisplay) Identifier() string {
	return StatisticsIdentifier
}

// Update appends the station's current reading to the history, then renders
// the aggregates recomputed over the full history. A notification from a
// station with no reading yet is an error - there is nothing to aggregate.
func (d *StatisticsDisplay) Update(_ context.Context, s *station.WeatherStation) error {
	celsius, ok := s.Temperature()
	if !ok {
		return fmt.Errorf("statistics display notified by station '%s' before any reading was recorded", s.Name())
	}

	d.temperatures = append(d.temperatures, celsius)

	stats := d.Stats()
	_, err := fmt.Fprintf(d.writer, "StatisticsDisplay: Avg/Max/Min temperatures = %.1f/%d/%d°C\n", stats.Avg, stats.Max, stats.Min)
	return err
}

func (d *StatisticsDisplay) setWriter(w io.Writer) {
	d.writer = w
}

// History returns a copy of every reading received, oldest first.
func (d *StatisticsDisplay) History() []int {
	history := make([]int, len(d.temperatures))
	copy(history, d.temperatures)
	return history
}

// Stats recomputes the aggregates over the full history. The zero Stats is
// returned when no readings have been received.
func (d *StatisticsDisplay) Stats() Stats {
	if len(d.temperatures) == 0 {
		return Stats{}
	}

	sum := 0
	max := d.temperatures[0]
	min := d.temperatures[0]
	for _, celsius := range d.temperatures {
		sum += celsius
		if celsius > max {
			max = celsius
		}
		if celsius < min {
			min = celsius
		}
	}

	return Stats{
		Avg: float64(sum) / float64(len(d.temperatures)),
		Max: max,
		Min: min,
	}
}
