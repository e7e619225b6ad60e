package displays

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/turbot/observe/station"
)

const CurrentConditionsIdentifier = "current_conditions"

// CurrentConditionsDisplay renders the station's latest reading. It keeps
// no history - each update overwrites the previous one.
type CurrentConditionsDisplay struct {
	writer io.Writer
}

func NewCurrentConditionsDisplay(opts ...DisplayOption) *CurrentConditionsDisplay {
	d := &CurrentConditionsDisplay{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *CurrentConditionsDisplay) Identifier() string {
	return CurrentConditionsIdentifier
}

// Update renders the station's current temperature. A station that has not
// reported yet is rendered as "unknown" rather than skipped, so the display
// always reflects the latest notification.
func (d *CurrentConditionsDisplay) Update(_ context.Context, s *station.WeatherStation) error {
	celsius, ok := s.Temperature()
	if !ok {
		_, err := fmt.Fprintln(d.writer, "CurrentConditionsDisplay: The current temperature is unknown")
		return err
	}

	_, err := fmt.Fprintf(d.writer, "CurrentConditionsDisplay: The current temperature is %d°C\n", celsius)
	return err
}

func (d *CurrentConditionsDisplay) setWriter(w io.Writer) {
	d.writer = w
}
