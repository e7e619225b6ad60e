package displays

import (
	"io"

	"github.com/turbot/observe/observable"
	"github.com/turbot/observe/station"
)

// Display is an observer that renders weather station updates.
type Display interface {
	observable.Observer[*station.WeatherStation]

	// Identifier returns the unique name the display is registered under
	// in the Factory
	Identifier() string
}

// renderTarget is implemented by all displays so a single option type can
// configure any of them.
type renderTarget interface {
	setWriter(io.Writer)
}

type DisplayOption func(renderTarget)

// WithWriter sets the destination the display renders to. The default is
// os.Stdout.
func WithWriter(w io.Writer) DisplayOption {
	return func(d renderTarget) {
		d.setWriter(w)
	}
}
