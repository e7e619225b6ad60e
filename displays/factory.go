package displays

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Factory is the global display factory
var Factory = newDisplayFactory()

type DisplayFactory struct {
	displayFuncs map[string]func(...DisplayOption) Display
}

func newDisplayFactory() DisplayFactory {
	f := DisplayFactory{
		displayFuncs: make(map[string]func(...DisplayOption) Display),
	}
	// register the displays the SDK provides
	f.RegisterDisplays(
		func(opts ...DisplayOption) Display { return NewCurrentConditionsDisplay(opts...) },
		func(opts ...DisplayOption) Display { return NewStatisticsDisplay(opts...) },
	)
	return f
}

// RegisterDisplays registers Display constructors, keyed by the identifier
// of the display each constructs. Applications may call this to make their
// own displays resolvable by name alongside the built-in ones.
func (f *DisplayFactory) RegisterDisplays(displayFuncs ...func(...DisplayOption) Display) {
	for _, ctor := range displayFuncs {
		// create an instance of the display to get the identifier
		d := ctor()
		f.displayFuncs[d.Identifier()] = ctor
	}
}

// GetDisplay instantiates the display registered under the given type name.
// It fails if the requested display type is not registered.
func (f *DisplayFactory) GetDisplay(displayType string, opts ...DisplayOption) (Display, error) {
	ctor, ok := f.displayFuncs[displayType]
	if !ok {
		registered := maps.Keys(f.displayFuncs)
		sort.Strings(registered)
		return nil, fmt.Errorf("display not registered: %s (registered displays: %s)", displayType, strings.Join(registered, ", "))
	}
	return ctor(opts...), nil
}
