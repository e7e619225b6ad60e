package main

import (
	"context"
	"fmt"
	"os"

	"github.com/turbot/observe/config"
	"github.com/turbot/observe/displays"
	"github.com/turbot/observe/logging"
	"github.com/turbot/observe/station"
)

func main() {
	logging.Initialize("weather-station")

	var err error
	if len(os.Args) > 1 {
		err = runFromConfig(context.Background(), os.Args[1])
	} else {
		err = runDemo(context.Background())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// runDemo wires a station to both built-in displays and replays the classic
// sequence: three readings, remove the conditions display, one more reading.
func runDemo(ctx context.Context) error {
	ws := station.NewWeatherStation("backyard")

	conditions := displays.NewCurrentConditionsDisplay()
	statistics := displays.NewStatisticsDisplay()

	ws.AddObserver(conditions)
	ws.AddObserver(statistics)

	for _, celsius := range []int{24, 29, 15} {
		if err := ws.SetTemperature(ctx, celsius); err != nil {
			return err
		}
	}

	ws.RemoveObserver(conditions)

	return ws.SetTemperature(ctx, 21)
}

// runFromConfig builds the station declared in the given HCL config file,
// attaches its displays and replays its readings.
func runFromConfig(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ws := station.NewWeatherStation(cfg.StationName())
	for _, displayType := range cfg.Station.Displays {
		d, err := displays.Factory.GetDisplay(displayType)
		if err != nil {
			return err
		}
		ws.AddObserver(d)
	}

	for _, celsius := range cfg.Station.Readings {
		if err := ws.SetTemperature(ctx, celsius); err != nil {
			return err
		}
	}
	return nil
}
