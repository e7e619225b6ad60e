package station

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingObserver captures the temperature visible during each Update.
type recordingObserver struct {
	seen []int
	err  error
}

func (o *recordingObserver) Update(_ context.Context, s *WeatherStation) error {
	celsius, ok := s.Temperature()
	if !ok {
		return errors.New("no reading")
	}
	o.seen = append(o.seen, celsius)
	return o.err
}

func TestWeatherStation_TemperatureAbsentUntilSet(t *testing.T) {
	s := NewWeatherStation("test")

	celsius, ok := s.Temperature()
	assert.False(t, ok, "a new station must report no reading, not a zero reading")
	assert.Equal(t, 0, celsius)

	assert.NoError(t, s.SetTemperature(context.Background(), 0))
	celsius, ok = s.Temperature()
	assert.True(t, ok, "a zero reading is a reading")
	assert.Equal(t, 0, celsius)
}

func TestWeatherStation_TemperatureReflectsLastReading(t *testing.T) {
	ctx := context.Background()
	s := NewWeatherStation("test")

	for _, celsius := range []int{24, 29, 15} {
		assert.NoError(t, s.SetTemperature(ctx, celsius))
	}

	celsius, ok := s.Temperature()
	assert.True(t, ok)
	assert.Equal(t, 15, celsius)
}

func TestWeatherStation_SetTemperatureNotifies(t *testing.T) {
	ctx := context.Background()
	s := NewWeatherStation("test")
	o := &recordingObserver{}
	s.AddObserver(o)

	assert.NoError(t, s.SetTemperature(ctx, 24))
	assert.NoError(t, s.SetTemperature(ctx, 29))

	// each observer sees the new reading during its Update call
	assert.Equal(t, []int{24, 29}, o.seen)
}

func TestWeatherStation_ObserverErrorSurfacesToCaller(t *testing.T) {
	ctx := context.Background()
	s := NewWeatherStation("test")
	updateErr := errors.New("update failed")
	s.AddObserver(&recordingObserver{err: updateErr})

	err := s.SetTemperature(ctx, 24)
	assert.ErrorIs(t, err, updateErr)

	// the reading is assigned before notification, so it sticks even when
	// the pass fails
	celsius, ok := s.Temperature()
	assert.True(t, ok)
	assert.Equal(t, 24, celsius)
}

func TestWeatherStation_ContinueOnErrorOption(t *testing.T) {
	ctx := context.Background()
	s := NewWeatherStation("test", WithContinueOnError())

	failing := &recordingObserver{err: errors.New("update failed")}
	healthy := &recordingObserver{}
	s.AddObserver(failing)
	s.AddObserver(healthy)

	err := s.SetTemperature(ctx, 24)

	assert.Error(t, err)
	// the failing observer did not stop delivery to the healthy one
	assert.Equal(t, []int{24}, healthy.seen)
}

func TestWeatherStation_AddAndRemoveObserver(t *testing.T) {
	ctx := context.Background()
	s := NewWeatherStation("test")
	o := &recordingObserver{}

	s.AddObserver(o)
	assert.Equal(t, 1, s.ObserverCount())
	assert.NoError(t, s.SetTemperature(ctx, 24))

	s.RemoveObserver(o)
	assert.Equal(t, 0, s.ObserverCount())
	assert.NoError(t, s.SetTemperature(ctx, 29))

	// only the reading delivered while registered was seen
	assert.Equal(t, []int{24}, o.seen)
}

func TestWeatherStation_InstancesAreIndependent(t *testing.T) {
	ctx := context.Background()
	s1 := NewWeatherStation("one")
	s2 := NewWeatherStation("two")

	o := &recordingObserver{}
	s1.AddObserver(o)

	assert.NoError(t, s1.SetTemperature(ctx, 24))
	assert.NoError(t, s2.SetTemperature(ctx, 99))

	// the observer is registered with s1 only
	assert.Equal(t, []int{24}, o.seen)
	assert.Equal(t, 0, s2.ObserverCount())

	// and each station holds its own reading
	celsius, _ := s1.Temperature()
	assert.Equal(t, 24, celsius)
	celsius, _ = s2.Temperature()
	assert.Equal(t, 99, celsius)
}
