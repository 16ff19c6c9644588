// Package climate simulates Arctic climate readings. It stands in for a real
// sensor: every Read returns a fresh bounded pseudo-random sample.
package climate

import (
	"math"
	"math/rand"
	"time"
)

// Reading is one synthetic timestamped climate sample. Readings are never
// mutated after creation.
type Reading struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"` // °C
	Humidity    float64   `json:"humidity"`    // %RH
}

const (
	defaultTempLo = -30.0
	defaultTempHi = -25.0
	defaultHumiLo = 70.0
	defaultHumiHi = 95.0
)

type Option func(s *Simulator)

func WithTemperatureBand(lo, hi float64) Option {
	return func(s *Simulator) {
		s.tempLo, s.tempHi = lo, hi
	}
}

func WithHumidityBand(lo, hi float64) Option {
	return func(s *Simulator) {
		s.humiLo, s.humiHi = lo, hi
	}
}

func WithRand(rnd *rand.Rand) Option {
	return func(s *Simulator) {
		s.rnd = rnd
	}
}

// WithClock replaces the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		s.now = now
	}
}

type Simulator struct {
	tempLo, tempHi float64
	humiLo, humiHi float64

	rnd *rand.Rand
	now func() time.Time
}

func New(opts ...Option) *Simulator {
	s := &Simulator{
		tempLo: defaultTempLo,
		tempHi: defaultTempHi,
		humiLo: defaultHumiLo,
		humiHi: defaultHumiHi,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // simulation, not crypto
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Read produces one sample stamped with the current time. Temperature and
// humidity are drawn independently, uniform within their bands, rounded to
// one decimal place. Read cannot fail.
func (s *Simulator) Read() Reading {
	return Reading{
		Timestamp:   s.now(),
		Temperature: round1(s.tempLo + (s.tempHi-s.tempLo)*s.rnd.Float64()),
		Humidity:    round1(s.humiLo + (s.humiHi-s.humiLo)*s.rnd.Float64()),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
