package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgolla/polar/internal/climate"
)

var base = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func mkReading(i int) climate.Reading {
	return climate.Reading{
		Timestamp:   base.Add(time.Duration(i) * 10 * time.Second),
		Temperature: -30.0 + float64(i)*0.1,
		Humidity:    70.0 + float64(i)*0.5,
	}
}

func TestStore_Empty(t *testing.T) {
	s := New(10)

	_, ok := s.Latest()
	assert.False(t, ok)
	assert.Empty(t, s.Snapshot())
	assert.Equal(t, 0, s.Len())
}

func TestStore_KeepsLastN(t *testing.T) {
	s := New(10)

	for i := 1; i <= 15; i++ {
		s.Append(mkReading(i))
	}

	snap := s.Snapshot()
	require.Len(t, snap, 10)
	for i, r := range snap {
		assert.Equal(t, mkReading(i+6), r)
	}

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, mkReading(15), latest)
}

func TestStore_CapacityNeverExceeded(t *testing.T) {
	s := New(10)

	for i := 0; i < 25; i++ {
		s.Append(mkReading(i))
		assert.LessOrEqual(t, s.Len(), 10)
		assert.LessOrEqual(t, len(s.Snapshot()), 10)
	}
}

func TestStore_LatestIsSnapshotTail(t *testing.T) {
	s := New(5)

	for i := 0; i < 12; i++ {
		s.Append(mkReading(i))

		snap := s.Snapshot()
		latest, ok := s.Latest()
		require.True(t, ok)
		assert.Equal(t, snap[len(snap)-1], latest)
	}
}

func TestStore_OrderedByTimestamp(t *testing.T) {
	s := New(7)

	for i := 0; i < 20; i++ {
		s.Append(mkReading(i))
	}

	snap := s.Snapshot()
	for i := 1; i < len(snap); i++ {
		assert.False(t, snap[i].Timestamp.Before(snap[i-1].Timestamp))
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := New(3)
	s.Append(mkReading(1))
	s.Append(mkReading(2))

	snap := s.Snapshot()
	s.Append(mkReading(3))
	s.Append(mkReading(4))

	// the copy taken before the appends must be unchanged
	require.Len(t, snap, 2)
	assert.Equal(t, mkReading(1), snap[0])
	assert.Equal(t, mkReading(2), snap[1])
}

func TestStore_DefaultCapacity(t *testing.T) {
	s := New(0)
	assert.Equal(t, DefaultCapacity, s.Cap())

	for i := 0; i < DefaultCapacity+3; i++ {
		s.Append(mkReading(i))
	}
	assert.Equal(t, DefaultCapacity, s.Len())
}
