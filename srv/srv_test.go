package srv

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgolla/polar/internal/climate"
	"github.com/sgolla/polar/internal/history"
)

type stubSource struct {
	readings []climate.Reading
	i        int
}

func (s *stubSource) Read() climate.Reading {
	r := s.readings[s.i%len(s.readings)]
	s.i++

	return r
}

type mockHap struct {
	temps, humis []float64
}

func (m *mockHap) SetCurrentTemperature(t float64) { m.temps = append(m.temps, t) }
func (m *mockHap) SetCurrentHumidity(h float64)    { m.humis = append(m.humis, h) }
func (m *mockHap) ListenAndServe(ctx context.Context) error {
	<-ctx.Done()

	return nil
}

type mockMetrics struct {
	observed int
}

func (m *mockMetrics) Observe(_, _ float64, _ int) { m.observed++ }
func (m *mockMetrics) Handler() http.Handler       { return http.NotFoundHandler() }

type mockNotifier struct {
	titles []string
}

func (m *mockNotifier) Notify(title, _ string) error {
	m.titles = append(m.titles, title)

	return nil
}

var testBase = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func testReading(i int, temp float64) climate.Reading {
	return climate.Reading{
		Timestamp:   testBase.Add(time.Duration(i) * 10 * time.Second),
		Temperature: temp,
		Humidity:    80.0 + float64(i),
	}
}

func newTestServer(readings []climate.Reading) (*Server, *mockHap, *mockMetrics, *mockNotifier) {
	hap := &mockHap{}
	m := &mockMetrics{}
	n := &mockNotifier{}
	s := New(&stubSource{readings: readings}, history.New(10), hap, n, m)

	return s, hap, m, n
}

func TestFormatUptime(t *testing.T) {
	server := &Server{
		startTime: time.Now().Add(-65 * time.Minute), // 1 hour and 5 minutes ago
	}

	uptime := server.formatUptime()
	expected := "(uptime: 1h 5m)"

	if uptime != expected {
		t.Errorf("Expected uptime %s, got %s", expected, uptime)
	}
}

func TestFormatUptimeMinutes(t *testing.T) {
	server := &Server{
		startTime: time.Now().Add(-30 * time.Minute),
	}

	uptime := server.formatUptime()
	expected := "(uptime: 30m)"

	if uptime != expected {
		t.Errorf("Expected uptime %s, got %s", expected, uptime)
	}
}

func TestFormatUptimeDays(t *testing.T) {
	server := &Server{
		startTime: time.Now().Add(-25*time.Hour - 30*time.Minute),
	}

	uptime := server.formatUptime()
	expected := "(uptime: 1d 1h 30m)"

	if uptime != expected {
		t.Errorf("Expected uptime %s, got %s", expected, uptime)
	}
}

func TestTitleWithUptime(t *testing.T) {
	server := &Server{
		startTime: time.Now().Add(-45 * time.Minute),
	}

	title := server.title()
	expected := "Simulator: 🟢 Live (uptime: 45m)\n"

	if title != expected {
		t.Errorf("Expected title %q, got %q", expected, title)
	}
}

func TestSample(t *testing.T) {
	s, hap, m, _ := newTestServer([]climate.Reading{
		testReading(1, -27.5),
		testReading(2, -26.1),
	})

	s.sample()
	s.sample()

	assert.Equal(t, 2, s.hist.Len())
	assert.Equal(t, []float64{-27.5, -26.1}, hap.temps)
	assert.Equal(t, []float64{81, 82}, hap.humis)
	assert.Equal(t, 2, m.observed)
}

func TestColdSnapAlert(t *testing.T) {
	s, _, _, n := newTestServer([]climate.Reading{testReading(1, -29.9)})

	s.sample()
	s.sample() // within cooldown, must stay quiet

	require.Len(t, n.titles, 1)
	assert.Equal(t, "❄️ Cold snap", n.titles[0])
}

func TestColdSnapNotTriggeredAboveThreshold(t *testing.T) {
	s, _, _, n := newTestServer([]climate.Reading{testReading(1, -27.0)})

	s.sample()

	assert.Empty(t, n.titles)
}

func TestHandleLatestEmpty(t *testing.T) {
	s, _, _, _ := newTestServer(nil)

	rec := httptest.NewRecorder()
	s.handleLatest(rec, httptest.NewRequest(http.MethodGet, "/api/latest", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandleLatest(t *testing.T) {
	s, _, _, _ := newTestServer([]climate.Reading{testReading(3, -28.2)})
	s.sample()

	rec := httptest.NewRecorder()
	s.handleLatest(rec, httptest.NewRequest(http.MethodGet, "/api/latest", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got climate.Reading
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, -28.2, got.Temperature)
	assert.Equal(t, 83.0, got.Humidity)
	assert.True(t, got.Timestamp.Equal(testReading(3, -28.2).Timestamp))
}

func TestHandleReadings(t *testing.T) {
	s, _, _, _ := newTestServer([]climate.Reading{
		testReading(1, -29.0),
		testReading(2, -28.0),
		testReading(3, -27.0),
	})
	s.sample()
	s.sample()
	s.sample()

	rec := httptest.NewRecorder()
	s.handleReadings(rec, httptest.NewRequest(http.MethodGet, "/api/readings", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got readingsJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

	require.Len(t, got.Readings, 3)
	require.Len(t, got.Temperature.Trend, 3)
	require.Len(t, got.Humidity.Trend, 3)

	// temperatures rise 1°C per sample
	assert.InDelta(t, 1.0, got.Temperature.Slope, 1e-9)
	assert.InDelta(t, -29.0, got.Temperature.Intercept, 1e-9)
}

func TestHandleText(t *testing.T) {
	s, _, _, _ := newTestServer([]climate.Reading{
		testReading(1, -28.0),
		testReading(2, -27.5),
	})
	s.startTime = time.Now()
	s.sample()
	s.sample()

	rec := httptest.NewRecorder()
	s.handleText(rec, httptest.NewRequest(http.MethodGet, "/text", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "Simulator: 🟢 Live")
	assert.Contains(t, body, "Temp -27.50 °C")
	assert.Contains(t, body, "Humi 82.00 %")
	assert.Contains(t, body, "+-----------------+")
}

func TestHandleTextEmpty(t *testing.T) {
	s, _, _, _ := newTestServer(nil)

	rec := httptest.NewRecorder()
	s.handleText(rec, httptest.NewRequest(http.MethodGet, "/text", nil))

	assert.Contains(t, rec.Body.String(), "no readings yet")
}
