// Package metrics exports the current climate state to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Climate struct {
	reg *prometheus.Registry

	temperature prometheus.Gauge
	humidity    prometheus.Gauge
	samples     prometheus.Counter
	window      prometheus.Gauge
}

func NewClimate() *Climate {
	c := &Climate{
		reg: prometheus.NewRegistry(),
		temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "polar_temperature_celsius",
			Help: "Latest simulated temperature reading.",
		}),
		humidity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "polar_humidity_percent",
			Help: "Latest simulated relative humidity reading.",
		}),
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "polar_samples_total",
			Help: "Total readings taken since start.",
		}),
		window: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "polar_history_window_size",
			Help: "Readings currently held in the rolling window.",
		}),
	}

	c.reg.MustRegister(c.temperature, c.humidity, c.samples, c.window)

	return c
}

// Observe records one sampled reading and the resulting window length.
func (c *Climate) Observe(temperature, humidity float64, windowLen int) {
	c.temperature.Set(temperature)
	c.humidity.Set(humidity)
	c.samples.Inc()
	c.window.Set(float64(windowLen))
}

func (c *Climate) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
