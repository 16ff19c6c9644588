// Package srv runs the sampling loop and serves the dashboard.
package srv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/sgolla/polar/internal/climate"
	"github.com/sgolla/polar/internal/history"
	"github.com/sgolla/polar/internal/trend"
	"github.com/sgolla/polar/log"
)

const (
	defaultAddr     = ":8080"
	defaultInterval = 10 * time.Second

	defaultColdSnapAt       = -29.5
	defaultColdSnapCooldown = 30 * time.Minute
)

type HapServer interface {
	SetCurrentTemperature(t float64)
	SetCurrentHumidity(h float64)

	ListenAndServe(ctx context.Context) error
}

// ClimateSource produces one fresh reading per call. Reads never fail.
type ClimateSource interface {
	Read() climate.Reading
}

type Notifier interface {
	Notify(title, message string) error
}

type Metrics interface {
	Observe(temperature, humidity float64, windowLen int)
	Handler() http.Handler
}

type Option func(s *Server)

func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

func WithInterval(dur time.Duration) Option {
	return func(s *Server) {
		s.interval = dur
	}
}

// WithColdSnap tunes the alert threshold (°C) and the minimum quiet period
// between alerts.
func WithColdSnap(threshold float64, cooldown time.Duration) Option {
	return func(s *Server) {
		s.coldSnapAt = threshold
		s.coldSnapCooldown = cooldown
	}
}

type Server struct {
	webSrv  *http.Server
	hkSrv   HapServer
	source  ClimateSource
	hist    *history.Store
	notify  Notifier
	metrics Metrics

	addr     string
	interval time.Duration

	coldSnapAt       float64
	coldSnapCooldown time.Duration

	mu        sync.Mutex // guards lastAlert
	lastAlert time.Time

	startTime time.Time
}

func New(source ClimateSource, hist *history.Store, hkSrv HapServer, notify Notifier, m Metrics, opts ...Option) *Server {
	s := &Server{
		hkSrv:   hkSrv,
		source:  source,
		hist:    hist,
		notify:  notify,
		metrics: m,

		addr:     defaultAddr,
		interval: defaultInterval,

		coldSnapAt:       defaultColdSnapAt,
		coldSnapCooldown: defaultColdSnapCooldown,

		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Server) Run(ctx context.Context) error {
	go s.sampleLoop(ctx)

	g, ctx := errgroup.WithContext(ctx)

	// go web server
	g.Go(func() error {
		log.Info.Printf("start web server on http://localhost%s", s.addr)
		return s.runWebServer()
	})
	// go hap server
	g.Go(func() error {
		log.Info.Println("start HAP server")
		return s.hkSrv.ListenAndServe(ctx)
	})

	return g.Wait()
}

func (s *Server) sampleLoop(ctx context.Context) {
	log.Info.Printf("start sampling simulated readings every %s", s.interval)

	// take one right away so the first render has data
	s.sample()
	for {
		select {
		case <-ctx.Done():
			log.Info.Println("sampling stopped")
			return
		case <-time.After(s.interval):
			s.sample()
		}
	}
}

func (s *Server) sample() {
	r := s.source.Read()
	s.hist.Append(r)

	s.hkSrv.SetCurrentTemperature(r.Temperature)
	s.hkSrv.SetCurrentHumidity(r.Humidity)
	s.metrics.Observe(r.Temperature, r.Humidity, s.hist.Len())

	log.Debg.Printf("sampled: %.1f °C, %.1f %%", r.Temperature, r.Humidity)

	s.checkColdSnap(r)
}

func (s *Server) checkColdSnap(r climate.Reading) {
	if r.Temperature > s.coldSnapAt {
		return
	}

	s.mu.Lock()
	if time.Since(s.lastAlert) < s.coldSnapCooldown {
		s.mu.Unlock()
		return
	}
	s.lastAlert = time.Now()
	s.mu.Unlock()

	err := s.notify.Notify(
		"❄️ Cold snap",
		fmt.Sprintf("Temperature dropped to %.1f °C at %s", r.Temperature, r.Timestamp.Format("15:04:05")),
	)
	if err != nil {
		log.Erro.Printf("can't send cold snap alert: %s", err.Error())
	}
}

func (s *Server) runWebServer() error {
	if s.webSrv != nil {
		return errors.New("web server already exist")
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/text", s.handleText)
	r.Get("/api/latest", s.handleLatest)
	r.Get("/api/readings", s.handleReadings)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	s.webSrv = &http.Server{
		Addr:              s.addr,
		Handler:           r,
		ReadHeaderTimeout: 1 * time.Second,
	}

	return s.webSrv.ListenAndServe()
}

func (s *Server) handleLatest(w http.ResponseWriter, _ *http.Request) {
	r, ok := s.hist.Latest()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, r)
}

type seriesJSON struct {
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	Trend     []float64 `json:"trend"`
}

type readingsJSON struct {
	Readings    []climate.Reading `json:"readings"`
	Temperature seriesJSON        `json:"temperature"`
	Humidity    seriesJSON        `json:"humidity"`
}

func (s *Server) handleReadings(w http.ResponseWriter, _ *http.Request) {
	readings := s.hist.Snapshot()

	temps := make([]float64, len(readings))
	humis := make([]float64, len(readings))
	for i, r := range readings {
		temps[i] = r.Temperature
		humis[i] = r.Humidity
	}

	resp := readingsJSON{
		Readings:    readings,
		Temperature: fitSeries(temps),
		Humidity:    fitSeries(humis),
	}

	writeJSON(w, resp)
}

func fitSeries(values []float64) seriesJSON {
	slope, intercept := trend.Fit(values)

	return seriesJSON{
		Slope:     slope,
		Intercept: intercept,
		Trend:     trend.Line(values),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Erro.Printf("can't encode response: %s", err.Error())
	}
}
