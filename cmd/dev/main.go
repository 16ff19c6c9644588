package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sgolla/polar/internal/climate"
	"github.com/sgolla/polar/internal/history"
	"github.com/sgolla/polar/internal/homekit"
	"github.com/sgolla/polar/internal/metrics"
	"github.com/sgolla/polar/internal/notifier"
	"github.com/sgolla/polar/log"
	"github.com/sgolla/polar/srv"
)

const (
	devInterval = 1 * time.Second
	devCapacity = 60
)

func main() {
	server := srv.New(
		climate.New(),
		history.New(devCapacity),
		homekit.NoopHap{},
		notifier.NewNoop(),
		metrics.NewClimate(),
		srv.WithInterval(devInterval),
	)

	ctx, cancel := context.WithCancel(context.Background())
	go graceful(cancel)

	if err := server.Run(ctx); err != nil {
		log.Erro.Printf("can't run server: %s", err.Error())
		os.Exit(1)
	}
}

func graceful(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	log.Info.Println("server shutdown...")

	signal.Stop(c)
	cancel()

	os.Exit(0)
}
