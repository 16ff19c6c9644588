package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/brutella/hap"
	"github.com/brutella/hap/accessory"

	"github.com/sgolla/polar/internal/climate"
	"github.com/sgolla/polar/internal/history"
	"github.com/sgolla/polar/internal/homekit"
	"github.com/sgolla/polar/internal/metrics"
	"github.com/sgolla/polar/internal/notifier"
	"github.com/sgolla/polar/log"
	"github.com/sgolla/polar/srv"
)

const (
	hapPIN = "11112222" // TODO: use secure pin (not this one)
)

var revision = "HEAD"

func main() {
	log.Debg.Off()
	log.Info.Printf("❄️ revision: %s", revision)

	db := hap.NewFsStore("./db")
	server := srv.New(
		climate.New(),
		history.New(history.DefaultCapacity),
		makeHkSrv(db),
		makeNotifier(),
		metrics.NewClimate(),
		makeOpts()...,
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

	log.Info.Println("bye")

	os.Exit(0)
}

func makeOpts() []srv.Option {
	var opts []srv.Option
	if addr := os.Getenv("POLAR_ADDR"); addr != "" {
		opts = append(opts, srv.WithAddr(addr))
	}

	return opts
}

func makeNotifier() srv.Notifier {
	url := os.Getenv("NTFY_URL")
	if url == "" {
		log.Info.Println("NTFY_URL is not set, cold snap alerts are off")
		return notifier.NewNoop()
	}

	return notifier.NewNtfy(url)
}

func makeHkSrv(db hap.Store) *homekit.HapSrv {
	hk, err := homekit.NewHapSrv(&homekit.HapSrvOpts{
		DB:  db,
		Pin: hapPIN,
		Bridge: accessory.NewBridge(accessory.Info{
			Name:         "Polar Station",
			SerialNumber: "-",
			Manufacturer: "Arctic Research Center",
			Model:        "simulated",
			Firmware:     "-",
		}),
		Thermometer: accessory.NewTemperatureSensor(accessory.Info{
			Name:         "Temperature",
			SerialNumber: "-",
			Manufacturer: "Arctic Research Center",
			Model:        "simulated",
			Firmware:     "-",
		}),
		Humidifier: accessory.NewHumidifier(accessory.Info{
			Name:         "Humidity",
			SerialNumber: "-",
			Manufacturer: "Arctic Research Center",
			Model:        "simulated",
			Firmware:     "-",
		}),
	})
	if err != nil {
		log.Erro.Printf("can't create HAP server: %s", err.Error())
		os.Exit(1)
	}

	return hk
}
