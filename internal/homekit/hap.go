// Package homekit exposes the simulated climate as HomeKit accessories.
package homekit

import (
	"context"

	"github.com/brutella/hap"
	"github.com/brutella/hap/accessory"

	"github.com/sgolla/polar/log"
)

type HapSrvOpts struct {
	DB  hap.Store
	Pin string

	Bridge      *accessory.Bridge
	Thermometer *accessory.Thermometer
	Humidifier  *accessory.Humidifier
}

type HapSrv struct {
	srv         *hap.Server
	thermometer *accessory.Thermometer
	humidifier  *accessory.Humidifier
}

func NewHapSrv(opts *HapSrvOpts) (*HapSrv, error) {
	log.Info.Println("make HapSrv")

	// stable accessory ids, see: https://github.com/brutella/hap/pull/53
	opts.Bridge.A.Id = 1
	opts.Thermometer.A.Id = 2
	opts.Humidifier.A.Id = 3

	s, err := hap.NewServer(
		opts.DB,
		opts.Bridge.A,
		opts.Thermometer.A,
		opts.Humidifier.A,
	)
	if err != nil {
		return nil, err
	}

	if opts.Pin != "" {
		log.Info.Printf("set custom PIN")
		s.Pin = opts.Pin
	}

	return &HapSrv{
		srv:         s,
		thermometer: opts.Thermometer,
		humidifier:  opts.Humidifier,
	}, nil
}

func (s *HapSrv) SetCurrentTemperature(t float64) {
	s.thermometer.TempSensor.CurrentTemperature.SetValue(t)
}

func (s *HapSrv) SetCurrentHumidity(h float64) {
	s.humidifier.Humidifier.CurrentRelativeHumidity.SetValue(h)
}

func (s *HapSrv) ListenAndServe(ctx context.Context) error {
	return s.srv.ListenAndServe(ctx)
}
