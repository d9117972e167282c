package main

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/tournevent/ratequote/pkg/shipper/fedex"
)

// loadShipment reads a shipment description (JSON or YAML, by extension)
// from path. Service parameters missing from the file fall back to defaults.
func loadShipment(path string, defaults fedex.Settings) (*fedex.ShipmentInfo, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("service_code", fedex.DefaultServiceCode)
	v.SetDefault("service_params.user_key", defaults.UserKey)
	v.SetDefault("service_params.user_key_password", defaults.UserKeyPassword)
	v.SetDefault("service_params.account_number", defaults.AccountNumber)
	v.SetDefault("service_params.meter_number", defaults.MeterNumber)
	v.SetDefault("service_params.drop_off_type", defaults.DropOffType)
	v.SetDefault("service_params.package_type", defaults.PackageType)
	v.SetDefault("service_params.test_mode", defaults.TestMode)
	v.SetDefault("service_params.box.length", defaults.Box.Length)
	v.SetDefault("service_params.box.width", defaults.Box.Width)
	v.SetDefault("service_params.box.height", defaults.Box.Height)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read shipment: %w", err)
	}

	var info fedex.ShipmentInfo
	if err := v.Unmarshal(&info); err != nil {
		return nil, fmt.Errorf("decode shipment: %w", err)
	}
	return &info, nil
}
