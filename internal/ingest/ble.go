package ingest

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"tinygo.org/x/bluetooth"
)

// BLEScanner feeds the registry directly from BLE advertisements,
// bypassing the broker. Useful when the strip runs on the same host as
// a Bluetooth adapter. Devices are identified by their address.
type BLEScanner struct {
	adapter *bluetooth.Adapter
	updater Updater
	running bool
}

// NewBLEScanner creates a scanner on the default adapter.
func NewBLEScanner(updater Updater) *BLEScanner {
	return &BLEScanner{
		adapter: bluetooth.DefaultAdapter,
		updater: updater,
	}
}

// Start enables the adapter and begins scanning in a goroutine. Every
// advertisement updates the registry with the device address and RSSI.
func (s *BLEScanner) Start() error {
	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("enabling BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	s.running = true
	go func() {
		err := s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !s.running {
				return
			}
			s.updater.Update(result.Address.String(), int(result.RSSI))
		})
		if err != nil {
			log.Error().Err(err).Msg("ble scan stopped")
		}
	}()

	return nil
}

// Stop halts the scanner.
func (s *BLEScanner) Stop() {
	s.running = false
	_ = s.adapter.StopScan()
}
