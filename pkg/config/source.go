package config

import (
	"net"

	"github.com/apnode/apnode-go/pkg/wifi"
)

// AccessPointSettings returns the boot settings for the mode controller.
func (s *Settings) AccessPointSettings() wifi.AccessPointSettings {
	return wifi.AccessPointSettings{
		Path:          s.Web.Path,
		SSID:          s.AccessPoint.SSID,
		Passphrase:    s.AccessPoint.Password,
		Channel:       s.WiFi.Channel,
		Hidden:        s.AccessPoint.Hidden,
		CaptivePortal: s.Web.CaptivePortal,
	}
}

// HardwareAddrs returns the configured station and access point addresses.
// Validate has already checked both; an unparsable value yields nil, which
// the driver rejects.
func (s *Settings) HardwareAddrs() (station, accessPoint net.HardwareAddr) {
	station, _ = net.ParseMAC(s.WiFi.StationMAC)
	accessPoint, _ = net.ParseMAC(s.WiFi.AccessPointMAC)
	return station, accessPoint
}

var _ wifi.SettingsSource = (*Settings)(nil)
