package wifi

import (
	"errors"
	"log/slog"
	"net"

	"github.com/apnode/apnode-go/pkg/discovery"
	"github.com/apnode/apnode-go/pkg/log"
	"github.com/apnode/apnode-go/pkg/radio"
)

// DNSRedirect is the captive portal DNS service.
type DNSRedirect interface {
	Start(answer net.IP) error
	Stop() error

	// ProcessNext services at most one pending query.
	ProcessNext() (bool, error)
}

// RouteInstaller binds the HTTP route table.
type RouteInstaller interface {
	Install() error
}

// SettingsSource supplies the boot-time settings.
type SettingsSource interface {
	AccessPointSettings() AccessPointSettings
	HardwareAddrs() (station, accessPoint net.HardwareAddr)
}

// Config configures a Controller.
type Config struct {
	// Driver is the radio hardware. Required.
	Driver radio.Driver

	// Radio arbitrates the radio between the controller and the scanner.
	// Required.
	Radio *radio.Lock

	// DNS is the captive portal redirect. Optional.
	DNS DNSRedirect

	// Advertiser publishes the discovery name. Optional.
	Advertiser discovery.Advertiser

	// Routes installs the route table on the first start. Optional.
	Routes RouteInstaller

	// Address is the access point address; the node is its own gateway.
	Address net.IP
	Netmask net.IPMask

	// HostName is the published discovery name.
	HostName string

	// HTTPPort is advertised with the discovery name.
	HTTPPort uint16

	// Logger is used for operational logging. Optional.
	Logger *slog.Logger

	// Diagnostics receives validation failures and transitions. Optional.
	Diagnostics log.Logger
}

// DefaultConfig returns the addressing used by the node. Driver and Radio
// must still be set.
func DefaultConfig() Config {
	return Config{
		Address:  net.IPv4(192, 168, 4, 1),
		Netmask:  net.CIDRMask(24, 32),
		HostName: discovery.DefaultHostName,
		HTTPPort: discovery.DefaultPort,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Driver == nil {
		return errors.New("wifi: config: driver is required")
	}
	if c.Radio == nil {
		return errors.New("wifi: config: radio lock is required")
	}
	if c.Address.To4() == nil {
		return errors.New("wifi: config: address must be IPv4")
	}
	if ones, bits := c.Netmask.Size(); bits != 32 || ones == 0 {
		return errors.New("wifi: config: invalid netmask")
	}
	return nil
}
