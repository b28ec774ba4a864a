package radio

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"net"

	"golang.org/x/crypto/pbkdf2"
)

// ErrRejected is matched by every error a Driver returns when the hardware
// refused a configuration.
var ErrRejected = errors.New("radio: configuration rejected")

// Driver call names, used in errors and diagnostic events.
const (
	OpSetOpMode        = "set_opmode"
	OpSetHardwareAddr  = "set_hwaddr"
	OpConfigureNetwork = "configure_network"
	OpStartAccessPoint = "start_ap"
	OpSetPromiscuous   = "set_promiscuous"
	OpDisconnect       = "disconnect"
)

// OpMode is the radio operating mode at the driver level.
type OpMode uint8

const (
	OpModeOff OpMode = iota
	OpModeStation
	OpModeAccessPoint
	OpModeStationAccessPoint
)

// String returns the op-mode name.
func (m OpMode) String() string {
	switch m {
	case OpModeOff:
		return "OFF"
	case OpModeStation:
		return "STATION"
	case OpModeAccessPoint:
		return "AP"
	case OpModeStationAccessPoint:
		return "STATION_AP"
	default:
		return "UNKNOWN"
	}
}

// Interface selects one of the two radio interfaces.
type Interface uint8

const (
	InterfaceStation Interface = iota
	InterfaceAccessPoint
)

// String returns the interface name.
func (i Interface) String() string {
	switch i {
	case InterfaceStation:
		return "STATION"
	case InterfaceAccessPoint:
		return "AP"
	default:
		return "UNKNOWN"
	}
}

// NetworkConfig is the soft-AP addressing. The node is its own gateway.
type NetworkConfig struct {
	IP      net.IP
	Netmask net.IPMask
}

// AccessPointConfig is the soft-AP broadcast configuration.
type AccessPointConfig struct {
	SSID    string
	Channel uint8
	Hidden  bool

	// PSK is the WPA2 pre-shared key derived from the passphrase.
	// Nil for an open network.
	PSK []byte
}

// Driver is the hardware interface used by the mode controller.
type Driver interface {
	SetOpMode(mode OpMode) error
	SetHardwareAddr(iface Interface, addr net.HardwareAddr) error
	ConfigureNetwork(cfg NetworkConfig) error
	StartAccessPoint(cfg AccessPointConfig) error
	SetPromiscuous(enabled bool) error

	// Disconnect drops the station link. clearCredentials also forgets the
	// persisted network credentials.
	Disconnect(clearCredentials bool) error
}

// DerivePSK derives the 256-bit WPA2 pre-shared key for passphrase and ssid
// (IEEE 802.11i, PBKDF2-SHA1 with 4096 iterations).
func DerivePSK(passphrase, ssid string) []byte {
	return pbkdf2.Key([]byte(passphrase), []byte(ssid), 4096, 32, sha1.New)
}

// Rejection builds an error for op that matches ErrRejected.
func Rejection(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrRejected)
}
