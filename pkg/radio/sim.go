package radio

import (
	"net"
	"slices"
	"sync"
)

// SimState is a snapshot of what a SimDriver has been told to do.
type SimState struct {
	OpMode         OpMode
	StationMAC     net.HardwareAddr
	AccessPointMAC net.HardwareAddr
	AccessPoint    AccessPointConfig
	Network        NetworkConfig
	Broadcasting   bool
	Promiscuous    bool
	Connected      bool
	HasCredential  bool
}

// SimDriver is an in-memory Driver for hosts without a radio. It enforces
// the limits the hardware enforces (channel 1-14, SSID length, key length)
// and can be told to reject specific calls.
type SimDriver struct {
	mu      sync.Mutex
	state   SimState
	reject  map[string]string
	history []string
}

// NewSimDriver returns a driver in OpModeOff with persisted credentials,
// as a freshly booted module has.
func NewSimDriver() *SimDriver {
	return &SimDriver{
		state:  SimState{HasCredential: true},
		reject: make(map[string]string),
	}
}

// Reject makes every later call to op fail with reason.
func (d *SimDriver) Reject(op, reason string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reject[op] = reason
}

// Accept clears a rejection set with Reject.
func (d *SimDriver) Accept(op string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.reject, op)
}

// State returns a snapshot of the simulated hardware.
func (d *SimDriver) State() SimState {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.state
	s.StationMAC = slices.Clone(s.StationMAC)
	s.AccessPointMAC = slices.Clone(s.AccessPointMAC)
	return s
}

// Calls returns the names of all applied calls in order.
func (d *SimDriver) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.history)
}

func (d *SimDriver) check(op string) error {
	if reason, ok := d.reject[op]; ok {
		return Rejection(op, "%s", reason)
	}
	return nil
}

func (d *SimDriver) applied(op string) {
	d.history = append(d.history, op)
}

func (d *SimDriver) SetOpMode(mode OpMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(OpSetOpMode); err != nil {
		return err
	}
	if mode > OpModeStationAccessPoint {
		return Rejection(OpSetOpMode, "unknown mode %d", mode)
	}
	d.state.OpMode = mode
	if mode == OpModeOff || mode == OpModeStation {
		d.state.Broadcasting = false
	}
	d.applied(OpSetOpMode)
	return nil
}

func (d *SimDriver) SetHardwareAddr(iface Interface, addr net.HardwareAddr) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(OpSetHardwareAddr); err != nil {
		return err
	}
	if len(addr) != 6 {
		return Rejection(OpSetHardwareAddr, "%s address must be 6 bytes, got %d", iface, len(addr))
	}
	if addr[0]&0x01 != 0 {
		return Rejection(OpSetHardwareAddr, "%s address %s is multicast", iface, addr)
	}
	switch iface {
	case InterfaceStation:
		d.state.StationMAC = slices.Clone(addr)
	case InterfaceAccessPoint:
		d.state.AccessPointMAC = slices.Clone(addr)
	default:
		return Rejection(OpSetHardwareAddr, "unknown interface %d", iface)
	}
	d.applied(OpSetHardwareAddr)
	return nil
}

func (d *SimDriver) ConfigureNetwork(cfg NetworkConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(OpConfigureNetwork); err != nil {
		return err
	}
	if cfg.IP.To4() == nil {
		return Rejection(OpConfigureNetwork, "address %v is not IPv4", cfg.IP)
	}
	if ones, bits := cfg.Netmask.Size(); bits != 32 || ones == 0 {
		return Rejection(OpConfigureNetwork, "invalid netmask %v", cfg.Netmask)
	}
	d.state.Network = cfg
	d.applied(OpConfigureNetwork)
	return nil
}

func (d *SimDriver) StartAccessPoint(cfg AccessPointConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(OpStartAccessPoint); err != nil {
		return err
	}
	if cfg.Channel < 1 || cfg.Channel > 14 {
		return Rejection(OpStartAccessPoint, "channel %d unsupported", cfg.Channel)
	}
	if len(cfg.SSID) == 0 || len(cfg.SSID) > 32 {
		return Rejection(OpStartAccessPoint, "ssid length %d", len(cfg.SSID))
	}
	if cfg.PSK != nil && len(cfg.PSK) != 32 {
		return Rejection(OpStartAccessPoint, "psk length %d", len(cfg.PSK))
	}
	if d.state.OpMode == OpModeOff {
		d.state.OpMode = OpModeAccessPoint
	} else if d.state.OpMode == OpModeStation {
		d.state.OpMode = OpModeStationAccessPoint
	}
	d.state.AccessPoint = cfg
	d.state.Broadcasting = true
	d.applied(OpStartAccessPoint)
	return nil
}

func (d *SimDriver) SetPromiscuous(enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(OpSetPromiscuous); err != nil {
		return err
	}
	d.state.Promiscuous = enabled
	d.applied(OpSetPromiscuous)
	return nil
}

func (d *SimDriver) Disconnect(clearCredentials bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(OpDisconnect); err != nil {
		return err
	}
	d.state.Connected = false
	if clearCredentials {
		d.state.HasCredential = false
	}
	d.applied(OpDisconnect)
	return nil
}

var _ Driver = (*SimDriver)(nil)
