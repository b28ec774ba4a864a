package wifi

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/apnode/apnode-go/pkg/discovery"
	"github.com/apnode/apnode-go/pkg/log"
	"github.com/apnode/apnode-go/pkg/radio"
)

// Controller is the operating mode state machine.
type Controller struct {
	config Config

	mu       sync.Mutex
	mode     Mode
	settings AccessPointSettings

	started         bool
	routesInstalled bool
	dnsRunning      bool
	published       bool

	handlers []ModeChangeHandler
}

// NewController creates a controller in ModeOff with default settings.
func NewController(config Config) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.HostName == "" {
		config.HostName = discovery.DefaultHostName
	}
	return &Controller{
		config:   config,
		mode:     ModeOff,
		settings: DefaultAccessPointSettings(),
	}, nil
}

// OnModeChange registers a handler called after every transition.
func (c *Controller) OnModeChange(h ModeChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, h)
}

// Mode returns the current operating mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Settings returns a copy of the current settings.
func (c *Controller) Settings() AccessPointSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// Path returns the current content root.
func (c *Controller) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.Path
}

// Initialize loads the boot settings from src, forces ModeOff, switches the
// radio off and into station mode, and programs both hardware addresses.
// It must not be called after Start.
func (c *Controller) Initialize(src SettingsSource) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}

	c.settings = DefaultAccessPointSettings()
	c.applyLocked(src.AccessPointSettings())

	lease, ok := c.config.Radio.TryAcquire(radio.OwnerController)
	if !ok {
		return ErrRadioBusy
	}
	defer lease.Release()

	old := c.mode
	c.mode = ModeOff

	station, accessPoint := src.HardwareAddrs()
	steps := []struct {
		op string
		fn func() error
	}{
		{radio.OpSetOpMode, func() error { return c.config.Driver.SetOpMode(radio.OpModeOff) }},
		{radio.OpSetOpMode, func() error { return c.config.Driver.SetOpMode(radio.OpModeStation) }},
		{radio.OpSetHardwareAddr, func() error {
			return c.config.Driver.SetHardwareAddr(radio.InterfaceStation, station)
		}},
		{radio.OpSetHardwareAddr, func() error {
			return c.config.Driver.SetHardwareAddr(radio.InterfaceAccessPoint, accessPoint)
		}},
	}
	for _, step := range steps {
		if err := c.drive(step.op, step.fn); err != nil {
			return err
		}
	}

	c.transitionLocked(old, ModeOff, "initialize")
	return nil
}

// Start applies settings and brings the access point up. Fields that fail
// validation are reported and keep their previous values; the start still
// proceeds. Nothing is applied while the scanner holds the radio.
//
// Any failure leaves the mode unchanged. When the access point was not
// already up, the radio is returned to station mode and a DNS redirect or
// publication made by this call is withdrawn.
func (c *Controller) Start(ctx context.Context, settings AccessPointSettings) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	lease, ok := c.config.Radio.TryAcquire(radio.OwnerController)
	if !ok {
		return ErrRadioBusy
	}
	defer lease.Release()

	c.applyLocked(settings)

	if c.mode != ModeAccessPoint {
		dnsWasRunning, wasPublished := c.dnsRunning, c.published
		defer func() {
			if err != nil {
				c.rollbackLocked(dnsWasRunning, wasPublished)
			}
		}()
	}

	if err := c.bringUpLocked(); err != nil {
		return err
	}

	if err := c.syncDNSLocked(); err != nil {
		return err
	}

	c.publishLocked(ctx)

	if !c.routesInstalled && c.config.Routes != nil {
		if err := c.config.Routes.Install(); err != nil {
			return fmt.Errorf("wifi: install routes: %w", err)
		}
		c.routesInstalled = true
	}

	c.started = true
	old := c.mode
	c.mode = ModeAccessPoint
	c.transitionLocked(old, ModeAccessPoint, "start")
	return nil
}

// rollbackLocked undoes a partial bring-up so that nothing broadcasts or
// answers outside ModeAccessPoint.
func (c *Controller) rollbackLocked(dnsWasRunning, wasPublished bool) {
	d := c.config.Driver
	if err := c.drive(radio.OpSetOpMode, func() error { return d.SetOpMode(radio.OpModeStation) }); err != nil {
		c.warnLog("rollback: radio still broadcasting", "error", err)
	}
	if c.dnsRunning && !dnsWasRunning {
		if err := c.config.DNS.Stop(); err != nil {
			c.debugLog("rollback: dns redirect stop", "error", err)
		}
		c.dnsRunning = false
	}
	if c.published && !wasPublished {
		if err := c.config.Advertiser.Stop(); err != nil {
			c.debugLog("rollback: discovery stop", "error", err)
		}
		c.published = false
	}
}

// Stop leaves access point mode for station mode. Outside ModeAccessPoint
// it does nothing. The DNS redirect and routes stay installed for Resume.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeAccessPoint {
		return nil
	}

	lease, ok := c.config.Radio.TryAcquire(radio.OwnerController)
	if !ok {
		return ErrRadioBusy
	}
	defer lease.Release()

	d := c.config.Driver
	if err := c.drive(radio.OpSetPromiscuous, func() error { return d.SetPromiscuous(false) }); err != nil {
		return err
	}
	if err := c.drive(radio.OpDisconnect, func() error { return d.Disconnect(true) }); err != nil {
		return err
	}
	if err := c.drive(radio.OpSetOpMode, func() error { return d.SetOpMode(radio.OpModeStation) }); err != nil {
		return err
	}

	c.mode = ModeStation
	c.transitionLocked(ModeAccessPoint, ModeStation, "stop")
	return nil
}

// Resume brings the access point back with the current settings without
// reinstalling routes or the DNS redirect. In ModeAccessPoint it does
// nothing.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeAccessPoint {
		return nil
	}

	lease, ok := c.config.Radio.TryAcquire(radio.OwnerController)
	if !ok {
		return ErrRadioBusy
	}
	defer lease.Release()

	d := c.config.Driver
	if err := c.drive(radio.OpSetPromiscuous, func() error { return d.SetPromiscuous(false) }); err != nil {
		return err
	}
	if err := c.bringUpLocked(); err != nil {
		return err
	}

	old := c.mode
	c.mode = ModeAccessPoint
	c.transitionLocked(old, ModeAccessPoint, "resume")
	return nil
}

// Tick services one pending DNS query. It does nothing in ModeOff, when no
// redirect is running, or while another subsystem holds the radio.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeOff || !c.dnsRunning {
		return
	}

	lease, ok := c.config.Radio.TryAcquire(radio.OwnerController)
	if !ok {
		return
	}
	defer lease.Release()

	if _, err := c.config.DNS.ProcessNext(); err != nil {
		c.debugLog("dns redirect", "error", err)
	}
}

// bringUpLocked configures addressing and starts the broadcast.
func (c *Controller) bringUpLocked() error {
	d := c.config.Driver
	s := c.settings

	netCfg := radio.NetworkConfig{IP: c.config.Address, Netmask: c.config.Netmask}
	if err := c.drive(radio.OpConfigureNetwork, func() error { return d.ConfigureNetwork(netCfg) }); err != nil {
		return err
	}

	apCfg := radio.AccessPointConfig{
		SSID:    s.SSID,
		Channel: uint8(s.Channel),
		Hidden:  s.Hidden,
		PSK:     radio.DerivePSK(s.Passphrase, s.SSID),
	}
	return c.drive(radio.OpStartAccessPoint, func() error { return d.StartAccessPoint(apCfg) })
}

// syncDNSLocked starts or stops the redirect to match the captive portal
// setting.
func (c *Controller) syncDNSLocked() error {
	if c.config.DNS == nil {
		return nil
	}
	switch {
	case c.settings.CaptivePortal && !c.dnsRunning:
		if err := c.config.DNS.Start(c.config.Address); err != nil {
			return fmt.Errorf("wifi: start dns redirect: %w", err)
		}
		c.dnsRunning = true
		c.infoLog("dns redirect enabled", "answer", c.config.Address.String())
	case !c.settings.CaptivePortal && c.dnsRunning:
		if err := c.config.DNS.Stop(); err != nil {
			c.debugLog("dns redirect stop", "error", err)
		}
		c.dnsRunning = false
		c.infoLog("dns redirect disabled")
	}
	return nil
}

// publishLocked announces the discovery name, or refreshes the TXT
// records of a running publication. A failure is logged and does not
// affect the access point.
func (c *Controller) publishLocked(ctx context.Context) {
	if c.config.Advertiser == nil {
		return
	}
	info := &discovery.ServiceInfo{
		Instance:      c.config.HostName,
		HostName:      c.config.HostName,
		Port:          c.config.HTTPPort,
		Addrs:         []net.IP{c.config.Address},
		Path:          c.settings.Path,
		CaptivePortal: c.settings.CaptivePortal,
	}
	if c.published {
		// Host and address are fixed by Config, so only TXT can differ.
		err := c.config.Advertiser.Update(info)
		if err == nil {
			return
		}
		c.debugLog("discovery update failed, republishing", "error", err)
	}
	if err := c.config.Advertiser.Publish(ctx, info); err != nil {
		c.published = false
		c.warnLog("discovery publish failed", "host", c.config.HostName, "error", err)
		return
	}
	c.published = true
}

// applyLocked validates settings into c.settings and reports failures.
func (c *Controller) applyLocked(candidate AccessPointSettings) {
	err := c.settings.Apply(candidate)
	for _, ve := range ValidationErrors(err) {
		c.warnLog("setting rejected", "field", ve.Field, "value", ve.Value, "reason", ve.Reason)
		c.diag(log.Event{
			Category:  log.CategoryValidation,
			Component: log.ComponentValidator,
			Validation: &log.ValidationEvent{
				Field:  ve.Field,
				Value:  ve.Value,
				Reason: ve.Reason,
			},
		})
	}
}

// drive runs a driver call and reports its outcome.
func (c *Controller) drive(op string, fn func() error) error {
	err := fn()
	ev := &log.DriverEvent{Operation: op, Applied: err == nil}
	if err != nil {
		ev.Error = err.Error()
	}
	c.diag(log.Event{Category: log.CategoryDriver, Component: log.ComponentRadio, Driver: ev})
	if err != nil {
		c.warnLog("driver call rejected", "op", op, "error", err)
		return &DriverError{Op: op, Err: err}
	}
	return nil
}

func (c *Controller) transitionLocked(from, to Mode, reason string) {
	c.infoLog("mode changed", "from", from.String(), "to", to.String(), "reason", reason)
	c.diag(log.Event{
		Category:  log.CategoryState,
		Component: log.ComponentController,
		StateChange: &log.StateChangeEvent{
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	})

	change := ModeChange{From: from, To: to, Reason: reason}
	for _, h := range c.handlers {
		go h(change)
	}
}

func (c *Controller) diag(event log.Event) {
	if c.config.Diagnostics == nil {
		return
	}
	event.Mode = c.mode.String()
	c.config.Diagnostics.Log(event)
}

func (c *Controller) debugLog(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, args...)
	}
}

func (c *Controller) infoLog(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, args...)
	}
}

func (c *Controller) warnLog(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Warn(msg, args...)
	}
}
