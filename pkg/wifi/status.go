package wifi

import (
	"fmt"
	"strconv"
)

// Status is a point-in-time snapshot of the controller.
type Status struct {
	Mode     Mode
	Settings AccessPointSettings

	// DNSRunning reports whether the captive portal redirect is active.
	DNSRunning bool

	// RoutesInstalled reports whether the route table is bound.
	RoutesInstalled bool

	// Published reports whether the discovery name is announced.
	Published bool
}

// String renders the status line printed by the status command.
func (s Status) String() string {
	return fmt.Sprintf("[WiFi] Path: '%s', Mode: '%s', SSID: '%s', password: '%s', channel: '%d', hidden: %s, captive-portal: %s",
		s.Settings.Path,
		s.Mode,
		s.Settings.SSID,
		s.Settings.Passphrase,
		s.Settings.Channel,
		strconv.FormatBool(s.Settings.Hidden),
		strconv.FormatBool(s.Settings.CaptivePortal),
	)
}

// Status returns the current status snapshot.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		Mode:            c.mode,
		Settings:        c.settings,
		DNSRunning:      c.dnsRunning,
		RoutesInstalled: c.routesInstalled,
		Published:       c.published,
	}
}

// StatusLine returns the status command output.
func (c *Controller) StatusLine() string {
	return c.Status().String()
}
