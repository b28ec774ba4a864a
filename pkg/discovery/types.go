package discovery

import (
	"errors"
	"net"
)

// Service identifiers.
const (
	// ServiceTypeHTTP is the service type of the configuration pages.
	ServiceTypeHTTP = "_http._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the HTTP port advertised when none is given.
	DefaultPort = 80

	// DefaultHostName is the discovery name when none is configured.
	DefaultHostName = "apnode"

	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63
)

// TXT record keys.
const (
	TXTKeyPath    = "path"
	TXTKeyCaptive = "cp"
	TXTKeyVersion = "txtvers"
)

// TXTVersion is the value of TXTKeyVersion.
const TXTVersion = "1"

var (
	ErrNotPublished        = errors.New("discovery: service not published")
	ErrInvalidInstanceName = errors.New("discovery: invalid instance name")
	ErrMissingHost         = errors.New("discovery: missing host name")
	ErrMissingAddress      = errors.New("discovery: missing address")
)

// ServiceInfo describes the published service.
type ServiceInfo struct {
	// Instance is the service instance name.
	Instance string

	// HostName is the name clients resolve, without the .local suffix.
	HostName string

	// Port is the HTTP port. Zero means DefaultPort.
	Port uint16

	// Addrs are the addresses HostName resolves to.
	Addrs []net.IP

	// Path is the content root advertised to clients.
	Path string

	// CaptivePortal reports whether the DNS redirect is active.
	CaptivePortal bool
}

// Validate checks that info can be published.
func (i *ServiceInfo) Validate() error {
	if err := ValidateInstanceName(i.Instance); err != nil {
		return err
	}
	if i.HostName == "" {
		return ErrMissingHost
	}
	if len(i.Addrs) == 0 {
		return ErrMissingAddress
	}
	return nil
}

func (i *ServiceInfo) port() int {
	if i.Port == 0 {
		return DefaultPort
	}
	return int(i.Port)
}

func (i *ServiceInfo) addrStrings() []string {
	out := make([]string, 0, len(i.Addrs))
	for _, a := range i.Addrs {
		out = append(out, a.String())
	}
	return out
}
