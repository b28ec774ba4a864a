package discovery

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// MDNSAdvertiser implements the Advertiser interface using zeroconf.
type MDNSAdvertiser struct {
	config AdvertiserConfig

	mu     sync.Mutex
	server *zeroconf.Server
	info   *ServiceInfo
}

// NewMDNSAdvertiser creates a new mDNS advertiser.
func NewMDNSAdvertiser(config AdvertiserConfig) *MDNSAdvertiser {
	return &MDNSAdvertiser{config: config}
}

// getInterfaces returns the network interfaces to use for advertising.
// Returns nil to let zeroconf pick all multicast interfaces.
func (a *MDNSAdvertiser) getInterfaces() []net.Interface {
	if a.config.Interface != "" {
		iface, err := net.InterfaceByName(a.config.Interface)
		if err != nil {
			return nil
		}
		return []net.Interface{*iface}
	}
	if a.config.InterfaceProvider != nil {
		return a.config.InterfaceProvider.MulticastInterfaces()
	}
	return nil
}

func (a *MDNSAdvertiser) serverOptions() []zeroconf.ServerOption {
	var opts []zeroconf.ServerOption
	if a.config.TTL > 0 {
		opts = append(opts, zeroconf.TTL(uint32(a.config.TTL.Seconds())))
	}
	if a.config.ConnectionFactory != nil {
		opts = append(opts, zeroconf.WithServerConnFactory(a.config.ConnectionFactory))
	}
	if a.config.InterfaceProvider != nil {
		opts = append(opts, zeroconf.WithServerInterfaceProvider(a.config.InterfaceProvider))
	}
	return opts
}

// Publish starts advertising info. The host name resolves to info.Addrs
// rather than to the addresses of the interface, so the access point
// address is announced even before the interface reports it.
func (a *MDNSAdvertiser) Publish(ctx context.Context, info *ServiceInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Stop existing if any
	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
		a.info = nil
	}

	server, err := zeroconf.RegisterProxy(
		info.Instance,
		ServiceTypeHTTP,
		Domain,
		info.port(),
		info.HostName,
		info.addrStrings(),
		TXTRecordsToStrings(EncodeServiceTXT(info)),
		a.getInterfaces(),
		a.serverOptions()...,
	)
	if err != nil {
		return fmt.Errorf("failed to register http service: %w", err)
	}

	copied := *info
	a.server = server
	a.info = &copied
	return nil
}

// Update replaces the TXT records of the current publication.
func (a *MDNSAdvertiser) Update(info *ServiceInfo) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return ErrNotPublished
	}
	a.server.SetText(TXTRecordsToStrings(EncodeServiceTXT(info)))
	a.info.Path = info.Path
	a.info.CaptivePortal = info.CaptivePortal
	return nil
}

// Stop withdraws the publication.
func (a *MDNSAdvertiser) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
		a.info = nil
	}
	return nil
}

// Published returns a copy of the current publication, or nil.
func (a *MDNSAdvertiser) Published() *ServiceInfo {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.info == nil {
		return nil
	}
	copied := *a.info
	return &copied
}

var _ Advertiser = (*MDNSAdvertiser)(nil)
