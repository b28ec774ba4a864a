package discovery

import (
	"context"
	"time"

	"github.com/enbility/zeroconf/v3/api"
)

// Advertiser publishes the node's discovery name.
type Advertiser interface {
	// Publish starts advertising info, replacing any earlier publication.
	Publish(ctx context.Context, info *ServiceInfo) error

	// Update replaces the TXT records of the current publication.
	Update(info *ServiceInfo) error

	// Stop withdraws the publication. Stopping when nothing is published
	// is a no-op.
	Stop() error
}

// AdvertiserConfig configures the advertiser.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all multicast interfaces.
	Interface string

	// TTL is the DNS record TTL.
	// Default: 120 seconds.
	TTL time.Duration

	// ConnectionFactory creates multicast connections.
	// Nil uses the zeroconf default.
	ConnectionFactory api.ConnectionFactory

	// InterfaceProvider lists network interfaces.
	// Nil uses the zeroconf default.
	InterfaceProvider api.InterfaceProvider
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		Interface: "",
		TTL:       120 * time.Second,
	}
}
