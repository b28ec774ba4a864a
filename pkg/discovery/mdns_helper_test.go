package discovery_test

import (
	"net"
	"testing"

	"github.com/apnode/apnode-go/pkg/discovery"
	"github.com/enbility/zeroconf/v3/mocks"
	"github.com/stretchr/testify/mock"
)

// testAdvertiserConfig returns an AdvertiserConfig with mock connections.
// This allows tests to run without binding to real network interfaces.
func testAdvertiserConfig(t *testing.T) discovery.AdvertiserConfig {
	factory := mocks.NewMockConnectionFactory(t)
	provider := mocks.NewMockInterfaceProvider(t)

	provider.EXPECT().MulticastInterfaces().Return([]net.Interface{
		{Index: 1, Name: "wlan0", Flags: net.FlagUp | net.FlagMulticast},
	}).Maybe()

	ipv4Conn := mocks.NewMockPacketConn(t)
	ipv6Conn := mocks.NewMockPacketConn(t)
	setupMockPacketConn(ipv4Conn)
	setupMockPacketConn(ipv6Conn)

	factory.EXPECT().CreateIPv4Conn(mock.Anything).Return(ipv4Conn, nil).Maybe()
	factory.EXPECT().CreateIPv6Conn(mock.Anything).Return(ipv6Conn, nil).Maybe()

	cfg := discovery.DefaultAdvertiserConfig()
	cfg.ConnectionFactory = factory
	cfg.InterfaceProvider = provider
	return cfg
}

// setupMockPacketConn configures a mock packet connection with basic expectations.
func setupMockPacketConn(conn *mocks.MockPacketConn) {
	conn.EXPECT().JoinGroup(mock.Anything, mock.Anything).Return(nil).Maybe()
	conn.EXPECT().LeaveGroup(mock.Anything, mock.Anything).Return(nil).Maybe()
	conn.EXPECT().WriteTo(mock.Anything, mock.Anything, mock.Anything).Return(0, nil).Maybe()

	// ReadFrom returns nothing; Shutdown ends the receive loop.
	conn.EXPECT().ReadFrom(mock.Anything).RunAndReturn(func(b []byte) (int, int, net.Addr, error) {
		return 0, 0, nil, nil
	}).Maybe()

	conn.EXPECT().Close().Return(nil).Maybe()
	conn.EXPECT().SetMulticastTTL(mock.Anything).Return(nil).Maybe()
	conn.EXPECT().SetMulticastHopLimit(mock.Anything).Return(nil).Maybe()
	conn.EXPECT().SetMulticastInterface(mock.Anything).Return(nil).Maybe()
}
