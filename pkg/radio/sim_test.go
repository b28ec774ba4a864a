package radio

import (
	"encoding/hex"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimDriverStartAccessPoint(t *testing.T) {
	d := NewSimDriver()

	require.NoError(t, d.SetOpMode(OpModeStation))
	require.NoError(t, d.ConfigureNetwork(NetworkConfig{
		IP:      net.IPv4(192, 168, 4, 1),
		Netmask: net.CIDRMask(24, 32),
	}))
	require.NoError(t, d.StartAccessPoint(AccessPointConfig{
		SSID:    "pwned",
		Channel: 6,
		PSK:     DerivePSK("deauther", "pwned"),
	}))

	st := d.State()
	assert.True(t, st.Broadcasting)
	assert.Equal(t, OpModeStationAccessPoint, st.OpMode)
	assert.Equal(t, uint8(6), st.AccessPoint.Channel)
	assert.Equal(t, []string{OpSetOpMode, OpConfigureNetwork, OpStartAccessPoint}, d.Calls())
}

func TestSimDriverRejectsHardwareLimits(t *testing.T) {
	tests := []struct {
		name string
		cfg  AccessPointConfig
	}{
		{"channel zero", AccessPointConfig{SSID: "x", Channel: 0}},
		{"channel 15", AccessPointConfig{SSID: "x", Channel: 15}},
		{"empty ssid", AccessPointConfig{SSID: "", Channel: 1}},
		{"long ssid", AccessPointConfig{SSID: "0123456789012345678901234567890123", Channel: 1}},
		{"short psk", AccessPointConfig{SSID: "x", Channel: 1, PSK: []byte{1, 2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewSimDriver()
			err := d.StartAccessPoint(tt.cfg)
			assert.ErrorIs(t, err, ErrRejected)
			assert.False(t, d.State().Broadcasting)
			assert.Empty(t, d.Calls())
		})
	}
}

func TestSimDriverReject(t *testing.T) {
	d := NewSimDriver()
	d.Reject(OpSetPromiscuous, "busy")

	err := d.SetPromiscuous(true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRejected))
	assert.Contains(t, err.Error(), OpSetPromiscuous)
	assert.False(t, d.State().Promiscuous)

	d.Accept(OpSetPromiscuous)
	assert.NoError(t, d.SetPromiscuous(true))
	assert.True(t, d.State().Promiscuous)
}

func TestSimDriverHardwareAddr(t *testing.T) {
	d := NewSimDriver()

	st, _ := net.ParseMAC("aa:bb:cc:00:00:01")
	ap, _ := net.ParseMAC("aa:bb:cc:00:00:02")
	require.NoError(t, d.SetHardwareAddr(InterfaceStation, st))
	require.NoError(t, d.SetHardwareAddr(InterfaceAccessPoint, ap))

	assert.Equal(t, st, d.State().StationMAC)
	assert.Equal(t, ap, d.State().AccessPointMAC)

	multicast, _ := net.ParseMAC("01:00:5e:00:00:01")
	assert.ErrorIs(t, d.SetHardwareAddr(InterfaceStation, multicast), ErrRejected)
	assert.ErrorIs(t, d.SetHardwareAddr(InterfaceStation, net.HardwareAddr{1, 2}), ErrRejected)
}

func TestSimDriverDisconnectClearsCredentials(t *testing.T) {
	d := NewSimDriver()
	require.True(t, d.State().HasCredential)

	require.NoError(t, d.Disconnect(false))
	assert.True(t, d.State().HasCredential)

	require.NoError(t, d.Disconnect(true))
	assert.False(t, d.State().HasCredential)
}

func TestSimDriverStationModeStopsBroadcast(t *testing.T) {
	d := NewSimDriver()
	require.NoError(t, d.StartAccessPoint(AccessPointConfig{SSID: "x", Channel: 1}))
	require.True(t, d.State().Broadcasting)

	require.NoError(t, d.SetOpMode(OpModeStation))
	assert.False(t, d.State().Broadcasting)
}

func TestDerivePSK(t *testing.T) {
	// IEEE 802.11i-2004 Annex H.4.1 test vector.
	want, _ := hex.DecodeString("f42c6fc52df0ebef9ebb4b90b38a5f902e83fe1b135a70e23aed762e9710a12e")
	assert.Equal(t, want, DerivePSK("password", "IEEE"))
}
