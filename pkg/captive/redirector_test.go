package captive

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestRedirector(t *testing.T) *Redirector {
	t.Helper()
	r := NewRedirector(Config{
		ListenAddr:  "127.0.0.1:0",
		TTL:         30,
		PollTimeout: 500 * time.Millisecond,
	})
	require.NoError(t, r.Start(net.IPv4(192, 168, 4, 1)))
	t.Cleanup(func() { r.Stop() })
	return r
}

func dialRedirector(t *testing.T, r *Redirector) net.Conn {
	t.Helper()
	conn, err := net.Dial("udp", r.LocalAddr().String())
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendQuery(t *testing.T, conn net.Conn, name string, qtype uint16) {
	t.Helper()
	q := new(dns.Msg)
	q.SetQuestion(dns.Fqdn(name), qtype)
	data, err := q.Pack()
	require.NoError(t, err)
	_, err = conn.Write(data)
	require.NoError(t, err)
}

func readReply(t *testing.T, conn net.Conn) *dns.Msg {
	t.Helper()
	buf := make([]byte, dns.MaxMsgSize)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, err := conn.Read(buf)
	require.NoError(t, err)
	m := new(dns.Msg)
	require.NoError(t, m.Unpack(buf[:n]))
	return m
}

func TestRedirectorAnswersAnyName(t *testing.T) {
	r := startTestRedirector(t)
	conn := dialRedirector(t, r)

	for _, name := range []string{"example.com", "connectivitycheck.gstatic.com", "deauth.me"} {
		sendQuery(t, conn, name, dns.TypeA)

		ok, err := r.ProcessNext()
		require.NoError(t, err)
		require.True(t, ok, "query for %s not serviced", name)

		reply := readReply(t, conn)
		assert.Equal(t, dns.RcodeSuccess, reply.Rcode)
		require.Len(t, reply.Answer, 1)
		a, isA := reply.Answer[0].(*dns.A)
		require.True(t, isA)
		assert.Equal(t, dns.Fqdn(name), a.Hdr.Name)
		assert.True(t, a.A.Equal(net.IPv4(192, 168, 4, 1)))
		assert.Equal(t, uint32(30), a.Hdr.Ttl)
	}

	served, dropped := r.Stats()
	assert.Equal(t, uint64(3), served)
	assert.Zero(t, dropped)
}

func TestRedirectorEmptyAnswerForAAAA(t *testing.T) {
	r := startTestRedirector(t)
	conn := dialRedirector(t, r)

	sendQuery(t, conn, "example.com", dns.TypeAAAA)
	ok, err := r.ProcessNext()
	require.NoError(t, err)
	require.True(t, ok)

	reply := readReply(t, conn)
	assert.Equal(t, dns.RcodeSuccess, reply.Rcode)
	assert.Empty(t, reply.Answer)
}

func TestRedirectorProcessesOneQueryPerCall(t *testing.T) {
	r := startTestRedirector(t)
	conn := dialRedirector(t, r)

	sendQuery(t, conn, "a.example", dns.TypeA)
	sendQuery(t, conn, "b.example", dns.TypeA)

	ok, err := r.ProcessNext()
	require.NoError(t, err)
	require.True(t, ok)
	served, _ := r.Stats()
	assert.Equal(t, uint64(1), served)

	ok, err = r.ProcessNext()
	require.NoError(t, err)
	require.True(t, ok)
	served, _ = r.Stats()
	assert.Equal(t, uint64(2), served)
}

func TestRedirectorIdlePoll(t *testing.T) {
	r := NewRedirector(Config{ListenAddr: "127.0.0.1:0", PollTimeout: 5 * time.Millisecond})
	require.NoError(t, r.Start(net.IPv4(10, 0, 0, 1)))
	defer r.Stop()

	ok, err := r.ProcessNext()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRedirectorDropsMalformed(t *testing.T) {
	r := startTestRedirector(t)
	conn := dialRedirector(t, r)

	_, err := conn.Write([]byte{0x01, 0x02, 0x03})
	require.NoError(t, err)

	ok, err := r.ProcessNext()
	assert.NoError(t, err)
	assert.False(t, ok)
	_, dropped := r.Stats()
	assert.Equal(t, uint64(1), dropped)
}

func TestRedirectorLifecycle(t *testing.T) {
	r := NewRedirector(Config{ListenAddr: "127.0.0.1:0"})

	_, err := r.ProcessNext()
	assert.ErrorIs(t, err, ErrNotRunning)
	assert.False(t, r.Running())
	assert.Nil(t, r.LocalAddr())

	assert.Error(t, r.Start(net.ParseIP("fe80::1")))
	require.NoError(t, r.Start(net.IPv4(192, 168, 4, 1)))
	assert.True(t, r.Running())
	assert.ErrorIs(t, r.Start(net.IPv4(192, 168, 4, 1)), ErrAlreadyRunning)

	require.NoError(t, r.Stop())
	assert.False(t, r.Running())
	assert.NoError(t, r.Stop())
}

func TestRedirectorListenFailure(t *testing.T) {
	boom := errors.New("boom")
	r := NewRedirector(Config{
		ListenPacket: func(string, string) (net.PacketConn, error) { return nil, boom },
	})

	err := r.Start(net.IPv4(192, 168, 4, 1))
	assert.ErrorIs(t, err, boom)
	assert.False(t, r.Running())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":53", cfg.ListenAddr)
	assert.Equal(t, uint32(60), cfg.TTL)
	assert.Equal(t, time.Millisecond, cfg.PollTimeout)
}
