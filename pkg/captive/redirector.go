// Package captive implements the captive-portal DNS redirect.
//
// While running, the Redirector answers every A query, whatever the name,
// with the access point's own address so that clients land on the node's
// configuration pages. Queries are serviced one at a time from the host
// tick loop via ProcessNext; nothing is read in the background.
package captive

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/miekg/dns"
)

// Default configuration values.
const (
	DefaultListenAddr  = ":53"
	DefaultTTL         = 60
	DefaultPollTimeout = time.Millisecond
)

var (
	// ErrNotRunning is returned by ProcessNext before Start.
	ErrNotRunning = errors.New("captive: redirector not running")

	// ErrAlreadyRunning is returned by Start when already started.
	ErrAlreadyRunning = errors.New("captive: redirector already running")
)

// Config configures a Redirector.
type Config struct {
	// ListenAddr is the UDP address to bind.
	ListenAddr string

	// TTL is the TTL of redirect answers, in seconds.
	TTL uint32

	// PollTimeout bounds how long ProcessNext waits for a queued query.
	PollTimeout time.Duration

	// ListenPacket opens the socket. Defaults to net.ListenPacket.
	ListenPacket func(network, address string) (net.PacketConn, error)

	// Logger is optional.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used on the node.
func DefaultConfig() Config {
	return Config{
		ListenAddr:  DefaultListenAddr,
		TTL:         DefaultTTL,
		PollTimeout: DefaultPollTimeout,
	}
}

// Redirector answers DNS queries with a fixed address.
type Redirector struct {
	config Config
	logger *slog.Logger

	mu      sync.Mutex
	conn    net.PacketConn
	answer  net.IP
	buf     []byte
	served  uint64
	dropped uint64
}

// NewRedirector creates a stopped Redirector.
func NewRedirector(cfg Config) *Redirector {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}
	if cfg.ListenPacket == nil {
		cfg.ListenPacket = net.ListenPacket
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Redirector{
		config: cfg,
		logger: logger,
		buf:    make([]byte, dns.MaxMsgSize),
	}
}

// Start binds the socket and begins answering with answer.
func (r *Redirector) Start(answer net.IP) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn != nil {
		return ErrAlreadyRunning
	}
	ip4 := answer.To4()
	if ip4 == nil {
		return fmt.Errorf("captive: answer %v is not IPv4", answer)
	}

	conn, err := r.config.ListenPacket("udp", r.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("captive: failed to listen on %s: %w", r.config.ListenAddr, err)
	}
	r.conn = conn
	r.answer = ip4
	r.logger.Info("dns redirect started", "addr", conn.LocalAddr().String(), "answer", ip4.String())
	return nil
}

// Stop closes the socket. Stopping a stopped Redirector is a no-op.
func (r *Redirector) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil {
		return nil
	}
	err := r.conn.Close()
	r.conn = nil
	return err
}

// Running reports whether Start has succeeded and Stop has not been called.
func (r *Redirector) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conn != nil
}

// LocalAddr returns the bound address, or nil when stopped.
func (r *Redirector) LocalAddr() net.Addr {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil {
		return nil
	}
	return r.conn.LocalAddr()
}

// Stats returns the number of answered and discarded queries.
func (r *Redirector) Stats() (served, dropped uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.served, r.dropped
}

// ProcessNext services at most one pending query. It reports whether a
// query was answered. Waiting longer than PollTimeout is not an error.
func (r *Redirector) ProcessNext() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil {
		return false, ErrNotRunning
	}

	if err := r.conn.SetReadDeadline(time.Now().Add(r.config.PollTimeout)); err != nil {
		return false, err
	}
	n, from, err := r.conn.ReadFrom(r.buf)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return false, nil
		}
		return false, err
	}

	req := new(dns.Msg)
	if err := req.Unpack(r.buf[:n]); err != nil {
		r.dropped++
		r.logger.Debug("dns redirect: malformed query", "from", from.String(), "error", err)
		return false, nil
	}
	if req.Response {
		r.dropped++
		return false, nil
	}

	resp, err := r.reply(req).Pack()
	if err != nil {
		return false, fmt.Errorf("captive: failed to pack reply: %w", err)
	}
	if _, err := r.conn.WriteTo(resp, from); err != nil {
		return false, fmt.Errorf("captive: failed to send reply: %w", err)
	}
	r.served++
	return true, nil
}

// reply answers every A question with the redirect address. Other question
// types get an empty NOERROR answer.
func (r *Redirector) reply(req *dns.Msg) *dns.Msg {
	m := new(dns.Msg)
	m.SetReply(req)
	m.Authoritative = true
	m.Rcode = dns.RcodeSuccess

	for _, q := range req.Question {
		if q.Qclass != dns.ClassINET && q.Qclass != dns.ClassANY {
			continue
		}
		if q.Qtype != dns.TypeA && q.Qtype != dns.TypeANY {
			continue
		}
		m.Answer = append(m.Answer, &dns.A{
			Hdr: dns.RR_Header{
				Name:   q.Name,
				Rrtype: dns.TypeA,
				Class:  dns.ClassINET,
				Ttl:    r.config.TTL,
			},
			A: r.answer,
		})
	}
	return m
}
