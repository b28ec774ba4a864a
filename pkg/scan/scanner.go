// Package scan provides the radio scanner.
//
// A scan takes the radio away from the access point: the access point is
// stopped, the scanner holds the radio lease for the scan duration and the
// access point is resumed afterwards. The mode controller skips DNS
// servicing while the lease is held. Frame capture is not implemented; a
// scan only occupies the radio.
package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/apnode/apnode-go/pkg/log"
	"github.com/apnode/apnode-go/pkg/radio"
	"github.com/apnode/apnode-go/pkg/wifi"
)

// DefaultDuration is used when Scan is given zero.
const DefaultDuration = 10 * time.Second

// ErrScanInProgress is returned when a scan is already running.
var ErrScanInProgress = errors.New("scan: scan in progress")

// AccessPoint is the part of the mode controller a scan drives.
type AccessPoint interface {
	Mode() wifi.Mode
	Stop() error
	Resume() error
}

// Config configures a Scanner.
type Config struct {
	Radio       *radio.Lock
	AccessPoint AccessPoint

	Logger      *slog.Logger
	Diagnostics log.Logger
}

// Scanner occupies the radio for scans.
type Scanner struct {
	config   Config
	scanning atomic.Bool
}

// NewScanner creates a scanner.
func NewScanner(config Config) (*Scanner, error) {
	if config.Radio == nil {
		return nil, errors.New("scan: config: radio lock is required")
	}
	if config.AccessPoint == nil {
		return nil, errors.New("scan: config: access point is required")
	}
	return &Scanner{config: config}, nil
}

// IsScanning reports whether a scan holds the radio.
func (s *Scanner) IsScanning() bool {
	return s.scanning.Load()
}

// Scan runs one scan of duration d. It returns early when ctx is done; the
// access point is resumed either way if it was up before.
func (s *Scanner) Scan(ctx context.Context, d time.Duration) error {
	if !s.scanning.CompareAndSwap(false, true) {
		return ErrScanInProgress
	}
	defer s.scanning.Store(false)

	if d <= 0 {
		d = DefaultDuration
	}

	ap := s.config.AccessPoint
	wasUp := ap.Mode() == wifi.ModeAccessPoint
	if err := ap.Stop(); err != nil {
		return fmt.Errorf("scan: stop access point: %w", err)
	}

	lease, err := s.config.Radio.Acquire(ctx, radio.OwnerScanner)
	if err != nil {
		return errors.Join(fmt.Errorf("scan: acquire radio: %w", err), s.resume(wasUp))
	}

	s.report("IDLE", "SCANNING")
	if s.config.Logger != nil {
		s.config.Logger.Info("scan started", "duration", d)
	}

	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		err = nil
	case <-ctx.Done():
		timer.Stop()
		err = ctx.Err()
	}
	lease.Release()

	s.report("SCANNING", "IDLE")
	if s.config.Logger != nil {
		s.config.Logger.Info("scan finished", "interrupted", err != nil)
	}

	return errors.Join(err, s.resume(wasUp))
}

func (s *Scanner) resume(wasUp bool) error {
	if !wasUp {
		return nil
	}
	if err := s.config.AccessPoint.Resume(); err != nil {
		return fmt.Errorf("scan: resume access point: %w", err)
	}
	return nil
}

func (s *Scanner) report(from, to string) {
	if s.config.Diagnostics == nil {
		return
	}
	s.config.Diagnostics.Log(log.Event{
		Category:  log.CategoryState,
		Component: log.ComponentScanner,
		StateChange: &log.StateChangeEvent{
			OldState: from,
			NewState: to,
		},
	})
}
