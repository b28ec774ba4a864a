package wifi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Field limits.
const (
	MaxPathLen       = 32
	MaxSSIDLen       = 32
	MinPassphraseLen = 8
	MaxPassphraseLen = 64
	MinChannel       = 1
	MaxChannel       = 14
)

// Field names used in validation errors.
const (
	FieldPath       = "path"
	FieldSSID       = "ssid"
	FieldPassphrase = "passphrase"
	FieldChannel    = "channel"
)

// AccessPointSettings are the parameters of the soft access point. Each
// field holds its last successfully validated value.
type AccessPointSettings struct {
	// Path is the alternate content root, always starting with "/".
	Path string

	SSID       string
	Passphrase string
	Channel    int

	// Hidden suppresses the SSID in beacons.
	Hidden bool

	// CaptivePortal enables the DNS redirect.
	CaptivePortal bool
}

// DefaultAccessPointSettings returns the factory settings.
func DefaultAccessPointSettings() AccessPointSettings {
	return AccessPointSettings{
		Path:          "/web",
		SSID:          "pwned",
		Passphrase:    "deauther",
		Channel:       1,
		CaptivePortal: true,
	}
}

// SetPath sets the content root. A missing leading "/" is added.
func (s *AccessPointSettings) SetPath(candidate string) error {
	if !strings.HasPrefix(candidate, "/") {
		candidate = "/" + candidate
	}
	if len(candidate) > MaxPathLen {
		return &ValidationError{
			Field:  FieldPath,
			Value:  candidate,
			Reason: fmt.Sprintf("longer than %d characters", MaxPathLen),
		}
	}
	s.Path = candidate
	return nil
}

// SetSSID sets the network name.
func (s *AccessPointSettings) SetSSID(candidate string) error {
	switch {
	case len(candidate) > MaxSSIDLen:
		return &ValidationError{
			Field:  FieldSSID,
			Value:  candidate,
			Reason: fmt.Sprintf("longer than %d characters", MaxSSIDLen),
		}
	case candidate == "":
		return &ValidationError{Field: FieldSSID, Reason: "empty"}
	}
	s.SSID = candidate
	return nil
}

// SetPassphrase sets the WPA2 passphrase.
func (s *AccessPointSettings) SetPassphrase(candidate string) error {
	switch {
	case len(candidate) > MaxPassphraseLen:
		return &ValidationError{
			Field:  FieldPassphrase,
			Value:  maskSecret(candidate),
			Reason: fmt.Sprintf("longer than %d characters", MaxPassphraseLen),
		}
	case len(candidate) < MinPassphraseLen:
		return &ValidationError{
			Field:  FieldPassphrase,
			Value:  maskSecret(candidate),
			Reason: fmt.Sprintf("shorter than %d characters", MinPassphraseLen),
		}
	}
	s.Passphrase = candidate
	return nil
}

// SetChannel sets the radio channel.
func (s *AccessPointSettings) SetChannel(candidate int) error {
	if candidate < MinChannel || candidate > MaxChannel {
		return &ValidationError{
			Field:  FieldChannel,
			Value:  strconv.Itoa(candidate),
			Reason: fmt.Sprintf("outside [%d,%d]", MinChannel, MaxChannel),
		}
	}
	s.Channel = candidate
	return nil
}

func (s *AccessPointSettings) SetHidden(hidden bool) {
	s.Hidden = hidden
}

func (s *AccessPointSettings) SetCaptivePortal(enabled bool) {
	s.CaptivePortal = enabled
}

// Apply runs every setter with the fields of candidate. Fields that
// validate are kept even if others fail; the failures are joined.
func (s *AccessPointSettings) Apply(candidate AccessPointSettings) error {
	errs := []error{
		s.SetPath(candidate.Path),
		s.SetSSID(candidate.SSID),
		s.SetPassphrase(candidate.Passphrase),
		s.SetChannel(candidate.Channel),
	}
	s.SetHidden(candidate.Hidden)
	s.SetCaptivePortal(candidate.CaptivePortal)
	return errors.Join(errs...)
}

func maskSecret(s string) string {
	return strings.Repeat("*", len(s))
}
