// Package config loads the node settings file.
//
// The settings file is YAML, grouped the way the node firmware groups its
// settings:
//
//	access_point:
//	  ssid: pwned
//	  password: deauther
//	  hidden: false
//	wifi:
//	  channel: 1
//	  mac_st: "aa:bb:cc:00:00:01"
//	  mac_ap: "aa:bb:cc:00:00:02"
//	web:
//	  path: /web
//	  captive_portal: true
//	  use_storage: false
//	  lang: en
//
// The store is read-only: the node never writes settings back.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/apnode/apnode-go/pkg/content"
)

// Settings is the parsed settings file.
type Settings struct {
	AccessPoint AccessPoint `yaml:"access_point"`
	WiFi        WiFi        `yaml:"wifi"`
	Web         Web         `yaml:"web"`
}

// AccessPoint holds the soft-AP broadcast parameters.
type AccessPoint struct {
	SSID     string `yaml:"ssid"`
	Password string `yaml:"password"`
	Hidden   bool   `yaml:"hidden"`
}

// WiFi holds radio parameters.
type WiFi struct {
	Channel int `yaml:"channel"`

	// StationMAC is the hardware address programmed for station mode.
	StationMAC string `yaml:"mac_st"`

	// AccessPointMAC is the hardware address programmed for soft-AP mode.
	AccessPointMAC string `yaml:"mac_ap"`
}

// Web holds content delivery parameters.
type Web struct {
	// Path is the alternate content root in storage.
	Path string `yaml:"path"`

	// CaptivePortal enables the DNS redirect.
	CaptivePortal bool `yaml:"captive_portal"`

	// UseStorage serves everything from storage and disables the
	// firmware-embedded routes.
	UseStorage bool `yaml:"use_storage"`

	// Lang is the language code served as /lang/default.lang.
	Lang string `yaml:"lang"`
}

// Default returns the factory settings.
func Default() *Settings {
	return &Settings{
		AccessPoint: AccessPoint{
			SSID:     "pwned",
			Password: "deauther",
		},
		WiFi: WiFi{
			Channel:        1,
			StationMAC:     "aa:bb:cc:00:00:01",
			AccessPointMAC: "aa:bb:cc:00:00:02",
		},
		Web: Web{
			Path:          "/web",
			CaptivePortal: true,
			Lang:          "en",
		},
	}
}

// LoadError describes a settings file that could not be loaded.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse decodes settings from YAML. Keys missing from data keep their
// default values.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if err := s.Validate(); err != nil {
		return nil, &LoadError{Message: "invalid settings", Cause: err}
	}
	return s, nil
}

// Load reads the settings file at path. A missing file yields Default().
func Load(path string) (*Settings, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs reads the settings file at path on fs. A missing file yields
// Default().
func LoadFs(fs afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	s, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return nil, err
	}
	return s, nil
}

// Validate checks the fields the node cannot start without. Access point
// parameters are range-checked later by the mode controller so that a bad
// value only costs that one field.
func (s *Settings) Validate() error {
	if _, err := net.ParseMAC(s.WiFi.StationMAC); err != nil {
		return fmt.Errorf("wifi.mac_st: %w", err)
	}
	if _, err := net.ParseMAC(s.WiFi.AccessPointMAC); err != nil {
		return fmt.Errorf("wifi.mac_ap: %w", err)
	}
	if err := validateLang(s.Web.Lang); err != nil {
		return fmt.Errorf("web.lang: %w", err)
	}
	return nil
}

// validateLang accepts a compiled-in language, or a lowercase code whose
// translation is expected at /lang/<code>.lang in storage.
func validateLang(code string) error {
	if _, ok := content.ParseLanguage(code); ok {
		return nil
	}
	if len(code) < 2 || len(code) > 8 {
		return fmt.Errorf("code %q must be 2-8 letters", code)
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("code %q must be lowercase letters", code)
		}
	}
	return nil
}
