// Command apnode runs the access point node.
//
// The node boots with its radio off, loads the settings file from storage,
// brings the soft access point up and serves the configuration interface.
// With the captive portal enabled every DNS query on the access point is
// answered with the node's own address.
//
// Usage:
//
//	apnode [flags]
//
// Flags:
//
//	-config string      Settings file (default: settings.yaml in storage)
//	-storage string     Storage directory served by the resolver (default "./storage")
//	-listen string      HTTP listen address (default ":80")
//	-dns-listen string  Captive portal DNS listen address (default ":53")
//	-tick duration      Main loop interval (default 10ms)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-log-format string  Log format: text, json (default "text")
//	-diag-log string    File path for diagnostic event logging (CBOR format)
//	-diag-log-max int   Rotate the diagnostic log past this many bytes, 0 disables (default 262144)
//	-hostname string    Published discovery name (default "apnode")
//	-mdns               Publish the discovery name (default true)
//	-interactive        Run the interactive console
//	-start              Start the access point at boot (default true)
//
// Examples:
//
//	# Serve ./storage on unprivileged ports with a console
//	apnode -listen :8080 -dns-listen :5353 -interactive
//
//	# Record diagnostics for apnode-log
//	apnode -diag-log /var/log/apnode/node.alog -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/apnode/apnode-go/pkg/log"
)

// options holds the command line configuration.
type options struct {
	ConfigFile  string
	Storage     string
	Listen      string
	DNSListen   string
	Tick        time.Duration
	LogLevel    string
	LogFormat   string
	DiagLog     string
	DiagLogMax  int64
	HostName    string
	MDNS        bool
	Interactive bool
	Start       bool
}

var opts options

func init() {
	flag.StringVar(&opts.ConfigFile, "config", "", "Settings file (default: settings.yaml in storage)")
	flag.StringVar(&opts.Storage, "storage", "./storage", "Storage directory served by the resolver")
	flag.StringVar(&opts.Listen, "listen", ":80", "HTTP listen address")
	flag.StringVar(&opts.DNSListen, "dns-listen", ":53", "Captive portal DNS listen address")
	flag.DurationVar(&opts.Tick, "tick", 10*time.Millisecond, "Main loop interval")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.LogFormat, "log-format", "text", "Log format: text, json")
	flag.StringVar(&opts.DiagLog, "diag-log", "", "File path for diagnostic event logging (CBOR format)")
	flag.Int64Var(&opts.DiagLogMax, "diag-log-max", 256<<10, "Rotate the diagnostic log past this many bytes, 0 disables")
	flag.StringVar(&opts.HostName, "hostname", "apnode", "Published discovery name")
	flag.BoolVar(&opts.MDNS, "mdns", true, "Publish the discovery name")
	flag.BoolVar(&opts.Interactive, "interactive", false, "Run the interactive console")
	flag.BoolVar(&opts.Start, "start", true, "Start the access point at boot")
}

func main() {
	flag.Parse()

	logger, err := newLogger(os.Stderr, opts.LogLevel, opts.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cancel, logger); err != nil {
		logger.Error("apnode failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger) error {
	if err := os.MkdirAll(opts.Storage, 0o755); err != nil {
		return fmt.Errorf("create storage: %w", err)
	}
	storage := afero.NewBasePathFs(afero.NewOsFs(), opts.Storage)

	var console *Console
	if opts.Interactive {
		c, err := NewConsole()
		if err != nil {
			return err
		}
		console = c
		// Route log output through readline so it does not break the prompt.
		logger, _ = newLogger(console.Stdout(), opts.LogLevel, opts.LogFormat)
	}

	sessionID := uuid.NewString()
	var diagSinks []log.Logger
	diagSinks = append(diagSinks, log.NewSlogAdapter(logger))
	if opts.DiagLog != "" {
		fl, err := log.OpenFileLogger(afero.NewOsFs(), opts.DiagLog, opts.DiagLogMax)
		if err != nil {
			return fmt.Errorf("open diagnostic log: %w", err)
		}
		defer fl.Close()
		diagSinks = append(diagSinks, fl)
		logger.Info("diagnostic logging enabled", "path", opts.DiagLog)
	}
	diag := log.NewSessionLogger(sessionID, log.NewMultiLogger(diagSinks...))

	n, err := newNode(opts, storage, logger, diag)
	if err != nil {
		return err
	}
	logger.Info("apnode booted",
		"session", sessionID,
		"storage", opts.Storage,
		"mode", n.ctrl.Mode().String(),
	)

	if opts.Start {
		if err := n.ctrl.Start(ctx, n.settings.AccessPointSettings()); err != nil {
			logger.Warn("access point not started", "error", err)
		}
	}

	if console != nil {
		go console.Run(ctx, cancel, n.interp)
	}

	return n.run(ctx, opts.Listen, opts.Tick)
}

// newLogger builds the operational logger.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	hopts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
