package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/apnode/apnode-go/pkg/attack"
	"github.com/apnode/apnode-go/pkg/captive"
	"github.com/apnode/apnode-go/pkg/cli"
	"github.com/apnode/apnode-go/pkg/config"
	"github.com/apnode/apnode-go/pkg/content"
	"github.com/apnode/apnode-go/pkg/discovery"
	"github.com/apnode/apnode-go/pkg/log"
	"github.com/apnode/apnode-go/pkg/radio"
	"github.com/apnode/apnode-go/pkg/scan"
	"github.com/apnode/apnode-go/pkg/web"
	"github.com/apnode/apnode-go/pkg/wifi"
)

// settingsFile is looked up in storage when -config is not given.
const settingsFile = "/settings.yaml"

// node is the wired set of components.
type node struct {
	logger   *slog.Logger
	settings *config.Settings

	driver  *radio.SimDriver
	dns     *captive.Redirector
	adv     *discovery.MDNSAdvertiser
	ctrl    *wifi.Controller
	web     *web.Server
	interp  *cli.Interpreter
	scanner *scan.Scanner
	attacks *attack.Tracker
}

func newNode(o options, storage afero.Fs, logger *slog.Logger, diag log.Logger) (*node, error) {
	settings, err := loadSettings(o.ConfigFile, storage)
	if err != nil {
		return nil, err
	}

	n := &node{
		logger:   logger,
		settings: settings,
		driver:   radio.NewSimDriver(),
		attacks:  attack.NewTracker(logger.With("component", "attack")),
	}
	lock := radio.NewLock()

	dnsCfg := captive.DefaultConfig()
	dnsCfg.ListenAddr = o.DNSListen
	dnsCfg.Logger = logger.With("component", "captive")
	n.dns = captive.NewRedirector(dnsCfg)

	n.interp = cli.NewInterpreter(cli.Config{
		Output:      logWriter{logger: logger},
		Logger:      logger.With("component", "cli"),
		Diagnostics: diag,
	})

	wifiCfg := wifi.DefaultConfig()
	wifiCfg.Driver = n.driver
	wifiCfg.Radio = lock
	wifiCfg.DNS = n.dns
	wifiCfg.HostName = o.HostName
	wifiCfg.Logger = logger.With("component", "wifi")
	wifiCfg.Diagnostics = diag
	if o.MDNS {
		n.adv = discovery.NewMDNSAdvertiser(discovery.DefaultAdvertiserConfig())
		wifiCfg.Advertiser = n.adv
	}

	// The route table reads the content prefix from the controller, which
	// installs the table; break the cycle with a late-bound installer.
	routes := &lateInstaller{}
	wifiCfg.Routes = routes

	n.ctrl, err = wifi.NewController(wifiCfg)
	if err != nil {
		return nil, err
	}

	catalog := content.DefaultCatalog()
	n.web, err = web.NewServer(web.Config{
		Resolver:    content.NewResolver(storage, n.ctrl.Path),
		Catalog:     catalog,
		UseStorage:  settings.Web.UseStorage,
		Language:    settings.Web.Lang,
		Commands:    n.interp,
		Attack:      n.attacks,
		Logger:      logger.With("component", "web"),
		Diagnostics: diag,
	})
	if err != nil {
		return nil, err
	}
	routes.target = n.web

	n.scanner, err = scan.NewScanner(scan.Config{
		Radio:       lock,
		AccessPoint: n.ctrl,
		Logger:      logger.With("component", "scan"),
		Diagnostics: diag,
	})
	if err != nil {
		return nil, err
	}

	if err := cli.RegisterNodeCommands(n.interp, cli.NodeCommands{
		Node:    n.ctrl,
		Scanner: n.scanner,
		Attacks: n.attacks,
	}); err != nil {
		return nil, err
	}

	n.ctrl.OnModeChange(func(c wifi.ModeChange) {
		logger.Info("[EVENT] mode changed", "from", c.From.String(), "to", c.To.String(), "reason", c.Reason)
	})

	if err := n.ctrl.Initialize(settings); err != nil {
		return nil, fmt.Errorf("initialize radio: %w", err)
	}
	return n, nil
}

// loadSettings reads the settings file from path, or from storage when path
// is empty.
func loadSettings(path string, storage afero.Fs) (*config.Settings, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFs(storage, settingsFile)
}

// run serves HTTP, executes queued commands and ticks the controller until
// ctx is done.
func (n *node) run(ctx context.Context, listen string, tick time.Duration) error {
	srv := &http.Server{
		Addr:              listen,
		Handler:           n.web,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		n.logger.Info("http listening", "addr", listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() { _ = n.interp.Run(ctx) }()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case err := <-errCh:
			runErr = fmt.Errorf("http server: %w", err)
			break loop
		case <-ticker.C:
			n.ctrl.Tick()
		}
	}

	n.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		n.logger.Warn("http shutdown", "error", err)
	}
	n.close()
	return runErr
}

func (n *node) close() {
	if n.adv != nil {
		_ = n.adv.Stop()
	}
	if n.dns.Running() {
		_ = n.dns.Stop()
	}
	n.attacks.Stop()
}

// lateInstaller forwards to a route installer bound after construction.
type lateInstaller struct {
	target wifi.RouteInstaller
}

func (l *lateInstaller) Install() error {
	if l.target == nil {
		return errors.New("apnode: route table not ready")
	}
	return l.target.Install()
}

// logWriter writes interpreter output for queued commands to the log.
type logWriter struct {
	logger *slog.Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	w.logger.Info("command output", "text", string(trimNewline(p)))
	return len(p), nil
}

func trimNewline(p []byte) []byte {
	for len(p) > 0 && (p[len(p)-1] == '\n' || p[len(p)-1] == '\r') {
		p = p[:len(p)-1]
	}
	return p
}
