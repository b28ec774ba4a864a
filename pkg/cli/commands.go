package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/apnode/apnode-go/pkg/attack"
	"github.com/apnode/apnode-go/pkg/wifi"
)

// Node is the mode controller as seen by the commands.
type Node interface {
	Start(ctx context.Context, settings wifi.AccessPointSettings) error
	Stop() error
	Resume() error
	Settings() wifi.AccessPointSettings
	StatusLine() string
}

// Scanner runs radio scans.
type Scanner interface {
	Scan(ctx context.Context, d time.Duration) error
}

// Attacks records the enabled attack modes.
type Attacks interface {
	Start(modes ...attack.Mode)
	Stop()
}

// NodeCommands are the dependencies of the node command set. Scanner and
// Attacks may be nil; their commands are then not registered.
type NodeCommands struct {
	Node    Node
	Scanner Scanner
	Attacks Attacks
}

// RegisterNodeCommands registers status, startap, stopap, resumeap and,
// when available, scan, attack and stop.
func RegisterNodeCommands(i *Interpreter, deps NodeCommands) error {
	cmds := []Command{
		{
			Name:    "status",
			Usage:   "status",
			Summary: "print access point settings and mode",
			Run: func(_ context.Context, _ []string, out io.Writer) error {
				fmt.Fprintln(out, deps.Node.StatusLine())
				return nil
			},
		},
		{
			Name:    "startap",
			Usage:   "startap [-p <path>] [-s <ssid>] [-pswd <pass>] [-ch <n>] [-h] [-cp]",
			Summary: "start the access point",
			Run: func(ctx context.Context, args []string, out io.Writer) error {
				settings, err := parseStartAP(args, deps.Node.Settings(), out)
				if err != nil {
					return err
				}
				if err := deps.Node.Start(ctx, settings); err != nil {
					return err
				}
				fmt.Fprintln(out, deps.Node.StatusLine())
				return nil
			},
		},
		{
			Name:    "stopap",
			Usage:   "stopap",
			Summary: "stop the access point",
			Run: func(_ context.Context, _ []string, _ io.Writer) error {
				return deps.Node.Stop()
			},
		},
		{
			Name:    "resumeap",
			Usage:   "resumeap",
			Summary: "resume the access point with the current settings",
			Run: func(_ context.Context, _ []string, _ io.Writer) error {
				return deps.Node.Resume()
			},
		},
	}

	if deps.Scanner != nil {
		cmds = append(cmds, Command{
			Name:    "scan",
			Usage:   "scan [-t <seconds>]",
			Summary: "scan with the radio, pausing the access point",
			Run: func(ctx context.Context, args []string, out io.Writer) error {
				fs := newFlagSet("scan", out)
				secs := fs.Int("t", 0, "scan time in seconds")
				if err := parseFlags(fs, args); err != nil {
					return err
				}
				if *secs < 0 {
					return fmt.Errorf("%w: scan time must not be negative", ErrUsage)
				}
				return deps.Scanner.Scan(ctx, time.Duration(*secs)*time.Second)
			},
		})
	}

	if deps.Attacks != nil {
		cmds = append(cmds,
			Command{
				Name:    "attack",
				Usage:   "attack [-b] [-d] [-p]",
				Summary: "enable beacon, deauth or probe mode",
				Run: func(_ context.Context, args []string, out io.Writer) error {
					fs := newFlagSet("attack", out)
					beacon := fs.Bool("b", false, "beacon")
					deauth := fs.Bool("d", false, "deauth")
					probe := fs.Bool("p", false, "probe")
					if err := parseFlags(fs, args); err != nil {
						return err
					}
					var modes []attack.Mode
					if *beacon {
						modes = append(modes, attack.ModeBeacon)
					}
					if *deauth {
						modes = append(modes, attack.ModeDeauth)
					}
					if *probe {
						modes = append(modes, attack.ModeProbe)
					}
					if len(modes) == 0 {
						return fmt.Errorf("%w: attack needs at least one of -b, -d, -p", ErrUsage)
					}
					deps.Attacks.Start(modes...)
					return nil
				},
			},
			Command{
				Name:    "stop",
				Usage:   "stop",
				Summary: "stop all attack modes",
				Run: func(_ context.Context, _ []string, _ io.Writer) error {
					deps.Attacks.Stop()
					return nil
				},
			},
		)
	}

	var errs []error
	for _, c := range cmds {
		errs = append(errs, i.Register(c))
	}
	return errors.Join(errs...)
}

// parseStartAP overlays the startap flags on the current settings.
func parseStartAP(args []string, current wifi.AccessPointSettings, out io.Writer) (wifi.AccessPointSettings, error) {
	s := current
	fs := newFlagSet("startap", out)
	fs.StringVar(&s.Path, "p", s.Path, "content path")
	fs.StringVar(&s.SSID, "s", s.SSID, "network name")
	fs.StringVar(&s.Passphrase, "pswd", s.Passphrase, "WPA2 passphrase")
	fs.IntVar(&s.Channel, "ch", s.Channel, "channel")
	fs.BoolVar(&s.Hidden, "h", s.Hidden, "hide the network name")
	fs.BoolVar(&s.CaptivePortal, "cp", s.CaptivePortal, "captive portal")
	if err := parseFlags(fs, args); err != nil {
		return current, err
	}
	return s, nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return nil
}
