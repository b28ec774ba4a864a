package cli

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/apnode/apnode-go/pkg/attack"
	"github.com/apnode/apnode-go/pkg/cli/mocks"
	"github.com/apnode/apnode-go/pkg/wifi"
)

type nodeFixture struct {
	interp  *Interpreter
	node    *mocks.MockNode
	scanner *mocks.MockScanner
	attacks *attack.Tracker
}

func newNodeFixture(t *testing.T) *nodeFixture {
	t.Helper()
	f := &nodeFixture{
		interp:  NewInterpreter(Config{}),
		node:    mocks.NewMockNode(t),
		scanner: mocks.NewMockScanner(t),
		attacks: attack.NewTracker(nil),
	}
	require.NoError(t, RegisterNodeCommands(f.interp, NodeCommands{
		Node:    f.node,
		Scanner: f.scanner,
		Attacks: f.attacks,
	}))
	return f
}

func (f *nodeFixture) run(line string) (string, error) {
	var out bytes.Buffer
	err := f.interp.ExecSync(context.Background(), line, "console", &out)
	return out.String(), err
}

func TestStatusCommand(t *testing.T) {
	f := newNodeFixture(t)
	f.node.EXPECT().StatusLine().Return("[WiFi] Mode: 'AP'").Once()

	out, err := f.run("status")
	require.NoError(t, err)
	assert.Equal(t, "[WiFi] Mode: 'AP'\n", out)
}

func TestStartAPOverlaysFlags(t *testing.T) {
	f := newNodeFixture(t)
	f.node.EXPECT().Settings().Return(wifi.DefaultAccessPointSettings()).Once()
	f.node.EXPECT().Start(mock.Anything, wifi.AccessPointSettings{
		Path:          "/site",
		SSID:          "my lab",
		Passphrase:    "deauther",
		Channel:       6,
		Hidden:        true,
		CaptivePortal: false,
	}).Return(nil).Once()
	f.node.EXPECT().StatusLine().Return("ok").Once()

	_, err := f.run(`startap -p /site -s "my lab" -ch 6 -h -cp=false`)
	require.NoError(t, err)
}

func TestStartAPPassesInvalidValuesThrough(t *testing.T) {
	// The controller validates; the command only parses.
	f := newNodeFixture(t)
	f.node.EXPECT().Settings().Return(wifi.DefaultAccessPointSettings()).Once()
	f.node.EXPECT().Start(mock.Anything, mock.MatchedBy(func(s wifi.AccessPointSettings) bool {
		return s.Channel == 20
	})).Return(nil).Once()
	f.node.EXPECT().StatusLine().Return("ok").Once()

	_, err := f.run("startap -ch 20")
	require.NoError(t, err)
}

func TestStartAPBadFlag(t *testing.T) {
	f := newNodeFixture(t)
	f.node.EXPECT().Settings().Return(wifi.DefaultAccessPointSettings()).Once()

	_, err := f.run("startap -ch six")
	assert.ErrorIs(t, err, ErrUsage)

	f.node.EXPECT().Settings().Return(wifi.DefaultAccessPointSettings()).Once()
	_, err = f.run("startap extra")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestStopAndResumeCommands(t *testing.T) {
	f := newNodeFixture(t)
	f.node.EXPECT().Stop().Return(nil).Once()
	f.node.EXPECT().Resume().Return(wifi.ErrRadioBusy).Once()

	_, err := f.run("stopap")
	require.NoError(t, err)

	_, err = f.run("resumeap")
	assert.ErrorIs(t, err, wifi.ErrRadioBusy)
}

func TestScanCommand(t *testing.T) {
	f := newNodeFixture(t)
	f.scanner.EXPECT().Scan(mock.Anything, 5*time.Second).Return(nil).Once()
	f.scanner.EXPECT().Scan(mock.Anything, time.Duration(0)).Return(nil).Once()

	_, err := f.run("scan -t 5")
	require.NoError(t, err)
	_, err = f.run("scan")
	require.NoError(t, err)

	_, err = f.run("scan -t -1")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestAttackCommands(t *testing.T) {
	f := newNodeFixture(t)

	_, err := f.run("attack -d -p")
	require.NoError(t, err)
	s := f.attacks.Status()
	assert.True(t, s.Running)
	assert.False(t, s.Beacon)
	assert.True(t, s.Deauth)
	assert.True(t, s.Probe)

	_, err = f.run("stop")
	require.NoError(t, err)
	assert.False(t, f.attacks.Status().Running)

	_, err = f.run("attack")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestOptionalCommandsNotRegistered(t *testing.T) {
	i := NewInterpreter(Config{})
	require.NoError(t, RegisterNodeCommands(i, NodeCommands{Node: mocks.NewMockNode(t)}))

	err := i.ExecSync(context.Background(), "scan", "console", io.Discard)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	err = i.ExecSync(context.Background(), "attack -b", "console", io.Discard)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
