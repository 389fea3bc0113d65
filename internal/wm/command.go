package wm

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Command is one entry in the control-socket vocabulary (§6):
// focus cycling, workspace switching, layout cycling, window close.
// Each Command maps directly to one Monitor or Workspace operation.
type Command interface {
	Apply(d *Dispatcher) error
}

type focusNextCmd struct{ reverse bool }

func (c focusNextCmd) Apply(d *Dispatcher) error {
	return d.Monitor.CurrentWorkspace().FocusNext(d.Conn, c.reverse)
}

type switchWorkspaceCmd struct{ reverse bool }

func (c switchWorkspaceCmd) Apply(d *Dispatcher) error {
	return d.Monitor.NextWorkspace(d.Conn, c.reverse)
}

type switchWorkspaceIndexCmd struct{ index int }

func (c switchWorkspaceIndexCmd) Apply(d *Dispatcher) error {
	if c.index >= len(d.Monitor.Workspaces()) {
		return nil
	}
	return d.Monitor.SetWorkspace(d.Conn, c.index)
}

type closeCurrentCmd struct{}

// Apply sends WM_DELETE_WINDOW unconditionally per §4.1 (the manager
// never force-kills a window), but logs a warning first when the
// client hasn't advertised support for it, since the request is then
// likely to go unanswered.
func (closeCurrentCmd) Apply(d *Dispatcher) error {
	ws := d.Monitor.CurrentWorkspace()
	if c := ws.Current; c != nil && !d.Conn.SupportsDeleteProtocol(c.Window) {
		d.Log.WithFields(logrus.Fields{"window": c.Window}).Warn("closing a window that has not advertised WM_DELETE_WINDOW")
	}
	return ws.DestroyCurrentWindow(d.Conn)
}

type cycleLayoutCmd struct{ reverse bool }

func (c cycleLayoutCmd) Apply(d *Dispatcher) error {
	ws := d.Monitor.CurrentWorkspace()
	layout := ws.NextLayout(c.reverse)
	return d.Monitor.applyArrange(d.Conn, layout)
}

// ParseCommand decodes one wire command per §6's command alphabet.
// Commands are exactly 1-2 bytes; `1`..`5` address workspace indices
// 0..4 directly.
func ParseCommand(raw []byte) (Command, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("wm: empty command")
	}
	switch raw[0] {
	case 'n':
		return focusNextCmd{reverse: false}, nil
	case 'p':
		return focusNextCmd{reverse: true}, nil
	case 'N':
		return switchWorkspaceCmd{reverse: false}, nil
	case 'P':
		return switchWorkspaceCmd{reverse: true}, nil
	case 'q':
		return closeCurrentCmd{}, nil
	case 'l':
		return cycleLayoutCmd{reverse: false}, nil
	case 'L':
		return cycleLayoutCmd{reverse: true}, nil
	case '1', '2', '3', '4', '5':
		return switchWorkspaceIndexCmd{index: int(raw[0] - '1')}, nil
	default:
		return nil, fmt.Errorf("wm: unrecognised command %q", raw[0])
	}
}
