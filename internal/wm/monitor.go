package wm

import (
	"github.com/vaaas/vaswm/internal/config"
)

// Monitor is the root aggregate: the X connection, screen dimensions,
// the global client list and the workspace array (§3, §4.4). Monitor
// exclusively owns every Client and Workspace for its lifetime;
// Workspace->Monitor, Client->Workspace and Layout->Workspace are weak
// back-references, navigation only.
type Monitor struct {
	Config config.Config
	W, H   int

	clients    []*Client
	workspaces []*Workspace
	current    int
}

// NewMonitor constructs a Monitor with one Workspace per configured
// tag (§3: "constructed at startup in a fixed array sized to the
// configured tag list; never destroyed").
func NewMonitor(cfg config.Config, w, h int) *Monitor {
	mon := &Monitor{Config: cfg, W: w, H: h}
	mon.workspaces = make([]*Workspace, len(cfg.Tags))
	for i, tag := range cfg.Tags {
		mon.workspaces[i] = NewWorkspace(mon, tag)
	}
	return mon
}

// Workspaces returns the fixed workspace array.
func (mon *Monitor) Workspaces() []*Workspace { return mon.workspaces }

// Clients returns the ordered sequence of all managed clients.
// Insertion order encodes layout order, not stacking z-order.
func (mon *Monitor) Clients() []*Client { return mon.clients }

// CurrentWorkspace returns the workspace whose clients are currently
// on-screen.
func (mon *Monitor) CurrentWorkspace() *Workspace { return mon.workspaces[mon.current] }

// FindClient returns the managed Client for win, or nil if unmanaged.
func (mon *Monitor) FindClient(win Window) *Client {
	for _, c := range mon.clients {
		if c.Window == win {
			return c
		}
	}
	return nil
}

// AddClient inserts c into Monitor.clients immediately after the
// position of c.Workspace.Current; if there is no current client or it
// isn't found, c is appended at the tail. The target workspace's view
// and layout range are recomputed, and if that workspace had no focus,
// c is focused (§4.4).
func (mon *Monitor) AddClient(conn Conn, c *Client) error {
	ws := c.Workspace
	insertAt := len(mon.clients)
	if ws.Current != nil {
		if i := indexInSlice(mon.clients, ws.Current); i >= 0 {
			insertAt = i + 1
		}
	}
	mon.clients = append(mon.clients, nil)
	copy(mon.clients[insertAt+1:], mon.clients[insertAt:])
	mon.clients[insertAt] = c

	ws.UpdateClients()
	ws.Layout.UpdateRange()

	if ws.Current == nil {
		return ws.Focus(conn, c)
	}
	if ws == mon.CurrentWorkspace() {
		return mon.applyArrange(conn, ws.Layout)
	}
	return nil
}

// DeleteClient removes c from Monitor.clients. If it was its
// workspace's current client, current is cleared. The workspace view
// and range are recomputed; if the workspace is now empty this is a
// no-op beyond that, otherwise focus is biased to the neighbour of the
// removed client: the new index 0 if c had been at index 0, else the
// new tail (§4.4).
func (mon *Monitor) DeleteClient(conn Conn, c *Client) error {
	ws := c.Workspace
	wasFirst := ws.IndexOf(c) == 0

	if i := indexInSlice(mon.clients, c); i >= 0 {
		mon.clients = append(mon.clients[:i], mon.clients[i+1:]...)
	}
	if ws.Current == c {
		ws.Current = nil
	}
	ws.UpdateClients()
	ws.Layout.UpdateRange()

	if len(ws.Clients) == 0 {
		return nil
	}
	if wasFirst {
		return ws.Focus(conn, ws.Clients[0])
	}
	return ws.Focus(conn, ws.Clients[len(ws.Clients)-1])
}

// NextWorkspace switches to the adjacent workspace, modulo the
// workspace count, in the given direction (§4.4).
func (mon *Monitor) NextWorkspace(conn Conn, reverse bool) error {
	n := len(mon.workspaces)
	var next int
	if reverse {
		next = (mon.current - 1 + n) % n
	} else {
		next = (mon.current + 1) % n
	}
	return mon.SetWorkspace(conn, next)
}

// SetWorkspace switches the current workspace to index w. No-op if w
// is already current. Every client of the outgoing workspace is
// hidden; the incoming workspace's layout is arranged, and its current
// client (if any) receives the accent border and input focus deferred
// by Focus while the workspace was hidden (§4.4, §4.5).
func (mon *Monitor) SetWorkspace(conn Conn, w int) error {
	if w == mon.current {
		return nil
	}
	outgoing := mon.workspaces[mon.current]
	for _, c := range outgoing.Clients {
		if err := c.Hide(conn); err != nil {
			return err
		}
	}

	mon.current = w
	incoming := mon.workspaces[w]

	if err := mon.applyArrange(conn, incoming.Layout); err != nil {
		return err
	}
	if incoming.Current != nil {
		if err := incoming.Current.AccentBorder(conn); err != nil {
			return err
		}
		if err := incoming.Current.SetInputFocus(conn); err != nil {
			return err
		}
	}
	return nil
}

// applyArrange runs layout.Arrange() and applies the resulting visible
// placements and hidden clients through conn. This is the single point
// where a Layout's pure geometry decision is turned into X requests.
func (mon *Monitor) applyArrange(conn Conn, layout *Layout) error {
	visible, hidden := layout.Arrange()
	ws := layout.Workspace
	for _, r := range visible {
		if err := ws.Clients[r.Index].Resize(conn, r.Geometry); err != nil {
			return err
		}
	}
	for _, idx := range hidden {
		if err := ws.Clients[idx].Hide(conn); err != nil {
			return err
		}
	}
	return nil
}

func indexInSlice(clients []*Client, c *Client) int {
	for i, x := range clients {
		if x == c {
			return i
		}
	}
	return -1
}
