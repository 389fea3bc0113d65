package wm

// Workspace is an ordered view over the subset of Monitor.clients
// tagged to it (§3, §4.3). It owns the current-focus pointer and the
// active Layout.
type Workspace struct {
	Tag     string
	Monitor *Monitor
	Layout  *Layout
	Current *Client

	// Clients is the derived ordered view of Monitor.clients filtered
	// to this workspace, in Monitor.clients order (I2). Recomputed by
	// UpdateClients after any mutation of Monitor.clients.
	Clients []*Client
}

// NewWorkspace constructs a workspace bound to mon with the default
// OneColumn layout and no current client, per the fixed-array
// construction in §3.
func NewWorkspace(mon *Monitor, tag string) *Workspace {
	ws := &Workspace{Tag: tag, Monitor: mon}
	ws.Layout = NewLayout(ws, OneColumn)
	return ws
}

// IndexOf returns c's position in ws.Clients, or -1 if absent.
func (ws *Workspace) IndexOf(c *Client) int {
	for i, x := range ws.Clients {
		if x == c {
			return i
		}
	}
	return -1
}

// UpdateClients recomputes Clients as the projection of
// Monitor.clients filtered to this workspace (I2). Must be called
// after any insertion/deletion into Monitor.clients.
func (ws *Workspace) UpdateClients() {
	clients := ws.Clients[:0]
	for _, c := range ws.Monitor.clients {
		if c.Workspace == ws {
			clients = append(clients, c)
		}
	}
	ws.Clients = clients
}

// NextLayout constructs a fresh Layout of the next (or, if reverse,
// previous) type in the cycle and immediately updates its range. The
// caller is responsible for invoking Arrange when required (§4.3).
func (ws *Workspace) NextLayout(reverse bool) *Layout {
	ws.Layout = NewLayout(ws, ws.Layout.Kind.Next(reverse))
	ws.Layout.UpdateRange()
	return ws.Layout
}

// DestroyCurrentWindow invokes Current.Destroy if there is a current
// client; no-op otherwise (§4.3).
func (ws *Workspace) DestroyCurrentWindow(conn Conn) error {
	if ws.Current == nil {
		return nil
	}
	return ws.Current.Destroy(conn)
}

// FocusNext selects the next (or, if reverse, previous) client
// cyclically and focuses it. No-op with fewer than 2 clients (§4.3).
func (ws *Workspace) FocusNext(conn Conn, reverse bool) error {
	n := len(ws.Clients)
	if n < 2 {
		return nil
	}
	i := ws.IndexOf(ws.Current)
	if i < 0 {
		i = 0
	}
	var next int
	if reverse {
		next = (i - 1 + n) % n
	} else {
		next = (i + 1) % n
	}
	return ws.Focus(conn, ws.Clients[next])
}

// Focus implements the focus state machine of §4.5, centralising the
// I3/I5 invariants here rather than on Client, since only Workspace can
// see and update Current and the visible range together.
//
// Cross-workspace focus requests (target.Workspace != this workspace's
// Monitor.current_workspace) still update Current so a later
// SetWorkspace shows the target focused, but defer input focus and
// border colour until that workspace becomes current; the control
// socket's command vocabulary never triggers this case.
func (ws *Workspace) Focus(conn Conn, target *Client) error {
	old := ws.Current
	if old == target {
		return nil
	}
	if old != nil {
		if err := old.DefaultBorder(conn); err != nil {
			return err
		}
		if ws.Current == old {
			ws.Current = nil
		}
	}
	ws.Current = target
	if target == nil {
		return nil
	}

	isCurrentWorkspace := ws.Monitor.CurrentWorkspace() == ws
	if isCurrentWorkspace {
		if err := target.AccentBorder(conn); err != nil {
			return err
		}
		if err := target.SetInputFocus(conn); err != nil {
			return err
		}
	}

	idx := ws.IndexOf(target)
	if idx < ws.Layout.Start || idx >= ws.Layout.End {
		ws.Layout.UpdateRange()
		if isCurrentWorkspace {
			if err := ws.Monitor.applyArrange(conn, ws.Layout); err != nil {
				return err
			}
		}
	}
	return nil
}
