package wm

// fakeConn is an in-memory Conn double so Layout/Workspace/Monitor
// logic can be exercised without a real X server, in the spirit of
// esimov-caire's table-driven image-operation tests.
type fakeConn struct {
	geometry map[Window]Geometry
	border   map[Window]uint32
	mapped   map[Window]bool
	focused  Window
	deleted  map[Window]bool
	protos   map[Window]bool

	flushes int
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		geometry: make(map[Window]Geometry),
		border:   make(map[Window]uint32),
		mapped:   make(map[Window]bool),
		deleted:  make(map[Window]bool),
		protos:   make(map[Window]bool),
	}
}

func (c *fakeConn) MapWindow(win Window) error {
	c.mapped[win] = true
	return nil
}

func (c *fakeConn) ConfigureGeometry(win Window, g Geometry) error {
	c.geometry[win] = g
	return nil
}

func (c *fakeConn) SetBorderWidth(win Window, pixels uint32) error {
	return nil
}

func (c *fakeConn) SetBorderColour(win Window, pixel uint32) error {
	c.border[win] = pixel
	return nil
}

func (c *fakeConn) SubscribeEnterLeave(win Window) error {
	return nil
}

func (c *fakeConn) SetInputFocus(win Window) error {
	c.focused = win
	return nil
}

func (c *fakeConn) SendDeleteWindow(win Window) error {
	c.deleted[win] = true
	return nil
}

func (c *fakeConn) SupportsDeleteProtocol(win Window) bool {
	return c.protos[win]
}

func (c *fakeConn) GetGeometry(win Window) (Geometry, error) {
	return c.geometry[win], nil
}

func (c *fakeConn) Flush() error {
	c.flushes++
	return nil
}

// addClient registers win as a newly mapped client of ws, the way
// NewClient plus Monitor.AddClient would via a real MapRequest, and
// returns the constructed Client.
func addClient(conn *fakeConn, mon *Monitor, ws *Workspace, win Window) (*Client, error) {
	conn.geometry[win] = Geometry{W: mon.W, H: mon.H}
	c, err := NewClient(conn, win, ws)
	if err != nil {
		return nil, err
	}
	if err := mon.AddClient(conn, c); err != nil {
		return nil, err
	}
	return c, nil
}
