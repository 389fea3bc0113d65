package wm

import "github.com/vaaas/vaswm/internal/wmerr"

// Client is one managed top-level window (§4.1). Workspace is assigned
// at construction and never changes afterwards; Window is its stable
// identity key within Monitor.clients.
type Client struct {
	Window    Window
	Workspace *Workspace
	Geometry  Geometry
}

// NewClient constructs a Client from a MapRequest: it queries current
// geometry from the server, maps the window and applies the default
// border colour. Border width is already applied during
// ConfigureRequest handling, so construct doesn't set it again.
func NewClient(conn Conn, win Window, ws *Workspace) (*Client, error) {
	geom, err := conn.GetGeometry(win)
	if err != nil {
		return nil, wmerr.NewTransient("get-geometry", err)
	}
	c := &Client{Window: win, Workspace: ws, Geometry: geom}
	if err := conn.MapWindow(win); err != nil {
		return nil, wmerr.NewTransient("map-window", err)
	}
	if err := c.DefaultBorder(conn); err != nil {
		return nil, err
	}
	return c, nil
}

// Destroy requests cooperative close via a synthetic WM_DELETE_WINDOW
// ClientMessage. It never unmaps or kills the window itself; the
// dispatcher awaits the resulting UnmapNotify/DestroyNotify.
func (c *Client) Destroy(conn Conn) error {
	if err := conn.SendDeleteWindow(c.Window); err != nil {
		return wmerr.NewTransient("send-delete-window", err)
	}
	return nil
}

// Map issues a bare MapWindow request.
func (c *Client) Map(conn Conn) error {
	if err := conn.MapWindow(c.Window); err != nil {
		return wmerr.NewTransient("map-window", err)
	}
	return nil
}

// Hide parks the client off-screen to the left rather than unmapping
// it, so the dispatcher never sees a synthetic UnmapNotify for a
// client that is merely out of the visible range (§4.1, §9).
func (c *Client) Hide(conn Conn) error {
	return c.Resize(conn, Geometry{X: -2 * c.Geometry.W, Y: c.Geometry.Y, W: c.Geometry.W, H: c.Geometry.H})
}

// Resize records the new geometry and issues ConfigureWindow for
// X, Y, W, H.
func (c *Client) Resize(conn Conn, g Geometry) error {
	c.Geometry = g
	if err := conn.ConfigureGeometry(c.Window, g); err != nil {
		return wmerr.NewTransient("configure-geometry", err)
	}
	return nil
}

// SetBorderColour issues ChangeWindowAttributes with BorderPixel.
func (c *Client) SetBorderColour(conn Conn, pixel uint32) error {
	if err := conn.SetBorderColour(c.Window, pixel); err != nil {
		return wmerr.NewTransient("set-border-colour", err)
	}
	return nil
}

// AccentBorder applies the workspace's monitor's accent colour (I5).
func (c *Client) AccentBorder(conn Conn) error {
	return c.SetBorderColour(conn, c.Workspace.Monitor.Config.AccentColour)
}

// DefaultBorder applies the workspace's monitor's default colour (I5).
func (c *Client) DefaultBorder(conn Conn) error {
	return c.SetBorderColour(conn, c.Workspace.Monitor.Config.DefaultColour)
}

// SetInputFocus issues SetInputFocus with PointerRoot revert-to and
// CurrentTime.
func (c *Client) SetInputFocus(conn Conn) error {
	if err := conn.SetInputFocus(c.Window); err != nil {
		return wmerr.NewTransient("set-input-focus", err)
	}
	return nil
}
