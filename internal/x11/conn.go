// Package x11 is the real Conn implementation over BurntSushi/xgb: X
// connection bootstrap, every request named in spec.md §6, and the
// two-descriptor event loop of §5. Everything here is a thin
// translation layer; the state-machine logic lives in internal/wm.
package x11

import (
	"errors"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/vaaas/vaswm/internal/wm"
	"github.com/vaaas/vaswm/internal/wmerr"
)

var (
	errNoRoots     = errors.New("x11: setup reported no screen roots")
	errNilGeometry = errors.New("x11: nil geometry reply")
)

// Conn is the real wm.Conn, wrapping one BurntSushi/xgb connection and
// the root window it manages.
type Conn struct {
	xc    *xgb.Conn
	root  xproto.Window
	atoms Atoms
}

var _ wm.Conn = (*Conn)(nil)

// Screen is the root window dimensions and identifier reported at
// bootstrap, handed to wm.NewMonitor.
type Screen struct {
	Root xproto.Window
	W, H int
}

// Connect opens the X connection, takes window-manager ownership of
// the single root (spec.md's one-screen assumption, §1), interns the
// atoms the core needs and returns a ready Conn plus the screen
// geometry.
func Connect() (*Conn, Screen, error) {
	xc, err := xgb.NewConn()
	if err != nil {
		return nil, Screen{}, &wmerr.ConnectionLost{Err: err}
	}

	setup := xproto.Setup(xc)
	if setup == nil || len(setup.Roots) < 1 {
		return nil, Screen{}, wmerr.NewProtocol("setup", errNoRoots)
	}
	root := setup.Roots[0]

	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	if err := xproto.ChangeWindowAttributesChecked(xc, root.Root, xproto.CwEventMask, []uint32{mask}).Check(); err != nil {
		return nil, Screen{}, wmerr.NewProtocol("take-wm-ownership", err)
	}

	atoms, err := InternAtoms(xc)
	if err != nil {
		return nil, Screen{}, err
	}

	conn := &Conn{xc: xc, root: root.Root, atoms: atoms}
	screen := Screen{Root: root.Root, W: int(root.WidthInPixels), H: int(root.HeightInPixels)}
	return conn, screen, nil
}

// Root returns the root window this Conn manages.
func (c *Conn) Root() xproto.Window { return c.root }

// Raw exposes the underlying xgb.Conn for the event loop's
// WaitForEvent and PollForEvent calls, which sit outside the wm.Conn
// surface.
func (c *Conn) Raw() *xgb.Conn { return c.xc }

// Close releases the X connection.
func (c *Conn) Close() { c.xc.Close() }

func (c *Conn) MapWindow(win wm.Window) error {
	if err := xproto.MapWindowChecked(c.xc, win).Check(); err != nil {
		return wmerr.NewTransient("map-window", err)
	}
	return nil
}

func (c *Conn) ConfigureGeometry(win wm.Window, g wm.Geometry) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{
		uint32(int32(g.X)),
		uint32(int32(g.Y)),
		uint32(g.W),
		uint32(g.H),
	}
	if err := xproto.ConfigureWindowChecked(c.xc, win, mask, values).Check(); err != nil {
		return wmerr.NewTransient("configure-geometry", err)
	}
	return nil
}

func (c *Conn) SetBorderWidth(win wm.Window, pixels uint32) error {
	mask := uint16(xproto.ConfigWindowBorderWidth)
	if err := xproto.ConfigureWindowChecked(c.xc, win, mask, []uint32{pixels}).Check(); err != nil {
		return wmerr.NewTransient("set-border-width", err)
	}
	return nil
}

func (c *Conn) SetBorderColour(win wm.Window, pixel uint32) error {
	if err := xproto.ChangeWindowAttributesChecked(c.xc, win, xproto.CwBorderPixel, []uint32{pixel}).Check(); err != nil {
		return wmerr.NewTransient("set-border-colour", err)
	}
	return nil
}

func (c *Conn) SubscribeEnterLeave(win wm.Window) error {
	mask := uint32(xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow)
	if err := xproto.ChangeWindowAttributesChecked(c.xc, win, xproto.CwEventMask, []uint32{mask}).Check(); err != nil {
		return wmerr.NewTransient("subscribe-enter-leave", err)
	}
	return nil
}

func (c *Conn) SetInputFocus(win wm.Window) error {
	if err := xproto.SetInputFocusChecked(c.xc, xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime).Check(); err != nil {
		return wmerr.NewTransient("set-input-focus", err)
	}
	return nil
}

func (c *Conn) SendDeleteWindow(win wm.Window) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   c.atoms.WMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atoms.WMDeleteWindow),
			uint32(xproto.TimeCurrentTime),
			0, 0, 0,
		}),
	}
	if err := xproto.SendEventChecked(c.xc, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check(); err != nil {
		return wmerr.NewTransient("send-delete-window", err)
	}
	return nil
}

// SupportsDeleteProtocol scans win's WM_PROTOCOLS property for the
// WM_DELETE_WINDOW atom, the way driusan/dewm's HandleKeyPressEvent and
// EnterNotify handling do: a raw byte scan over 4-byte atom values,
// rather than a higher-level ICCCM helper.
func (c *Conn) SupportsDeleteProtocol(win wm.Window) bool {
	prop, err := xproto.GetProperty(c.xc, false, win, c.atoms.WMProtocols, xproto.GetPropertyTypeAny, 0, 64).Reply()
	if err != nil || prop == nil {
		return false
	}
	for v := prop.Value; len(v) >= 4; v = v[4:] {
		atom := xproto.Atom(uint32(v[0]) | uint32(v[1])<<8 | uint32(v[2])<<16 | uint32(v[3])<<24)
		if atom == c.atoms.WMDeleteWindow {
			return true
		}
	}
	return false
}

func (c *Conn) GetGeometry(win wm.Window) (wm.Geometry, error) {
	reply, err := xproto.GetGeometry(c.xc, xproto.Drawable(win)).Reply()
	if err != nil {
		return wm.Geometry{}, wmerr.NewTransient("get-geometry", err)
	}
	if reply == nil {
		return wm.Geometry{}, wmerr.NewTransient("get-geometry", errNilGeometry)
	}
	return wm.Geometry{X: int(reply.X), Y: int(reply.Y), W: int(reply.Width), H: int(reply.Height)}, nil
}

// Flush performs the round-trip request xgb.Conn.Sync() issues, the
// commit point at the end of every handler (§5).
func (c *Conn) Flush() error {
	c.xc.Sync()
	return nil
}
