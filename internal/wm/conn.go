// Package wm is the core state engine: Client, Layout, Workspace and
// Monitor, plus the EventDispatcher that serialises X events and
// socket commands into mutations of that state. Nothing in this
// package blocks on the X server directly; all protocol I/O is issued
// through the Conn interface, so the engine can be driven by a fake in
// tests the way a teacher repo keeps protocol code at the edges and
// pure state-machine logic in the middle.
package wm

import "github.com/BurntSushi/xgb/xproto"

// Window is the opaque X window identifier used as Client's unique key.
type Window = xproto.Window

// Geometry is the last commanded (or queried) position and size of a
// window, in root-relative pixel coordinates.
type Geometry struct {
	X, Y int
	W, H int
}

// Conn is everything Client, Layout and Monitor need from the X
// server. internal/x11 provides the real implementation over
// BurntSushi/xgb; tests provide a fake.
type Conn interface {
	// MapWindow issues a MapWindow request for win.
	MapWindow(win Window) error

	// ConfigureGeometry issues a ConfigureWindow request setting X, Y,
	// Width and Height for win.
	ConfigureGeometry(win Window, g Geometry) error

	// SetBorderWidth forces win's border width via ConfigureWindow,
	// e.g. on ConfigureRequest for a not-yet-managed window (§4.6).
	SetBorderWidth(win Window, pixels uint32) error

	// SetBorderColour issues ChangeWindowAttributes with BorderPixel.
	SetBorderColour(win Window, pixel uint32) error

	// SubscribeEnterLeave installs the EnterWindow (and optionally
	// LeaveWindow) event mask on win, per ConfigureRequest handling.
	SubscribeEnterLeave(win Window) error

	// SetInputFocus issues SetInputFocus with PointerRoot revert-to and
	// CurrentTime.
	SetInputFocus(win Window) error

	// SendDeleteWindow sends the synthetic WM_DELETE_WINDOW
	// ClientMessage used by Client.Destroy.
	SendDeleteWindow(win Window) error

	// SupportsDeleteProtocol reports whether win has advertised
	// WM_DELETE_WINDOW in its WM_PROTOCOLS property.
	SupportsDeleteProtocol(win Window) bool

	// GetGeometry queries win's current geometry from the server, used
	// at Client construction time.
	GetGeometry(win Window) (Geometry, error)

	// Flush pushes any buffered requests to the server; the commit
	// point at the end of every handler (§5).
	Flush() error
}
