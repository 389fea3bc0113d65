package wm

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vaaas/vaswm/internal/wmerr"
)

// Dispatcher demultiplexes X events and socket commands into Monitor
// mutations (§4.6). It is the only place concurrency is observed: the
// caller (internal/x11's event loop) guarantees these methods are
// never invoked concurrently with one another.
type Dispatcher struct {
	Monitor *Monitor
	Conn    Conn
	Log     *logrus.Logger
}

// NewDispatcher binds a Dispatcher to a Monitor and Conn.
func NewDispatcher(mon *Monitor, conn Conn, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{Monitor: mon, Conn: conn, Log: log}
}

// HandleEnterNotify implements the canonical "sloppy focus" discipline
// of §4.6: on pointer entry to a client that is not the current one,
// keyboard focus and accent border are reasserted on the current
// client rather than moved to the entered window.
func (d *Dispatcher) HandleEnterNotify(win Window) error {
	entered := d.Monitor.FindClient(win)
	if entered == nil {
		return nil
	}
	ws := entered.Workspace
	if ws.Current == nil || ws.Current == entered {
		return d.flush()
	}
	if err := d.guardTransient("enter-notify", ws.Current.AccentBorder(d.Conn)); err != nil {
		return err
	}
	if err := d.guardTransient("enter-notify", ws.Current.SetInputFocus(d.Conn)); err != nil {
		return err
	}
	return d.flush()
}

// ConfigureRequest carries the geometry a client asked for via an X
// ConfigureRequest event.
type ConfigureRequest struct {
	Window   Window
	Geometry Geometry
}

// HandleConfigureRequest implements §4.6: an unmanaged window gets its
// requested geometry granted with the border width forced to the
// configured value, and is subscribed to EnterWindow; a managed window
// has its manager-commanded geometry reasserted instead.
func (d *Dispatcher) HandleConfigureRequest(req ConfigureRequest) error {
	if c := d.Monitor.FindClient(req.Window); c != nil {
		if err := d.guardTransient("configure-request", d.Conn.ConfigureGeometry(req.Window, c.Geometry)); err != nil {
			return err
		}
		return d.flush()
	}

	if err := d.guardTransient("configure-request", d.Conn.ConfigureGeometry(req.Window, req.Geometry)); err != nil {
		return err
	}
	if err := d.guardTransient("configure-request", d.Conn.SetBorderWidth(req.Window, d.Monitor.Config.BorderPixel)); err != nil {
		return err
	}
	if err := d.guardTransient("configure-request", d.Conn.SubscribeEnterLeave(req.Window)); err != nil {
		return err
	}
	return d.flush()
}

// HandleMapRequest implements §4.6: an unmanaged window is constructed
// and added to the Monitor; an already-managed one is simply re-mapped.
func (d *Dispatcher) HandleMapRequest(win Window) error {
	if c := d.Monitor.FindClient(win); c != nil {
		if err := d.guardTransient("map-request", c.Map(d.Conn)); err != nil {
			return err
		}
		return d.flush()
	}

	ws := d.Monitor.CurrentWorkspace()
	c, err := NewClient(d.Conn, win, ws)
	if err != nil {
		if isTransient(err) {
			d.Log.WithFields(logrus.Fields{"window": win}).Warn("dropping transient map-request")
			return d.flush()
		}
		return err
	}
	if err := d.guardTransient("map-request", d.Monitor.AddClient(d.Conn, c)); err != nil {
		return err
	}
	return d.flush()
}

// HandleUnmapNotify implements §4.6 (and the equivalent DestroyNotify
// path): look up by window, and if managed, delete it from the
// Monitor.
func (d *Dispatcher) HandleUnmapNotify(win Window) error {
	c := d.Monitor.FindClient(win)
	if c == nil {
		return nil
	}
	if err := d.guardTransient("unmap-notify", d.Monitor.DeleteClient(d.Conn, c)); err != nil {
		return err
	}
	return d.flush()
}

// HandleCommand dispatches one control-socket command byte to the
// corresponding Monitor/Workspace operation (§6 command alphabet).
func (d *Dispatcher) HandleCommand(cmd Command) error {
	if err := cmd.Apply(d); err != nil {
		return err
	}
	return d.flush()
}

func (d *Dispatcher) flush() error {
	if err := d.Conn.Flush(); err != nil {
		return wmerr.NewProtocol("flush", err)
	}
	return nil
}

// guardTransient recovers TransientWindowError locally, per §7: the
// model is reconciled by the UnmapNotify/DestroyNotify that follows.
// Any other error propagates to the dispatcher's caller, which logs
// and terminates.
func (d *Dispatcher) guardTransient(op string, err error) error {
	if err == nil {
		return nil
	}
	if isTransient(err) {
		d.Log.WithFields(logrus.Fields{"op": op}).Warn(fmt.Sprintf("swallowed transient error: %v", err))
		return nil
	}
	return err
}

func isTransient(err error) bool {
	_, ok := err.(*wmerr.Transient)
	return ok
}
