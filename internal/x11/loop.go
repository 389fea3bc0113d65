package x11

import (
	"net"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/sirupsen/logrus"

	"github.com/vaaas/vaswm/internal/wm"
	"github.com/vaaas/vaswm/internal/wmerr"
)

// BurntSushi/xgb does not expose the connection's file descriptor, so
// the two-descriptor wait of spec.md §5 cannot be built on a raw
// poll(2)/select(2) syscall integration. Loop instead takes the other
// option spec.md §9 names explicitly: one goroutine blocks in
// xc.WaitForEvent and forwards to a channel, another blocks in
// listener.Accept and forwards to a channel, and Run selects over
// both. The event feeder drains every event already queued behind the
// one that woke it with xgb's non-blocking PollForEvent before it ever
// touches the channel, so a batch arrives whole - Run never picks a
// socket command ahead of X events that were already available (§5).
// Neither goroutine touches Monitor state; only Run's own goroutine,
// via Dispatcher, does - preserving the no-locking, no-worker-pool
// guarantee of §5.

// commandConn is one accepted control-socket connection awaiting its
// single command (§6).
type commandConn struct {
	conn net.Conn
}

// Loop drains X events and control-socket connections into a
// wm.Dispatcher, one source fully per wake-up (§5).
type Loop struct {
	x          *Conn
	dispatcher *wm.Dispatcher
	listener   net.Listener
	log        *logrus.Logger

	events chan xgbBatch
	conns  chan commandConn
	quit   chan struct{}
}

// xgbBatch carries every event the feeder goroutine drained from a
// single wake-up of the X connection, in order. The channel is never
// raced with a non-blocking receive: by the time a batch is sent, the
// feeder has already pulled everything xgb had buffered, so the select
// loop never services a socket command ahead of X events that were
// already available (§5).
type xgbBatch struct {
	evs []xgbAny
	err error
}

// xgbAny is satisfied by the event interface BurntSushi/xgb returns
// from WaitForEvent; kept as a narrow alias so this file doesn't need
// to import xgb just for the interface{} type.
type xgbAny = interface{}

// NewLoop binds a Loop to an already-connected Conn, a Dispatcher and a
// listening control socket.
func NewLoop(x *Conn, dispatcher *wm.Dispatcher, listener net.Listener, log *logrus.Logger) *Loop {
	return &Loop{
		x:          x,
		dispatcher: dispatcher,
		listener:   listener,
		log:        log,
		events:     make(chan xgbBatch),
		conns:      make(chan commandConn),
		quit:       make(chan struct{}),
	}
}

// Run starts the two feeder goroutines and services the select loop
// until Stop is called or a fatal error occurs. A fatal X error or
// ConnectionLost is returned without being logged here; the caller
// (cmd/vaswmd) logs it and exits non-zero. No stack trace is recorded
// for such a returned error.
func (l *Loop) Run() error {
	go l.feedEvents()
	go l.feedConns()

	for {
		select {
		case <-l.quit:
			return nil
		case b := <-l.events:
			if b.err != nil {
				return &wmerr.ConnectionLost{Err: b.err}
			}
			for _, ev := range b.evs {
				if err := l.handleXEvent(ev); err != nil {
					return err
				}
			}
		case cc := <-l.conns:
			l.handleCommandConn(cc)
		}
	}
}

// Stop ends Run's select loop. The feeder goroutines are left blocked
// in WaitForEvent/Accept; closing the underlying connection/listener
// unblocks them, matching dewm's "defer xc.Close()" shutdown.
func (l *Loop) Stop() { close(l.quit) }

// feedEvents blocks in WaitForEvent for the first event of a wake-up,
// then drains whatever else xgb already had buffered with the
// non-blocking PollForEvent before handing the whole batch to Run over
// the channel. This is the only goroutine that ever reads from l.x, so
// the drain is race-free: nothing can pull an event out from under it
// between the blocking wait and the non-blocking polls that follow.
func (l *Loop) feedEvents() {
	for {
		ev, err := l.x.Raw().WaitForEvent()
		if err != nil {
			l.sendBatch(xgbBatch{err: err})
			return
		}

		batch := []xgbAny{ev}
		for {
			next, perr := l.x.Raw().PollForEvent()
			if perr != nil || next == nil {
				break
			}
			batch = append(batch, next)
		}

		if !l.sendBatch(xgbBatch{evs: batch}) {
			return
		}
	}
}

func (l *Loop) sendBatch(b xgbBatch) bool {
	select {
	case l.events <- b:
		return true
	case <-l.quit:
		return false
	}
}

func (l *Loop) feedConns() {
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			return
		}
		select {
		case l.conns <- commandConn{conn: conn}:
		case <-l.quit:
			conn.Close()
			return
		}
	}
}

func (l *Loop) handleXEvent(ev xgbAny) error {
	switch e := ev.(type) {
	case xproto.EnterNotifyEvent:
		return l.dispatcher.HandleEnterNotify(e.Event)
	case xproto.ConfigureRequestEvent:
		return l.dispatcher.HandleConfigureRequest(wm.ConfigureRequest{
			Window:   e.Window,
			Geometry: wm.Geometry{X: int(e.X), Y: int(e.Y), W: int(e.Width), H: int(e.Height)},
		})
	case xproto.MapRequestEvent:
		return l.dispatcher.HandleMapRequest(e.Window)
	case xproto.UnmapNotifyEvent:
		return l.dispatcher.HandleUnmapNotify(e.Window)
	case xproto.DestroyNotifyEvent:
		return l.dispatcher.HandleUnmapNotify(e.Window)
	default:
		return nil
	}
}

// handleCommandConn reads the single (up to 2-byte) command and closes
// the connection after processing, per §6's wire contract.
func (l *Loop) handleCommandConn(cc commandConn) {
	defer cc.conn.Close()

	buf := make([]byte, 2)
	n, err := cc.conn.Read(buf)
	if err != nil && n == 0 {
		l.log.WithError(&wmerr.Socket{Err: err}).Warn("command socket read failed")
		return
	}

	cmd, err := wm.ParseCommand(buf[:n])
	if err != nil {
		l.log.WithError(&wmerr.Socket{Err: err}).Warn("unrecognised command")
		return
	}
	if err := l.dispatcher.HandleCommand(cmd); err != nil {
		l.log.WithError(err).Error("command handler failed")
	}
}
