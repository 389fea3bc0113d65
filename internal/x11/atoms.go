package x11

import (
	"errors"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/vaaas/vaswm/internal/wmerr"
)

// Atoms interns the two atoms the core specification names: WM_PROTOCOLS
// and WM_DELETE_WINDOW (§3, §6). Anything beyond those is out of scope
// per spec.md's ICCCM/EWMH non-goal.
type Atoms struct {
	WMProtocols    xproto.Atom
	WMDeleteWindow xproto.Atom
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, wmerr.NewProtocol("intern-atom:"+name, err)
	}
	if reply == nil {
		return 0, wmerr.NewProtocol("intern-atom:"+name, errors.New("nil reply"))
	}
	return reply.Atom, nil
}

// InternAtoms interns WM_PROTOCOLS and WM_DELETE_WINDOW. A failure here
// is a ProtocolError: the policy is log and exit (§7), since a WM that
// can't resolve these atoms can't implement cooperative close at all.
func InternAtoms(conn *xgb.Conn) (Atoms, error) {
	protocols, err := internAtom(conn, "WM_PROTOCOLS")
	if err != nil {
		return Atoms{}, err
	}
	deleteWindow, err := internAtom(conn, "WM_DELETE_WINDOW")
	if err != nil {
		return Atoms{}, err
	}
	return Atoms{WMProtocols: protocols, WMDeleteWindow: deleteWindow}, nil
}
