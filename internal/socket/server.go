// Package socket owns the control-socket listener named in spec.md §6:
// a Unix domain socket at a configurable path, accepting one short
// connection per command, with no authentication beyond filesystem
// permissions (the same trust model dewm's own control mechanisms
// assume for a single-user desktop).
package socket

import (
	"fmt"
	"net"
	"os"
)

// Listen removes any stale socket file left behind by an unclean
// shutdown and binds a fresh listener at path, the standard
// "remove before bind" idiom for a long-lived Unix socket server seen
// in the pack's other daemon-shaped files.
func Listen(path string) (net.Listener, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("socket: removing stale socket %s: %w", path, err)
	}
	l, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("socket: listening on %s: %w", path, err)
	}
	return l, nil
}
