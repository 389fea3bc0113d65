// Package wmerr implements the error taxonomy of the core specification:
// which failures are swallowed, which are logged and fatal, and which
// indicate a bug in the invariants rather than an environment problem.
package wmerr

import "fmt"

// Transient wraps an X request that referenced a window the server has
// already destroyed. Policy: swallow it within the handler that hit it;
// the UnmapNotify/DestroyNotify that follows will reconcile the model.
type Transient struct {
	Op  string
	Err error
}

func (e *Transient) Error() string {
	return fmt.Sprintf("transient window error during %s: %v", e.Op, e.Err)
}

func (e *Transient) Unwrap() error { return e.Err }

// NewTransient wraps err as a Transient window error for operation op.
func NewTransient(op string, err error) *Transient {
	return &Transient{Op: op, Err: err}
}

// Protocol signals a malformed or unexpected X response, e.g. a failed
// InternAtom. Policy: log and exit.
type Protocol struct {
	Op  string
	Err error
}

func (e *Protocol) Error() string {
	return fmt.Sprintf("X protocol error during %s: %v", e.Op, e.Err)
}

func (e *Protocol) Unwrap() error { return e.Err }

// NewProtocol wraps err as a Protocol error for operation op.
func NewProtocol(op string, err error) *Protocol {
	return &Protocol{Op: op, Err: err}
}

// ConnectionLost signals the X connection has closed. Policy: log to
// stderr and exit non-zero.
type ConnectionLost struct {
	Err error
}

func (e *ConnectionLost) Error() string {
	return fmt.Sprintf("X connection lost: %v", e.Err)
}

func (e *ConnectionLost) Unwrap() error { return e.Err }

// Socket signals a failure on the command socket. Policy: close the
// connection, keep running.
type Socket struct {
	Err error
}

func (e *Socket) Error() string {
	return fmt.Sprintf("command socket error: %v", e.Err)
}

func (e *Socket) Unwrap() error { return e.Err }

// InvariantViolation is raised via panic, never returned, when one of
// the data-model invariants (I1-I6 in the core specification) is
// observed false. There is no recovery path for this: it indicates a
// bug, not an environment condition.
type InvariantViolation struct {
	Invariant string
	Detail    string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant %s violated: %s", e.Invariant, e.Detail)
}

// Raise panics with an InvariantViolation. Callers that discover I1-I6
// broken call this instead of returning an error, per the §7 policy
// that invariant breaks are bugs, not recoverable conditions.
func Raise(invariant, detail string) {
	panic(&InvariantViolation{Invariant: invariant, Detail: detail})
}
