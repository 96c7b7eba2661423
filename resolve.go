package pollset

import (
	"fmt"
	"net"
	"syscall"
)

type (
	// QueueSocket is implemented by message-queue socket wrappers that
	// expose their underlying native socket handle. A zero return reports
	// that the wrapper no longer has an underlying socket, i.e. it has been
	// closed.
	//
	// Waiting on native socket handles is transport-specific, see
	// WithWaiter.
	QueueSocket interface {
		RawHandle() uintptr
	}

	// StreamWrapper is implemented by layered stream connections that expose
	// the connection they wrap, e.g. [crypto/tls.Conn]. The file descriptor
	// to wait on is resolved from the wrapped connection, which must
	// implement [Descriptor] or [syscall.Conn].
	StreamWrapper interface {
		NetConn() net.Conn
	}

	// Descriptor is implemented by values that directly expose an OS file
	// descriptor, e.g. [os.File]. Values implementing [syscall.Conn], e.g.
	// [net.TCPConn], are also accepted, wherever a Descriptor is probed for.
	Descriptor interface {
		Fd() uintptr
	}

	// ClosedChecker is an optional capability, used to detect endpoints
	// closed out-of-band. It is probed on handles resolved via [Descriptor]
	// or [syscall.Conn], and on the inner connections of [StreamWrapper]
	// handles.
	ClosedChecker interface {
		Closed() bool
	}
)

// pollableKind tags how a handle was resolved.
type pollableKind uint8

const (
	pollableQueueSocket pollableKind = iota + 1
	pollableWrapped
	pollableRaw
)

func (x pollableKind) String() string {
	switch x {
	case pollableQueueSocket:
		return `queue_socket`
	case pollableWrapped:
		return `wrapped_descriptor`
	case pollableRaw:
		return `raw_descriptor`
	default:
		return `unresolved`
	}
}

// pollable is the resolved native representation of a registered handle:
// either a raw message-queue socket handle, or a file descriptor, plus an
// optional closed-check.
type pollable struct {
	closed func() bool // nil means never closed
	sock   uintptr     // pollableQueueSocket only
	fd     int         // descriptor kinds only
	kind   pollableKind
}

func (x pollable) isClosed() bool {
	return x.closed != nil && x.closed()
}

// equal reports whether two resolutions refer to the same native handle.
// The closed-check is deliberately excluded, it has no meaningful identity.
func (x pollable) equal(p pollable) bool {
	return x.kind == p.kind && x.sock == p.sock && x.fd == p.fd
}

// resolvePollable determines how to wait on handle, capturing its native
// representation and closed-check. The probe order is load-bearing: a
// message-queue socket may well also expose a notification descriptor, and
// a stream wrapper may expose a descriptor of its own, but the outermost
// capability decides what the handle is.
func resolvePollable(handle any) (pollable, error) {
	switch h := handle.(type) {
	case QueueSocket:
		p := pollable{kind: pollableQueueSocket, sock: h.RawHandle()}
		if p.sock == 0 {
			// no underlying socket: resolve anyway, as closed, so a later
			// Deregister or Delete can still find and remove the entry
			p.closed = closedAlways
		} else {
			p.closed = func() bool { return h.RawHandle() == 0 }
		}
		return p, nil

	case StreamWrapper:
		inner := h.NetConn()
		if inner == nil {
			return pollable{}, ErrNotPollable
		}
		fd, err := descriptorFd(inner)
		if err != nil {
			return pollable{}, err
		}
		p := pollable{kind: pollableWrapped, fd: fd}
		if c, ok := inner.(ClosedChecker); ok {
			p.closed = c.Closed
		}
		return p, nil

	default:
		fd, err := descriptorFd(handle)
		if err != nil {
			return pollable{}, err
		}
		p := pollable{kind: pollableRaw, fd: fd}
		if c, ok := handle.(ClosedChecker); ok {
			p.closed = c.Closed
		}
		return p, nil
	}
}

func closedAlways() bool { return true }

// descriptorFd extracts an OS file descriptor, preferring the Fd accessor,
// falling back to syscall.Conn.
func descriptorFd(v any) (int, error) {
	switch d := v.(type) {
	case Descriptor:
		return int(d.Fd()), nil

	case syscall.Conn:
		rc, err := d.SyscallConn()
		if err != nil {
			return -1, fmt.Errorf(`pollset: resolve %T: %w`, v, err)
		}
		fd := -1
		if err := rc.Control(func(h uintptr) { fd = int(h) }); err != nil {
			return -1, fmt.Errorf(`pollset: resolve %T: %w`, v, err)
		}
		return fd, nil
	}
	return -1, ErrNotPollable
}
