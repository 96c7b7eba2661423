package pollset

import (
	"net"
	"syscall"
	"time"
)

type (
	// queueHandle fakes a message-queue socket wrapper. A zero sock means
	// the wrapper no longer has an underlying socket.
	queueHandle struct {
		sock uintptr
	}

	// fdHandle fakes a plain descriptor-bearing object.
	fdHandle struct {
		fd uintptr
	}

	// closableFDHandle is fdHandle plus a closed-state query.
	closableFDHandle struct {
		fd     uintptr
		closed bool
	}

	// wrappedHandle fakes a layered stream socket exposing its inner
	// connection.
	wrappedHandle struct {
		inner net.Conn
	}

	// innerConn is a connection for wrappedHandle to wrap. The net.Conn
	// methods are never called, resolution only needs the descriptor and
	// closed-state accessors.
	innerConn struct {
		net.Conn
		fd     uintptr
		closed bool
	}

	// dualHandle exposes both a raw socket handle and a descriptor, for
	// resolution precedence checks.
	dualHandle struct {
		queueHandle
		fd uintptr
	}

	// rawConnHandle exposes a descriptor only via syscall.Conn.
	rawConnHandle struct {
		fd uintptr
	}

	stubRawConn struct {
		fd uintptr
	}

	// sliceHandle is pollable but not comparable, so it cannot key a
	// registration.
	sliceHandle []byte

	// stubWaiter records Wait calls, marking readiness via mark, or failing
	// with err.
	stubWaiter struct {
		mark  func(items []Item)
		err   error
		items [][]Item
		last  time.Duration
		calls int
	}
)

func (x *queueHandle) RawHandle() uintptr { return x.sock }

func (x *fdHandle) Fd() uintptr { return x.fd }

func (x *closableFDHandle) Fd() uintptr { return x.fd }

func (x *closableFDHandle) Closed() bool { return x.closed }

func (x *wrappedHandle) NetConn() net.Conn { return x.inner }

func (x *innerConn) Fd() uintptr { return x.fd }

func (x *innerConn) Closed() bool { return x.closed }

func (x *dualHandle) Fd() uintptr { return x.fd }

func (x *rawConnHandle) SyscallConn() (syscall.RawConn, error) {
	return stubRawConn{fd: x.fd}, nil
}

func (x stubRawConn) Control(f func(fd uintptr)) error {
	f(x.fd)
	return nil
}

func (x stubRawConn) Read(f func(fd uintptr) (done bool)) error { return nil }

func (x stubRawConn) Write(f func(fd uintptr) (done bool)) error { return nil }

func (sliceHandle) Fd() uintptr { return 1 }

func (x *stubWaiter) Wait(items []Item, timeout time.Duration) (int, error) {
	x.calls++
	x.last = timeout
	snapshot := make([]Item, len(items))
	copy(snapshot, items)
	x.items = append(x.items, snapshot)
	if x.err != nil {
		return 0, x.err
	}
	if x.mark != nil {
		x.mark(items)
	}
	var n int
	for i := range items {
		if items[i].Ready != 0 {
			n++
		}
	}
	return n, nil
}
