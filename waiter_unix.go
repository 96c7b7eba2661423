//go:build unix

package pollset

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/sys/unix"
)

// nativeWaiter waits on file descriptors via poll(2). It cannot wait on raw
// message-queue socket handles, see WithWaiter.
type nativeWaiter struct{}

func defaultWaiter() Waiter { return nativeWaiter{} }

func (nativeWaiter) Wait(items []Item, timeout time.Duration) (int, error) {
	fds := make([]unix.PollFd, len(items))
	for i := range items {
		if items[i].Socket != 0 {
			return 0, ErrQueueSocketUnsupported
		}
		fds[i] = unix.PollFd{Fd: int32(items[i].FD), Events: int16(items[i].Events)}
	}

	// EINTR surfaces as an error: an interrupted wait is not zero-ready
	if _, err := unix.Poll(fds, pollTimeoutMillis(timeout)); err != nil {
		return 0, fmt.Errorf(`pollset: poll: %w`, err)
	}

	var ready int
	for i := range fds {
		revents := Events(fds[i].Revents)
		if revents&unix.POLLNVAL != 0 {
			return 0, fmt.Errorf(`%w: fd %d`, ErrBadDescriptor, items[i].FD)
		}
		if revents&(unix.POLLERR|unix.POLLHUP) != 0 {
			// error and hangup surface on every requested interest: reads
			// observe EOF, and writes fail, without blocking
			revents |= items[i].Events
		}
		items[i].Ready = revents & items[i].Events
		if items[i].Ready != 0 {
			ready++
		}
	}
	return ready, nil
}

// pollTimeoutMillis converts to poll(2)'s millisecond timeout, rounding
// sub-millisecond positive values up, so they don't degrade to non-blocking.
func pollTimeoutMillis(timeout time.Duration) int {
	if timeout < 0 {
		return -1
	}
	if timeout > math.MaxInt32*time.Millisecond {
		return math.MaxInt32
	}
	return int((timeout + time.Millisecond - 1) / time.Millisecond)
}
