//go:build !unix

package pollset

import (
	"time"
)

// nativeWaiter is unavailable on this platform, see WithWaiter.
type nativeWaiter struct{}

func defaultWaiter() Waiter { return nativeWaiter{} }

func (nativeWaiter) Wait([]Item, time.Duration) (int, error) {
	return 0, ErrWaiterUnsupported
}
