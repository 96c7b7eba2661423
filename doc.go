// Package pollset implements readiness multiplexing over heterogeneous
// handles: message-queue sockets, raw file descriptors, and layered stream
// connections, e.g. [crypto/tls.Conn].
//
// A [Poller] maps handles to interest masks ([Events]), then blocks, in a
// single native wait, until any of them become ready, or a timeout elapses,
// reporting which handles fired, and for which interest. How to wait on a
// handle is resolved once, at registration, by probing the capabilities
// described by [QueueSocket], [StreamWrapper], and [Descriptor].
//
// The blocking wait itself is delegated to a [Waiter]. The default waits on
// file descriptors via poll(2), on unix platforms; waiting on native
// message-queue socket handles requires a transport-provided [Waiter], see
// [WithWaiter].
//
// A Poller never owns the registered endpoints: it does not close them, or
// otherwise manage their lifecycle, beyond detecting out-of-band closure,
// for cleanup. It is intended to be driven from a single logical control
// flow, and is not safe for concurrent use without external
// synchronization.
package pollset
