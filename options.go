package pollset

import (
	"errors"

	"github.com/joeycumines/logiface"
)

// pollerOptions holds configuration options for Poller creation.
type pollerOptions struct {
	waiter Waiter
	logger *logiface.Logger[logiface.Event]
}

// Option configures a Poller instance.
type Option interface {
	applyPoller(*pollerOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyPollerFunc func(*pollerOptions) error
}

func (x *optionImpl) applyPoller(opts *pollerOptions) error {
	return x.applyPollerFunc(opts)
}

// WithWaiter replaces the native multiplexing primitive. Use this to wait on
// message-queue socket handles, via a transport-provided implementation, or
// to stub out waiting entirely, e.g. in tests. The waiter must not be nil.
func WithWaiter(waiter Waiter) Option {
	return &optionImpl{func(opts *pollerOptions) error {
		if waiter == nil {
			return errors.New(`pollset: nil waiter`)
		}
		opts.waiter = waiter
		return nil
	}}
}

// WithLogger configures structured logging. Accepts nil, which disables
// logging, the default.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *pollerOptions) error {
		opts.logger = logger
		return nil
	}}
}

// resolvePollerOptions applies Option instances to pollerOptions.
func resolvePollerOptions(opts []Option) (*pollerOptions, error) {
	cfg := &pollerOptions{
		waiter: defaultWaiter(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue // skip nil options gracefully
		}
		if err := opt.applyPoller(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
