// Package greedy types: sentinel errors, scan orders, options.
package greedy

import (
	"errors"
	"fmt"
)

// Sentinel errors for the greedy packer.
var (
	// ErrNilInstance is returned when a nil instance pointer is passed.
	ErrNilInstance = errors.New("greedy: instance is nil")

	// ErrUnknownOrder is returned when an unrecognized Order is supplied.
	ErrUnknownOrder = errors.New("greedy: unknown scan order")
)

// Order selects the subset scan order.
type Order int

const (
	// ByPosition scans subsets in instance order.
	ByPosition Order = iota

	// BySize scans subsets by ascending cardinality, position as
	// tie-break; small subsets claim fewer elements and tend to leave
	// room for more picks.
	BySize
)

// String returns the canonical name of the order.
func (o Order) String() string {
	switch o {
	case ByPosition:
		return "position"
	case BySize:
		return "size"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// Option configures the greedy packer via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrUnknownOrder when Pack is invoked.
type Option func(*Options)

// Options holds parameters for Pack.
type Options struct {
	// Order is the subset scan order.
	Order Order

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options scanning in instance order.
func DefaultOptions() Options {
	return Options{Order: ByPosition, err: nil}
}

// WithOrder sets the subset scan order.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case ByPosition, BySize:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
		}
	}
}
