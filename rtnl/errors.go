package rtnl

import (
	"errors"
	"fmt"

	"github.com/inetkit/rtnl/nlattr"
)

// Sentinel codec/validation errors, grounded in spec.md §7's abstract
// error kinds that aren't tied to any particular transport call.
var (
	// ErrMissingField is returned when a caller invokes an operation
	// without a value it requires (e.g. an empty interface name).
	ErrMissingField = errors.New("rtnl: required field missing")

	// ErrValueConversion is returned when a numeric value read off the
	// wire does not fit the meaning its field is supposed to carry (a
	// declared envelope length shorter than the header it prefixes, for
	// instance).
	ErrValueConversion = errors.New("rtnl: value does not fit its target width")

	// ErrCastEnum is returned when a raw value does not match any known
	// enumerator of the type it is being interpreted as.
	ErrCastEnum = errors.New("rtnl: value does not match any known enumerator")
)

// DeserializeAttrError wraps a decode failure that occurred inside one
// specific typed attribute. It lives in nlattr, not here, since rtroute
// and rtlink construct it at their per-tag dispatch sites and can't import
// rtnl (rtnl already imports them); this alias keeps it reachable as
// rtnl.DeserializeAttrError for callers of this package.
type DeserializeAttrError = nlattr.DeserializeAttrError

// WriteSocketError and ReadSocketError wrap an I/O failure the Dialogue
// observed while driving the underlying nlsock.Conn. They sit one layer
// above nlsock's own CreateSocketError/BindSocketError/SendSocketError/
// RecvSocketError, which already carry the syscall errno; these wrap
// whatever nlsock returned with the Dialogue-level context of which
// operation (an envelope write, an exact-read) was in progress.
type WriteSocketError struct{ Err error }

func (e *WriteSocketError) Error() string { return fmt.Sprintf("rtnl: write: %v", e.Err) }
func (e *WriteSocketError) Unwrap() error { return e.Err }

type ReadSocketError struct{ Err error }

func (e *ReadSocketError) Error() string { return fmt.Sprintf("rtnl: read: %v", e.Err) }
func (e *ReadSocketError) Unwrap() error { return e.Err }
