package nlsock

import "fmt"

// CreateSocketError wraps a failure to create the netlink socket itself.
type CreateSocketError struct{ Err error }

func (e *CreateSocketError) Error() string { return fmt.Sprintf("nlsock: create socket: %v", e.Err) }
func (e *CreateSocketError) Unwrap() error { return e.Err }

// BindSocketError wraps a failure to bind the netlink socket to its local
// address.
type BindSocketError struct{ Err error }

func (e *BindSocketError) Error() string { return fmt.Sprintf("nlsock: bind socket: %v", e.Err) }
func (e *BindSocketError) Unwrap() error { return e.Err }

// SendSocketError wraps a failure at the syscall level while sending a
// message to the kernel.
type SendSocketError struct{ Err error }

func (e *SendSocketError) Error() string { return fmt.Sprintf("nlsock: send: %v", e.Err) }
func (e *SendSocketError) Unwrap() error { return e.Err }

// RecvSocketError wraps a failure at the syscall level while reading a
// message from the kernel, other than the expected "would block" signal.
type RecvSocketError struct{ Err error }

func (e *RecvSocketError) Error() string { return fmt.Sprintf("nlsock: recv: %v", e.Err) }
func (e *RecvSocketError) Unwrap() error { return e.Err }
