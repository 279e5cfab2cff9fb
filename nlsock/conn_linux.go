package nlsock

import (
	"golang.org/x/sys/unix"
)

// defaultDrainScratchSize is the scratch buffer size Drain reads into when
// Connect is called with scratchSize <= 0.
const defaultDrainScratchSize = 2048

// conn is the Linux AF_NETLINK/NETLINK_ROUTE implementation of Conn. The
// socket is opened non-blocking and close-on-exec; Read/Drain poll for
// readability before calling unix.Read so the exact-read loops built on
// top of Conn never busy-spin on EAGAIN.
type conn struct {
	fd      int
	pid     uint32
	scratch int
}

// Connect opens and binds a NETLINK_ROUTE socket directly against
// golang.org/x/sys/unix, since this module owns its own transport rather
// than delegating to a netlink request/response library. scratchSize sets
// the buffer size Drain reads into per syscall; scratchSize <= 0 uses
// defaultDrainScratchSize.
func Connect(scratchSize int) (Conn, error) {
	if scratchSize <= 0 {
		scratchSize = defaultDrainScratchSize
	}
	fd, err := unix.Socket(unix.AF_NETLINK, unix.SOCK_RAW|unix.SOCK_CLOEXEC|unix.SOCK_NONBLOCK, unix.NETLINK_ROUTE)
	if err != nil {
		return nil, &CreateSocketError{Err: err}
	}
	pid := uint32(unix.Getpid())
	if err := unix.Bind(fd, &unix.SockaddrNetlink{Family: unix.AF_NETLINK, Pid: pid}); err != nil {
		unix.Close(fd)
		return nil, &BindSocketError{Err: err}
	}
	return &conn{fd: fd, pid: pid, scratch: scratchSize}, nil
}

func (c *conn) PID() uint32 { return c.pid }

func (c *conn) waitReadable() error {
	pfd := []unix.PollFd{{Fd: int32(c.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(pfd, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return &RecvSocketError{Err: err}
		}
		if n > 0 {
			return nil
		}
	}
}

func (c *conn) Read(b []byte) (int, error) {
	if err := c.waitReadable(); err != nil {
		return 0, err
	}
	n, err := unix.Read(c.fd, b)
	if err != nil {
		return 0, &RecvSocketError{Err: err}
	}
	return n, nil
}

func (c *conn) Drain() ([]byte, error) {
	if err := c.waitReadable(); err != nil {
		return nil, err
	}
	var out []byte
	scratch := make([]byte, c.scratch)
	for {
		n, err := unix.Read(c.fd, scratch)
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return out, nil
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return out, &RecvSocketError{Err: err}
		}
		out = append(out, scratch[:n]...)
	}
}

func (c *conn) Write(b []byte) (int, error) {
	written := 0
	for written < len(b) {
		n, err := unix.Write(c.fd, b[written:])
		if err != nil {
			return written, &SendSocketError{Err: err}
		}
		written += n
	}
	return written, nil
}

func (c *conn) Close() error {
	return unix.Close(c.fd)
}
