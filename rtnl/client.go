package rtnl

import (
	"fmt"
	"time"

	"github.com/inetkit/rtnl/nlattr"
	"github.com/inetkit/rtnl/nlsock"
	"github.com/inetkit/rtnl/nlwire"
	"github.com/inetkit/rtnl/rtlink"
	"github.com/inetkit/rtnl/rtnlmetrics"
	"github.com/inetkit/rtnl/rtroute"
	"github.com/prometheus/client_golang/prometheus"
)

// Client is the high-level entry point: a Dialogue plus the route/link
// mappers that turn raw envelopes into the records callers actually want,
// per spec.md §4.6's C6 layer.
type Client struct {
	dialogue *Dialogue
}

// NewClient opens a netlink socket and wraps it in a Client ready to issue
// requests. The caller must Close it when done.
func NewClient(opts ...Option) (*Client, error) {
	o := newOptions(opts)
	conn, err := nlsock.Connect(o.readBufferSize)
	if err != nil {
		return nil, err
	}
	d := newDialogue(conn, o)
	d.logf("rtnl: connected, pid=%d", conn.PID())
	return &Client{dialogue: d}, nil
}

// Close releases the underlying socket.
func (c *Client) Close() error {
	return c.dialogue.Close()
}

// drainEnvelopes issues the given request and collects every reply
// envelope up to the DONE terminator (which is consumed but not returned),
// surfacing the first ERROR envelope's non-zero errno as an error.
func (c *Client) drainEnvelopes(msgType nlwire.MessageType, flags nlwire.Flags, payload []byte) ([]Envelope, error) {
	start := time.Now()
	rtnlmetrics.RequestCount.With(prometheus.Labels{"message_type": msgType.String()}).Inc()
	if err := c.dialogue.Send(msgType, flags, payload); err != nil {
		rtnlmetrics.ErrorCount.With(prometheus.Labels{"type": "write"}).Inc()
		return nil, err
	}
	var out []Envelope
	for {
		env, err := c.dialogue.Recv()
		if err != nil {
			rtnlmetrics.ErrorCount.With(prometheus.Labels{"type": "read"}).Inc()
			return nil, err
		}
		if env == nil {
			rtnlmetrics.SyscallTimeHistogram.With(prometheus.Labels{"op": msgType.String()}).Observe(time.Since(start).Seconds())
			return out, nil
		}
		if env.Header.HasType(nlwire.ERROR) {
			if env.Errno != 0 {
				rtnlmetrics.ErrorCount.With(prometheus.Labels{"type": "kernel_errno"}).Inc()
				return nil, fmt.Errorf("rtnl: kernel returned errno %d", -env.Errno)
			}
			continue
		}
		out = append(out, *env)
	}
}

// ListRoutes issues a GET_ROUTE dump and returns every decoded route.
func (c *Client) ListRoutes() ([]rtroute.Route, error) {
	msgType, flags, payload := rtroute.BuildGetRouteDump()
	envs, err := c.drainEnvelopes(msgType, flags, payload)
	if err != nil {
		return nil, err
	}
	routes := make([]rtroute.Route, 0, len(envs))
	for _, env := range envs {
		hdr, rest, err := rtroute.DecodeHeader(env.Payload)
		if err != nil {
			return nil, err
		}
		rawAttrs, err := nlattr.Decode(rest)
		if err != nil {
			return nil, err
		}
		attrs, err := rtroute.DecodeAttributes(rawAttrs)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rtroute.ToRoute(hdr, attrs))
	}
	rtnlmetrics.DumpSizeHistogram.With(prometheus.Labels{"family": "route"}).Observe(float64(len(routes)))
	return routes, nil
}

// ListLinks issues a GET_LINK dump and returns every decoded link.
func (c *Client) ListLinks() ([]rtlink.Link, error) {
	msgType, flags, payload := rtlink.BuildGetLinkDump()
	envs, err := c.drainEnvelopes(msgType, flags, payload)
	if err != nil {
		return nil, err
	}
	links := make([]rtlink.Link, 0, len(envs))
	for _, env := range envs {
		hdr, rest, err := rtlink.DecodeHeader(env.Payload)
		if err != nil {
			return nil, err
		}
		rawAttrs, err := nlattr.Decode(rest)
		if err != nil {
			return nil, err
		}
		attrs, err := rtlink.DecodeAttributes(rawAttrs)
		if err != nil {
			return nil, err
		}
		links = append(links, rtlink.ToLink(hdr, attrs))
	}
	rtnlmetrics.DumpSizeHistogram.With(prometheus.Labels{"family": "link"}).Observe(float64(len(links)))
	return links, nil
}

// GetLink issues a GET_LINK request for one interface by name and returns
// its decoded Link. A by-name lookup is not a dump: the kernel answers
// with exactly one reply and no DONE terminator, so this reads a single
// envelope rather than draining to completion.
func (c *Client) GetLink(name string) (*rtlink.Link, error) {
	if name == "" {
		return nil, fmt.Errorf("rtnl: GetLink: %w", ErrMissingField)
	}
	msgType, flags, payload := rtlink.BuildGetLinkByName(name, 0)
	start := time.Now()
	rtnlmetrics.RequestCount.With(prometheus.Labels{"message_type": msgType.String()}).Inc()
	if err := c.dialogue.Send(msgType, flags, payload); err != nil {
		rtnlmetrics.ErrorCount.With(prometheus.Labels{"type": "write"}).Inc()
		return nil, err
	}
	env, err := c.dialogue.Recv()
	if err != nil {
		rtnlmetrics.ErrorCount.With(prometheus.Labels{"type": "read"}).Inc()
		return nil, err
	}
	if env == nil {
		return nil, nil
	}
	c.dialogue.stop()
	if env.Header.HasType(nlwire.ERROR) {
		if env.Errno != 0 {
			rtnlmetrics.ErrorCount.With(prometheus.Labels{"type": "kernel_errno"}).Inc()
			return nil, fmt.Errorf("rtnl: kernel returned errno %d", -env.Errno)
		}
		return nil, nil
	}
	rtnlmetrics.SyscallTimeHistogram.With(prometheus.Labels{"op": msgType.String()}).Observe(time.Since(start).Seconds())
	hdr, rest, err := rtlink.DecodeHeader(env.Payload)
	if err != nil {
		return nil, err
	}
	rawAttrs, err := nlattr.Decode(rest)
	if err != nil {
		return nil, err
	}
	attrs, err := rtlink.DecodeAttributes(rawAttrs)
	if err != nil {
		return nil, err
	}
	link := rtlink.ToLink(hdr, attrs)
	return &link, nil
}
