// Package rtnlmetrics defines prometheus metric types for instrumenting a
// rtnl.Client: syscall latency, dump sizes, and error counts, so a caller
// that polls routes or links on an interval can see the behavior of that
// loop without threading counters through their own code.
package rtnlmetrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyscallTimeHistogram tracks the latency of one request round trip
	// against the kernel (Send through DONE for a dump, Send through the
	// single reply for GetLink), labeled by which operation it was.
	SyscallTimeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "rtnl_syscall_time_histogram",
			Help: "netlink syscall round-trip latency distribution (seconds)",
			Buckets: []float64{
				0.001, 0.00125, 0.0016, 0.002, 0.0025, 0.0032, 0.004, 0.005, 0.0063, 0.0079,
				0.01, 0.0125, 0.016, 0.02, 0.025, 0.032, 0.04, 0.05, 0.063, 0.079,
				0.1, 0.125, 0.16, 0.2,
			},
		},
		[]string{"op"})

	// DumpSizeHistogram tracks how many records a dump request returned,
	// labeled by message family (route, link).
	DumpSizeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "rtnl_dump_size_histogram",
			Help: "record count returned per dump request",
			Buckets: []float64{
				1, 2, 3, 4, 5, 6, 8,
				10, 12.5, 16, 20, 25, 32, 40, 50, 63, 79,
				100, 125, 160, 200, 250, 320, 400, 500, 630, 790,
				1000, 1250, 1600, 2000,
			},
		},
		[]string{"family"})

	// ErrorCount measures the number of errors encountered, labeled by
	// the rtnl error category (write, read, kernel_errno). Decode failures
	// are not counted.
	ErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rtnl_error_total",
			Help: "The total number of errors encountered.",
		}, []string{"type"})

	// RequestCount counts requests issued to the kernel, labeled by
	// message type name (GET_ROUTE, GET_LINK, ...).
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rtnl_request_total",
			Help: "Number of requests sent to the kernel.",
		}, []string{"message_type"})
)

func init() {
	log.Println("Prometheus metrics in rtnl.rtnlmetrics are registered.")
}
