package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Client counts outbound backend calls for one session.
type Client struct {
	Requests     Counter
	NetworkError Counter
	ClientError  Counter // 4xx
	ServerError  Counter // 5xx
	Throttled    Counter
}

// Observe records one finished call. status is 0 when no response arrived.
func (c *Client) Observe(status int) {
	c.Requests.Inc()
	switch {
	case status == 0:
		c.NetworkError.Inc()
	case status >= 500:
		c.ServerError.Inc()
	case status >= 400:
		c.ClientError.Inc()
	}
}

// Snapshot is a copy of the counters at one point in time.
type Snapshot struct {
	Requests     uint64
	NetworkError uint64
	ClientError  uint64
	ServerError  uint64
	Throttled    uint64
}

func (c *Client) Snapshot() Snapshot {
	return Snapshot{
		Requests:     c.Requests.Load(),
		NetworkError: c.NetworkError.Load(),
		ClientError:  c.ClientError.Load(),
		ServerError:  c.ServerError.Load(),
		Throttled:    c.Throttled.Load(),
	}
}
