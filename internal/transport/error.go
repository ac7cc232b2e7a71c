package transport

import "errors"

// ErrRateLimited is returned when the limiter gives up before the request is
// sent, for example because waiting would pass the context deadline.
var ErrRateLimited = errors.New("rate limited")
