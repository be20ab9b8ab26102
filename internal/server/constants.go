package server

import "time"

// HTTP server tuning
const (
	ReadHeaderTimeout = 5 * time.Second
	MaxRequestBody    = 1 << 20 // 1MB

	ShutdownTimeout = 10 * time.Second
)

// Shop throttle: one purchase-path request per client IP per interval.
const (
	ShopThrottleInterval = 500 * time.Millisecond
	ShopThrottleSize     = 4096
)
