package consts

import "time"

// Network timeouts
const (
	FetchTimeout = 12 * time.Second
)
