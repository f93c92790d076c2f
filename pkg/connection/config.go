package connection

import "time"

type configuration struct {
	ConnectTimeout    time.Duration
	ReconnectAttempts int
	ReconnectDelay    time.Duration
}

var defaultConfig = configuration{
	ConnectTimeout:    5 * time.Second,
	ReconnectAttempts: 5,
	ReconnectDelay:    2 * time.Second,
}
