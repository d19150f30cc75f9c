package database

import (
	"time"
)

// Connection definition sql setting
type Connection struct {
	DSN string

	ConnectionLifetime time.Duration
	MaxOpenConnections int
	MaxIdleConnections int

	RetryCount    int
	RetryInterval time.Duration
}

// RedisConnection definition redis setting, Addr wins over sentinel
type RedisConnection struct {
	Addr string

	MasterName    string
	SentinelAddrs []string

	Password string
	DB       int
}
