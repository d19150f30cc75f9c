package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Defaults values used when a key is absent from the yaml, an explicit 0 is kept
var Defaults = map[string]interface{}{
	"chat.default_limit": 49,
}

// Service definition entrust_service YAML structure
type Service struct {
	Port    string        `mapstructure:"port" validate:"required"`
	MySQL   MySQLConfig   `mapstructure:"mysql" validate:"required"`
	Redis   RedisConfig   `mapstructure:"redis"`
	JWT     JWTConfig     `mapstructure:"jwt" validate:"required"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Entrust EntrustConfig `mapstructure:"entrust"`
}

// MySQLConfig definition db setting
type MySQLConfig struct {
	Host               string        `mapstructure:"host" validate:"required"`
	Port               int           `mapstructure:"port" validate:"required"`
	User               string        `mapstructure:"user" validate:"required"`
	Password           string        `mapstructure:"password"`
	Database           string        `mapstructure:"database" validate:"required"`
	Timeout            time.Duration `mapstructure:"timeout"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	ConnectionLifetime time.Duration `mapstructure:"connection_lifetime"`
	MaxOpenConnections int           `mapstructure:"max_open_connections"`
	MaxIdleConnections int           `mapstructure:"max_idle_connections"`
	RetryInterval      int           `mapstructure:"retry_interval"`
	RetryCount         int           `mapstructure:"retry_count"`
}

// RedisConfig definition redis setting, Addr wins over sentinel
type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	MasterName string `mapstructure:"master_name"`
	Password   string `mapstructure:"password"`
	RedisDB    int    `mapstructure:"redis_db"`
}

// JWTConfig definition token setting
type JWTConfig struct {
	Secret string        `mapstructure:"secret" validate:"required"`
	Issuer string        `mapstructure:"issuer"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// ChatConfig definition chat setting
type ChatConfig struct {
	// DefaultLimit upper index used when a list request has no limit
	DefaultLimit int64 `mapstructure:"default_limit"`
}

// EntrustConfig definition entrust setting
type EntrustConfig struct {
	InfoCacheTTL time.Duration `mapstructure:"info_cache_ttl"`
}

// Validate validates Service struct.
func (s Service) Validate() error {
	return errors.Wrap(validator.New().Struct(s), "config validation failed")
}

// MySQLDSN returns the go-sql-driver DSN
func (d MySQLConfig) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&timeout=%s&readTimeout=%s&writeTimeout=%s&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
		orDefault(d.Timeout, 5*time.Second),
		orDefault(d.ReadTimeout, 5*time.Second),
		orDefault(d.WriteTimeout, 5*time.Second),
	)
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
