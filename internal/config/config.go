package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Server struct {
	Host          string        `toml:"host"`
	Port          int           `toml:"port"`
	Debug         bool          `toml:"debug_mode"`
	TLSCert       string        `toml:"tls_cert"`
	TLSKey        string        `toml:"tls_key"`
	ProfileSecret string        `toml:"profile_secret"`
	ProfileTTL    time.Duration `toml:"profile_ttl"`
	// Panels bounds how many profiles keep an auth form in memory.
	Panels int `toml:"panels"`
}

type Session struct {
	Backend    string `toml:"backend"`
	SqliteFile string `toml:"sqlite_file"`
	RedisAddr  string `toml:"redis_addr"`
	RedisDB    int    `toml:"redis_db"`
	KeyPrefix  string `toml:"key_prefix"`
}

type Auth struct {
	Latency *time.Duration `toml:"latency"`
}

type Config struct {
	Server  Server  `toml:"server"`
	Session Session `toml:"session"`
	Auth    Auth    `toml:"auth"`
}

func (c Config) TLS() bool {
	return c.Server.TLSCert != "" && c.Server.TLSKey != ""
}

func (c Config) Addr() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// AuthLatency is the simulated round trip of an auth form submission.
func (c Config) AuthLatency() time.Duration {
	if c.Auth.Latency == nil {
		return 1500 * time.Millisecond
	}
	return *c.Auth.Latency
}

func New(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if secret := os.Getenv("BIZNESS_PROFILE_SECRET"); secret != "" {
		cfg.Server.ProfileSecret = secret
	}
	if addr := os.Getenv("BIZNESS_REDIS_ADDR"); addr != "" {
		cfg.Session.RedisAddr = addr
	}
	setDefaults(&cfg)
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.ProfileTTL == 0 {
		cfg.Server.ProfileTTL = 365 * 24 * time.Hour
	}
	if cfg.Server.Panels <= 0 {
		cfg.Server.Panels = 1024
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = BackendSQLite
	}
	if cfg.Session.SqliteFile == "" {
		cfg.Session.SqliteFile = "session.sqlite"
	}
	if cfg.Session.KeyPrefix == "" {
		cfg.Session.KeyPrefix = "bizness:user:"
	}
}
