package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goserg/bizness/internal/config"
	"github.com/goserg/bizness/internal/logger"
	"github.com/goserg/bizness/internal/profile"
	"github.com/goserg/bizness/internal/session"
	"github.com/goserg/bizness/internal/session/mem"
	"github.com/goserg/bizness/internal/session/redis"
	"github.com/goserg/bizness/internal/session/sqlite"
	"github.com/goserg/bizness/internal/web"
	"github.com/sirupsen/logrus"
)

var serverConfigPath string

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server config")
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	cfg, err := config.New(serverConfigPath)
	if err != nil {
		return err
	}
	l := logger.New(cfg.Server.Debug)
	if cfg.Server.ProfileSecret == "" {
		return errors.New("profile_secret is not set")
	}

	backend, closer, err := openBackend(l, cfg.Session)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	signer := profile.NewSigner(cfg.Server.ProfileSecret, cfg.Server.ProfileTTL)
	server, err := web.New(l, cfg, backend, signer)
	if err != nil {
		return err
	}
	l.WithFields(logrus.Fields{
		"addr":    cfg.Addr(),
		"tls":     cfg.TLS(),
		"backend": cfg.Session.Backend,
	}).Info("starting server")
	return server.Serve()
}

func openBackend(l *logrus.Logger, cfg config.Session) (session.Backend, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		b, err := sqlite.New(l, cfg.SqliteFile)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	case config.BackendRedis:
		b, err := redis.Connect(context.Background(), l, redis.Config{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	case config.BackendMemory:
		return mem.New(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
}
