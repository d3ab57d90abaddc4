package main

import (
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/dhwrwm/intergalactic-booking-wizard/internal/config"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/adapters/file"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/adapters/memory"
	redisAdapter "github.com/dhwrwm/intergalactic-booking-wizard/pkg/adapters/redis"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/ports"
)

// buildStore selects the session persistence backend from config. The redis
// backend also yields a distributed locker sharing the same client; the
// in-process backends return a nil locker.
func buildStore(cfg config.Config) (ports.StateStore, ports.DistributedLocker, error) {
	switch cfg.Store.Backend {
	case "", "memory":
		return memory.NewStore(), nil, nil
	case "file":
		return file.New(cfg.Store.Path), nil, nil
	case "redis":
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := redisAdapter.NewFromClient(client,
			redisAdapter.WithTTL(cfg.Redis.TTL),
			redisAdapter.WithPrefix(cfg.Redis.Prefix),
		)
		return store, redisAdapter.NewLocker(client, cfg.Redis.Prefix), nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q (want memory, file or redis)", cfg.Store.Backend)
}
