// Package events publica los cambios confirmados del catálogo en Redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/pkg/config"
)

// RedisPublisher implementa catalog.EventPublisher sobre un canal Redis.
type RedisPublisher struct {
	rdb     *goredis.Client
	channel string
}

// NewRedisPublisher conecta y verifica Redis con PING.
func NewRedisPublisher(ctx context.Context, cfg config.RedisConfig) (*RedisPublisher, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR vacío")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisPublisher{rdb: rdb, channel: cfg.Channel}, nil
}

// Publish serializa el evento en JSON y lo publica en el canal configurado.
func (p *RedisPublisher) Publish(ctx context.Context, evt entity.CatalogEvent) error {
	if p == nil || p.rdb == nil {
		return fmt.Errorf("publicador redis no inicializado")
	}
	raw, err := Encode(evt)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, p.channel, raw).Err()
}

// Close libera la conexión.
func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}

// Encode formato de cable de un evento del catálogo.
func Encode(evt entity.CatalogEvent) ([]byte, error) {
	raw, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("codificar evento: %w", err)
	}
	return raw, nil
}
