package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore guarda cada blob bajo su clave en Redis (sin expiración: el estado
// vive hasta la siguiente escritura).
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore conecta al servidor y verifica con un ping acotado.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("storage: ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Load lee el blob de la clave. Clave ausente → ErrBlobNotFound.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", key, err)
	}
	return data, nil
}

// Save escribe el blob sin TTL.
func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
