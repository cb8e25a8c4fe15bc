// Package redisstore guarda los códigos de un solo uso del reset de
// contraseña en Redis, con expiración automática por TTL.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/investarise/summit-api/internal/application/auth"
	"github.com/investarise/summit-api/pkg/config"
)

var _ auth.CodeStore = (*CodeStore)(nil)

// CodeStore implementación de auth.CodeStore sobre Redis.
type CodeStore struct {
	client *redis.Client
}

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewCodeStore construye el store de códigos.
func NewCodeStore(client *redis.Client) *CodeStore {
	return &CodeStore{client: client}
}

func key(email string) string {
	return "reset:code:" + email
}

// Save guarda el código con TTL; reemplaza cualquier código anterior.
func (s *CodeStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("guardar código reset: %w", err)
	}
	return nil
}

// Get devuelve el código vigente, o "" si no existe o ya expiró.
func (s *CodeStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("leer código reset: %w", err)
	}
	return code, nil
}

// Delete consume el código tras una verificación exitosa.
func (s *CodeStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, key(email)).Err(); err != nil {
		return fmt.Errorf("borrar código reset: %w", err)
	}
	return nil
}
