package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/config"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var redisClient *redis.Client

// Init connects to redis. The refresh token store lives here, so the
// process aborts if the connection cannot be established.
func Init() {
	conf := config.GetConfig()
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.RedisConfig.Host, conf.RedisConfig.Port),
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.Db,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("falha ao conectar ao redis", zap.Error(err))
	}
	zap.L().Info("redis conectado", zap.String("host", conf.RedisConfig.Host))
}

// Close releases the client. Called on shutdown.
func Close() {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("falha ao fechar o redis", zap.Error(err))
		}
	}
}

// SetKeyEx stores a key with an expiry.
func SetKeyEx(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := redisClient.Set(ctx, key, value, ttl).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "gravação da chave %s", key)
	}
	return nil
}

// GetKey reads a key. A missing key maps to CodeNotFound.
func GetKey(ctx context.Context, key string) (string, error) {
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errorx.Wrapf(err, errorx.CodeNotFound, "chave %s não encontrada", key)
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "leitura da chave %s", key)
	}
	return value, nil
}

// DelKey removes a key.
func DelKey(ctx context.Context, key string) error {
	if err := redisClient.Del(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "remoção da chave %s", key)
	}
	return nil
}
