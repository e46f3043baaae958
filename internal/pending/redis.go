package pending

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "venda_pendente:"

// clearIfMatches deletes the key only when it still holds the given sale id,
// so a late payment never unpins a newer sale.
var clearIfMatches = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisRegistry keeps one key per operator with a TTL.
type RedisRegistry struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRegistry(rdb *redis.Client, ttl time.Duration) *RedisRegistry {
	return &RedisRegistry{rdb: rdb, ttl: ttl}
}

func (r *RedisRegistry) Pin(ctx context.Context, operador string, vendaID uint) error {
	return r.rdb.Set(ctx, keyPrefix+operador, strconv.FormatUint(uint64(vendaID), 10), r.ttl).Err()
}

func (r *RedisRegistry) Current(ctx context.Context, operador string) (uint, error) {
	val, err := r.rdb.Get(ctx, keyPrefix+operador).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNone
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrNone
	}
	return uint(id), nil
}

func (r *RedisRegistry) Clear(ctx context.Context, operador string, vendaID uint) error {
	return clearIfMatches.Run(ctx, r.rdb, []string{keyPrefix + operador},
		strconv.FormatUint(uint64(vendaID), 10)).Err()
}
