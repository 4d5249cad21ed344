package tokens

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "agenda:revoked:"

// Denylist guarda JTIs revogados no Redis até o token expirar sozinho.
// Receiver nil é válido e significa "denylist desligada".
type Denylist struct {
	rdb *redis.Client
}

func NewDenylist(addr, password string) *Denylist {
	if addr == "" {
		return nil
	}

	return &Denylist{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d == nil || jti == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return d.rdb.Set(ctx, keyPrefix+jti, "1", ttl).Err()
}

// IsRevoked falha aberto: Redis fora do ar não derruba a autenticação.
func (d *Denylist) IsRevoked(ctx context.Context, jti string) bool {
	if d == nil || jti == "" {
		return false
	}

	n, err := d.rdb.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}
