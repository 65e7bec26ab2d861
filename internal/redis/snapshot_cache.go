package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
)

// SnapshotCache holds the rebuilt domain config tree.
type SnapshotCache struct {
	client *goredis.Client
}

func NewSnapshotCache(r *Redis) *SnapshotCache {
	return &SnapshotCache{client: r.Client}
}

func snapshotKey(domainName string) string {
	return "domain:snapshot:" + domainName
}

func (c *SnapshotCache) Get(ctx context.Context, domainName string) (*domain.DomainSnapshot, error) {
	data, err := c.client.Get(ctx, snapshotKey(domainName)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot domain.DomainSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (c *SnapshotCache) Set(ctx context.Context, snapshot *domain.DomainSnapshot, ttl time.Duration) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey(snapshot.Domain.Name), b, ttl).Err()
}
