package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

// PushQueue buffers outgoing push notifications. Lifecycle transitions
// enqueue; the push sender worker drains with BRPop.
type PushQueue struct {
	client *goredis.Client
	key    string
}

func NewPushQueue(r *Redis, key string) *PushQueue {
	if key == "" {
		key = "push:queue"
	}
	return &PushQueue{client: r.Client, key: key}
}

func (q *PushQueue) Enqueue(ctx context.Context, notification domain.PushNotification) error {
	b, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *PushQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.PushNotification, error) {
	var n domain.PushNotification

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return n, e.ErrQueueEmpty
		}
		return n, err
	}
	if len(res) < 2 {
		return n, goredis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &n); err != nil {
		return n, err
	}
	return n, nil
}
