package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
)

// Broadcaster publishes live incident events on a per-incident pub/sub
// channel. Subscribers get JSON-encoded events; no delivery ack.
type Broadcaster struct {
	client *goredis.Client
}

func NewBroadcaster(r *Redis) *Broadcaster {
	return &Broadcaster{client: r.Client}
}

func channelFor(incidentID uuid.UUID) string {
	return fmt.Sprintf("incident:%s", incidentID)
}

func (b *Broadcaster) Publish(ctx context.Context, event domain.IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, channelFor(event.IncidentID), payload).Err()
}

// Subscribe is used by the websocket relay and by tests.
func (b *Broadcaster) Subscribe(ctx context.Context, incidentID uuid.UUID) *goredis.PubSub {
	return b.client.Subscribe(ctx, channelFor(incidentID))
}
