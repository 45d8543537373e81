package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

// consumeScript deletes the ticket only when the presented token matches, so a
// wrong guess does not cancel the pending deletion.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ConfirmationStore keeps trainer deletion tickets as expiring keys.
// Key format: confirm:trainer:<id>
type ConfirmationStore struct {
	client redis.Cmdable
}

func NewConfirmationStore(client redis.Cmdable) ports.ConfirmationStore {
	return &ConfirmationStore{client: client}
}

// Save replaces any earlier ticket for the trainer.
func (s *ConfirmationStore) Save(ctx context.Context, trainerID int64, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(trainerID), token, ttl).Err(); err != nil {
		return fmt.Errorf("save confirmation: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *ConfirmationStore) Consume(ctx context.Context, trainerID int64, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	n, err := consumeScript.Run(ctx, s.client, []string{key(trainerID)}, token).Int64()
	if err != nil {
		return false, fmt.Errorf("consume confirmation: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return n == 1, nil
}

func key(trainerID int64) string {
	return fmt.Sprintf("confirm:trainer:%d", trainerID)
}
