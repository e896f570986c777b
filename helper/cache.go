package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hargeisa_vibes/config"
	"hargeisa_vibes/model"

	"github.com/redis/go-redis/v9"
)

const BookingEventsChannel = "bookings:events"

var RedisClient *redis.Client

func InitRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})
}

// Refresh sessions are recorded server-side with a TTL; a refresh token that
// is not (or no longer) in the store is rejected regardless of its JWT expiry.

func sessionKey(kind string, id uint) string {
	return fmt.Sprintf("sessions:%s:%d", kind, id)
}

func SaveRefreshSession(ctx context.Context, kind string, id uint, token string, ttl time.Duration) error {
	return RedisClient.Set(ctx, sessionKey(kind, id), token, ttl).Err()
}

func RefreshSessionValid(ctx context.Context, kind string, id uint, token string) bool {
	stored, err := RedisClient.Get(ctx, sessionKey(kind, id)).Result()
	if err != nil {
		return false
	}
	return stored == token
}

func DeleteRefreshSession(ctx context.Context, kind string, id uint) {
	RedisClient.Del(ctx, sessionKey(kind, id))
}

// RedisPublisher pushes booking events onto the pub/sub channel consumed by
// the admin live feed websocket.
type RedisPublisher struct{}

func (RedisPublisher) Publish(ctx context.Context, event model.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return RedisClient.Publish(ctx, BookingEventsChannel, payload).Err()
}

var _ EventPublisher = RedisPublisher{}
