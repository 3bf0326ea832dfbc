package framequeue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/maze-walker/domain"
	"github.com/beka-birhanu/maze-walker/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "maze-walker"

	// frames key string format
	framesKeyFmt = "%s:frames:%s"
)

var ErrMalformedFrame = errors.New("malformed frame member")

// RedisFrameQueue keeps replay frames in a Redis sorted set scored by tick.
type RedisFrameQueue struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisFrameQueue initializes a RedisFrameQueue with the provided Redis client and TTL.
func NewRedisFrameQueue(client *redis.Client, ttlSeconds int) (i.FrameQueue, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}

	queue := &RedisFrameQueue{
		client: client,
		prefix: defaultPrefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	queue.locker = redsync.New(pool)
	return queue, nil
}

// Push adds a frame to the run's set and sets expiration if necessary.
func (q *RedisFrameQueue) Push(ctx context.Context, runID uuid.UUID, frame dmn.Frame) error {
	key := framesKey(q.prefix, runID)
	_, err := q.client.ZAdd(ctx, key, redis.Z{Score: float64(frame.Tick), Member: encodeFrame(frame)}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := q.client.TTL(ctx, key).Result()
	if err == nil && ttl == -1 {
		_ = q.client.Expire(ctx, key, q.ttl).Err()
	}

	return nil
}

// PopOldest removes and retrieves up to amount frames with the lowest ticks.
// Concurrent viewers of the same run never receive the same frame.
func (q *RedisFrameQueue) PopOldest(ctx context.Context, runID uuid.UUID, amount int64) ([]dmn.Frame, error) {
	key := framesKey(q.prefix, runID)
	mutex := q.locker.NewMutex(key + ":drain_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	popped, err := q.client.ZPopMin(ctx, key, amount).Result()
	if err != nil {
		return nil, err
	}

	frames := make([]dmn.Frame, 0, len(popped))
	for _, z := range popped {
		member, ok := z.Member.(string)
		if !ok {
			return frames, ErrMalformedFrame
		}
		frame, err := decodeFrame(member)
		if err != nil {
			return frames, err
		}
		frames = append(frames, frame)
	}

	return frames, nil
}

// Count returns the number of frames waiting for a run.
func (q *RedisFrameQueue) Count(ctx context.Context, runID uuid.UUID) int64 {
	return q.client.ZCard(ctx, framesKey(q.prefix, runID)).Val()
}

func framesKey(prefix string, runID uuid.UUID) string {
	return fmt.Sprintf(framesKeyFmt, prefix, runID)
}

// encodeFrame prefixes the text with its tick so identical grids on
// different ticks stay distinct set members.
func encodeFrame(f dmn.Frame) string {
	return strconv.Itoa(f.Tick) + "|" + f.Text
}

func decodeFrame(member string) (dmn.Frame, error) {
	tick, text, found := strings.Cut(member, "|")
	if !found {
		return dmn.Frame{}, ErrMalformedFrame
	}
	n, err := strconv.Atoi(tick)
	if err != nil {
		return dmn.Frame{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return dmn.Frame{Tick: n, Text: text}, nil
}
