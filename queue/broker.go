// Package queue wraps the Redis primitives the evaluation pipeline is built
// on: FIFO lists for task and result queues, hashes with TTL for per-task
// partial results, and plain keys with TTL for progress snapshots and worker
// liveness. The broker interface is deliberately non-blocking; blocking pops
// are simulated by polling so the same contract holds on any list-capable
// backend.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// pollInterval is the cadence of the simulated blocking pop.
const pollInterval = 100 * time.Millisecond

type Broker struct {
	client *redis.Client
}

// NewBroker wraps an existing Redis client. The caller owns the client's
// lifecycle.
func NewBroker(client *redis.Client) *Broker {
	return &Broker{client: client}
}

// Connect creates a Redis client, verifies the connection and returns a
// broker over it.
func Connect(addr, password string, db int) (*Broker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Broker{client: client}, nil
}

func (b *Broker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *Broker) Close() error {
	return b.client.Close()
}

// Append pushes a payload onto the tail of the named queue.
func (b *Broker) Append(ctx context.Context, queue string, payload []byte) error {
	return b.client.RPush(ctx, queue, payload).Err()
}

// PopHead pops the head of the named queue without blocking. The second
// return value is false when the queue is empty.
func (b *Broker) PopHead(ctx context.Context, queue string) (string, bool, error) {
	val, err := b.client.LPop(ctx, queue).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// PopHeadWait polls PopHead until a payload arrives, the timeout elapses, or
// the context is cancelled. Timeout expiry is not an error; it returns
// ("", false, nil) like an empty non-blocking pop.
func (b *Broker) PopHeadWait(ctx context.Context, queue string, timeout time.Duration) (string, bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		val, ok, err := b.PopHead(ctx, queue)
		if err != nil || ok {
			return val, ok, err
		}
		if time.Now().After(deadline) {
			return "", false, nil
		}
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

func (b *Broker) Length(ctx context.Context, queue string) (int64, error) {
	return b.client.LLen(ctx, queue).Result()
}

func (b *Broker) Clear(ctx context.Context, queue string) error {
	return b.client.Del(ctx, queue).Err()
}

// HashSet writes one field of the named hash.
func (b *Broker) HashSet(ctx context.Context, key, field string, value []byte) error {
	return b.client.HSet(ctx, key, field, value).Err()
}

func (b *Broker) HashLen(ctx context.Context, key string) (int64, error) {
	return b.client.HLen(ctx, key).Result()
}

func (b *Broker) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	return b.client.HGetAll(ctx, key).Result()
}

func (b *Broker) Del(ctx context.Context, key string) error {
	return b.client.Del(ctx, key).Err()
}

func (b *Broker) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return b.client.Expire(ctx, key, ttl).Err()
}

// SetEx sets a key with a TTL.
func (b *Broker) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return b.client.Set(ctx, key, value, ttl).Err()
}

// Get returns the value of a key, or "" when the key does not exist.
func (b *Broker) Get(ctx context.Context, key string) (string, error) {
	val, err := b.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

// MGet fetches many keys at once; missing keys yield nil entries.
func (b *Broker) MGet(ctx context.Context, keys ...string) ([]interface{}, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	return b.client.MGet(ctx, keys...).Result()
}

// ScanKeys returns all keys matching the pattern using cursor-based SCAN.
func (b *Broker) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := b.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
