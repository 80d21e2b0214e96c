package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker(t *testing.T) (*Broker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewBroker(client), mr
}

func TestAppendAndPopHeadIsFIFO(t *testing.T) {
	b, _ := newTestBroker(t)
	ctx := context.Background()

	require.NoError(t, b.Append(ctx, "q", []byte("first")))
	require.NoError(t, b.Append(ctx, "q", []byte("second")))

	val, ok, err := b.PopHead(ctx, "q")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", val)

	val, ok, err = b.PopHead(ctx, "q")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", val)
}

func TestClearDropsQueuedPayloads(t *testing.T) {
	b, _ := newTestBroker(t)
	ctx := context.Background()

	require.NoError(t, b.Append(ctx, "q", []byte("one")))
	require.NoError(t, b.Append(ctx, "q", []byte("two")))
	require.NoError(t, b.Clear(ctx, "q"))

	n, err := b.Length(ctx, "q")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPopHeadEmptyQueue(t *testing.T) {
	b, _ := newTestBroker(t)

	_, ok, err := b.PopHead(context.Background(), "empty")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPopHeadWaitTimesOutQuietly(t *testing.T) {
	b, _ := newTestBroker(t)

	start := time.Now()
	_, ok, err := b.PopHeadWait(context.Background(), "empty", 200*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

func TestPopHeadWaitReturnsQueuedValue(t *testing.T) {
	b, _ := newTestBroker(t)
	ctx := context.Background()

	require.NoError(t, b.Append(ctx, "q", []byte("payload")))

	val, ok, err := b.PopHeadWait(ctx, "q", time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "payload", val)
}

func TestPopHeadWaitHonoursContextCancel(t *testing.T) {
	b, _ := newTestBroker(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(150 * time.Millisecond)
		cancel()
	}()

	_, _, err := b.PopHeadWait(ctx, "empty", 10*time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHashOperations(t *testing.T) {
	b, _ := newTestBroker(t)
	ctx := context.Background()

	require.NoError(t, b.HashSet(ctx, "h", "f1", []byte("v1")))
	require.NoError(t, b.HashSet(ctx, "h", "f2", []byte("v2")))
	// Overwriting a field must not grow the hash.
	require.NoError(t, b.HashSet(ctx, "h", "f1", []byte("v1b")))

	n, err := b.HashLen(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	fields, err := b.HashGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"f1": "v1b", "f2": "v2"}, fields)
}

func TestExpireAndGet(t *testing.T) {
	b, mr := newTestBroker(t)
	ctx := context.Background()

	require.NoError(t, b.SetEx(ctx, "k", []byte("v"), time.Minute))
	val, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	mr.FastForward(2 * time.Minute)

	val, err = b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, val, "expired keys read as absent")
}

func TestScanKeys(t *testing.T) {
	b, mr := newTestBroker(t)

	mr.HSet("task:a:results", "f", "v")
	mr.HSet("task:b:results", "f", "v")
	mr.Set("worker:w:status", "{}")

	keys, err := b.ScanKeys(context.Background(), "task:*:results")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"task:a:results", "task:b:results"}, keys)
}

func TestMGetSkipsMissing(t *testing.T) {
	b, mr := newTestBroker(t)
	mr.Set("a", "1")

	vals, err := b.MGet(context.Background(), "a", "missing")
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, "1", vals[0])
	assert.Nil(t, vals[1])
}
