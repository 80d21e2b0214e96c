package eval

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeatWritesLivenessKeyWithTTL(t *testing.T) {
	o, mr := newTestOrchestrator(t, quietQuerier())

	o.beat(context.Background())

	key := WorkerStatusKey(o.instanceID)
	raw, err := mr.Get(key)
	require.NoError(t, err)

	var ws WorkerStatus
	require.NoError(t, json.Unmarshal([]byte(raw), &ws))
	assert.Equal(t, o.instanceID, ws.WorkerID)
	assert.Equal(t, "active", ws.Status)
	assert.WithinDuration(t, time.Now(), ws.LastHeartbeat, time.Minute)

	assert.Greater(t, mr.TTL(key), time.Duration(0))
}

func TestListLiveWorkers(t *testing.T) {
	o, mr := newTestOrchestrator(t, quietQuerier())
	ctx := context.Background()

	o.beat(ctx)

	other := WorkerStatus{WorkerID: "hallucination-pool-3", Status: "active", LastHeartbeat: time.Now().UTC()}
	payload, err := json.Marshal(other)
	require.NoError(t, err)
	mr.Set(WorkerStatusKey(other.WorkerID), string(payload))
	mr.Set(WorkerStatusKey("broken"), "not json")

	workers, err := ListLiveWorkers(ctx, o.broker)
	require.NoError(t, err)
	require.Len(t, workers, 2, "the unparsable payload is skipped")

	ids := []string{workers[0].WorkerID, workers[1].WorkerID}
	assert.Contains(t, ids, o.instanceID)
	assert.Contains(t, ids, other.WorkerID)
}

func TestCountInFlightTasks(t *testing.T) {
	o, mr := newTestOrchestrator(t, quietQuerier())
	ctx := context.Background()

	n, err := CountInFlightTasks(ctx, o.broker)
	require.NoError(t, err)
	assert.Zero(t, n)

	mr.HSet(PartialResultsKey("task-a"), "accuracy", "{}")
	mr.HSet(PartialResultsKey("task-b"), "coherence", "{}")
	mr.Set("batch:x:progress", "{}")

	n, err = CountInFlightTasks(ctx, o.broker)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "only partial-results hashes count")
}

func TestListLiveWorkersExcludesExpired(t *testing.T) {
	o, mr := newTestOrchestrator(t, quietQuerier())
	ctx := context.Background()

	o.beat(ctx)
	mr.FastForward(o.config.HeartbeatTTL + time.Second)

	workers, err := ListLiveWorkers(ctx, o.broker)
	require.NoError(t, err)
	assert.Empty(t, workers)
}
