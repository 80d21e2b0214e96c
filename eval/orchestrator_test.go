package eval

import (
	"context"
	"encoding/json"
	"log"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc/mocks"
	"github.com/agentic-eval/evalcore/queue"
)

// newTestOrchestrator wires an orchestrator against a miniredis broker and
// the given querier mock, without starting the loops.
func newTestOrchestrator(t *testing.T, q evalsqlc.Querier) (*Orchestrator, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	lctx := logharbour.NewLoggerContext(logharbour.DefaultPriority)
	lh := logharbour.NewLogger(lctx, "test", log.Writer())

	o := &Orchestrator{
		queries:    q,
		broker:     queue.NewBroker(client),
		logger:     lh,
		config:     Config{}.withDefaults(),
		inflight:   newInFlightTable(),
		instanceID: generateInstanceID(),
	}
	return o, mr
}

// quietQuerier returns a mock whose progress-projection methods succeed with
// empty data, so tests that only care about the main flow don't have to stub
// them one by one.
func quietQuerier() *mocks.QuerierMock {
	return &mocks.QuerierMock{
		// Processing stays non-zero so no test trips batch completion
		// unless it stubs the progress row itself.
		GetBatchProgressFunc: func(ctx context.Context, batch uuid.UUID) (evalsqlc.GetBatchProgressRow, error) {
			return evalsqlc.GetBatchProgressRow{Total: 2, Processing: 1, Completed: 1}, nil
		},
		GetBatchByIDFunc: func(ctx context.Context, id uuid.UUID) (evalsqlc.Batch, error) {
			return evalsqlc.Batch{ID: id, Status: evalsqlc.BatchStatusEnumProcessing}, nil
		},
	}
}

func TestNewOrchestratorPanicsWithoutLogger(t *testing.T) {
	assert.Panics(t, func() {
		NewOrchestrator(nil, nil, nil, nil, nil)
	})
}

func TestStartRequiresCollaborators(t *testing.T) {
	lctx := logharbour.NewLoggerContext(logharbour.DefaultPriority)
	lh := logharbour.NewLogger(lctx, "test", log.Writer())

	o := NewOrchestrator(nil, nil, nil, lh, nil)
	err := o.Start(context.Background())
	require.Error(t, err)
}

func TestStartAndShutdown(t *testing.T) {
	o, _ := newTestOrchestrator(t, quietQuerier())

	require.NoError(t, o.Start(context.Background()))
	require.NoError(t, o.Shutdown())
}

func TestInstanceIDFormat(t *testing.T) {
	o, _ := newTestOrchestrator(t, quietQuerier())
	assert.Regexp(t, `^[^-]+-\d+-\d+$`, o.InstanceID())
}

func TestRebuildInFlightFromPartialResults(t *testing.T) {
	o, mr := newTestOrchestrator(t, quietQuerier())
	ctx := context.Background()

	recordID := uuid.New()
	batchID := uuid.New()
	res := ResultMessage{
		TaskID:     "task-1",
		Dimension:  string(DimensionAccuracy),
		ResponseID: recordID.String(),
		BatchID:    batchID.String(),
		Score:      0.9,
	}
	payload, err := json.Marshal(res)
	require.NoError(t, err)
	mr.HSet(PartialResultsKey("task-1"), string(DimensionAccuracy), string(payload))

	require.NoError(t, o.rebuildInFlight(ctx))

	entry, ok := o.inflight.Get("task-1")
	require.True(t, ok)
	assert.Equal(t, recordID, entry.RecordID)
	assert.Equal(t, batchID, entry.BatchID)
	assert.WithinDuration(t, time.Now(), entry.StartedAt, time.Minute)
}

func TestRebuildInFlightIgnoresForeignKeys(t *testing.T) {
	o, mr := newTestOrchestrator(t, quietQuerier())

	mr.Set("batch:abc:progress", "{}")
	mr.Set("worker:w1:status", "{}")

	require.NoError(t, o.rebuildInFlight(context.Background()))
	assert.Equal(t, 0, o.inflight.Len())
}
