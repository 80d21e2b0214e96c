package eval

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
)

func TestSweeperFailsExpiredTask(t *testing.T) {
	recordID := uuid.New()
	batchID := uuid.New()
	taskID := uuid.New().String()

	var statusUpdates []evalsqlc.UpdateRecordStatusParams
	q := quietQuerier()
	q.GetRecordByIDFunc = func(ctx context.Context, id uuid.UUID) (evalsqlc.Record, error) {
		return evalsqlc.Record{ID: id, Batch: batchID, Status: evalsqlc.StatusEnumProcessing}, nil
	}
	q.UpdateRecordStatusFunc = func(ctx context.Context, arg evalsqlc.UpdateRecordStatusParams) error {
		statusUpdates = append(statusUpdates, arg)
		return nil
	}

	o, _ := newTestOrchestrator(t, q)
	ctx := context.Background()

	started := time.Now().Add(-o.config.TaskTimeout - time.Minute)
	o.inflight.Add(taskID, inFlightEntry{RecordID: recordID, BatchID: batchID, StartedAt: started})
	_, err := o.storePartialResult(ctx, &ResultMessage{
		TaskID:    taskID,
		Dimension: string(DimensionAccuracy),
		Score:     0.9,
	})
	require.NoError(t, err)

	o.sweepOnce(ctx, time.Now())

	require.Len(t, statusUpdates, 1)
	assert.Equal(t, recordID, statusUpdates[0].ID)
	assert.Equal(t, evalsqlc.StatusEnumFailed, statusUpdates[0].Status)
	assert.True(t, statusUpdates[0].Doneat.Valid)

	_, ok := o.inflight.Get(taskID)
	assert.False(t, ok)
	n, err := o.broker.HashLen(ctx, PartialResultsKey(taskID))
	require.NoError(t, err)
	assert.Zero(t, n, "partial results of a timed-out task must be discarded")
}

func TestSweeperLeavesFreshTasksAlone(t *testing.T) {
	q := quietQuerier()
	o, _ := newTestOrchestrator(t, q)

	taskID := uuid.New().String()
	o.inflight.Add(taskID, inFlightEntry{RecordID: uuid.New(), StartedAt: time.Now()})

	o.sweepOnce(context.Background(), time.Now())

	_, ok := o.inflight.Get(taskID)
	assert.True(t, ok)
}

func TestSweeperYieldsToConcurrentFinalisation(t *testing.T) {
	recordID := uuid.New()
	taskID := uuid.New().String()

	statusUpdateCalls := 0
	q := quietQuerier()
	q.GetRecordByIDFunc = func(ctx context.Context, id uuid.UUID) (evalsqlc.Record, error) {
		// The collector finalised the record before the sweeper got to it.
		return evalsqlc.Record{ID: id, Status: evalsqlc.StatusEnumCompleted}, nil
	}
	q.UpdateRecordStatusFunc = func(ctx context.Context, arg evalsqlc.UpdateRecordStatusParams) error {
		statusUpdateCalls++
		return nil
	}

	o, _ := newTestOrchestrator(t, q)
	o.inflight.Add(taskID, inFlightEntry{
		RecordID:  recordID,
		StartedAt: time.Now().Add(-o.config.TaskTimeout - time.Minute),
	})

	o.sweepOnce(context.Background(), time.Now())

	assert.Zero(t, statusUpdateCalls, "a finalised record must not be overwritten")
	_, ok := o.inflight.Get(taskID)
	assert.False(t, ok, "the stale entry must still be dropped")
}

func TestInFlightExpired(t *testing.T) {
	table := newInFlightTable()
	now := time.Now()

	table.Add("old", inFlightEntry{StartedAt: now.Add(-10 * time.Minute)})
	table.Add("fresh", inFlightEntry{StartedAt: now})

	expired := table.Expired(now, 5*time.Minute)
	require.Len(t, expired, 1)
	_, ok := expired["old"]
	assert.True(t, ok)
}
