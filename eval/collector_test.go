package eval

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
)

func pushResult(t *testing.T, o *Orchestrator, res ResultMessage) {
	t.Helper()
	payload, err := json.Marshal(res)
	require.NoError(t, err)
	require.NoError(t, o.broker.Append(context.Background(), ResultsQueue, payload))
}

func resultFor(taskID string, recordID, batchID uuid.UUID, d Dimension, score float64) ResultMessage {
	return ResultMessage{
		TaskID:           taskID,
		Dimension:        string(d),
		ResponseID:       recordID.String(),
		BatchID:          batchID.String(),
		AgentID:          "agent-7",
		Score:            score,
		ProcessingTimeMs: 120,
		WorkerID:         "worker-1",
	}
}

func TestCollectorStoresPartialResult(t *testing.T) {
	o, mr := newTestOrchestrator(t, quietQuerier())
	o.config.ResultsPopTimeout = 50 * time.Millisecond

	taskID := uuid.New().String()
	pushResult(t, o, resultFor(taskID, uuid.New(), uuid.New(), DimensionCoherence, 0.7))

	assert.True(t, o.collectOnce(context.Background()))

	key := PartialResultsKey(taskID)
	n, err := o.broker.HashLen(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Greater(t, mr.TTL(key), time.Duration(0))
}

func TestCollectorDuplicateResultDoesNotInflateCount(t *testing.T) {
	o, _ := newTestOrchestrator(t, quietQuerier())
	o.config.ResultsPopTimeout = 50 * time.Millisecond

	taskID := uuid.New().String()
	res := resultFor(taskID, uuid.New(), uuid.New(), DimensionAccuracy, 0.9)
	pushResult(t, o, res)
	pushResult(t, o, res)

	assert.True(t, o.collectOnce(context.Background()))
	assert.True(t, o.collectOnce(context.Background()))

	n, err := o.broker.HashLen(context.Background(), PartialResultsKey(taskID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCollectorDropsUnknownDimension(t *testing.T) {
	o, _ := newTestOrchestrator(t, quietQuerier())
	o.config.ResultsPopTimeout = 50 * time.Millisecond

	taskID := uuid.New().String()
	res := resultFor(taskID, uuid.New(), uuid.New(), Dimension("sarcasm"), 0.9)
	pushResult(t, o, res)

	assert.True(t, o.collectOnce(context.Background()))

	n, err := o.broker.HashLen(context.Background(), PartialResultsKey(taskID))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCollectorFinalizesCompleteTask(t *testing.T) {
	recordID := uuid.New()
	batchID := uuid.New()
	taskID := uuid.New().String()

	var inserted []evalsqlc.InsertEvaluationParams
	var statusUpdates []evalsqlc.UpdateRecordStatusParams
	q := quietQuerier()
	q.InsertEvaluationFunc = func(ctx context.Context, arg evalsqlc.InsertEvaluationParams) error {
		inserted = append(inserted, arg)
		return nil
	}
	q.UpdateRecordStatusFunc = func(ctx context.Context, arg evalsqlc.UpdateRecordStatusParams) error {
		statusUpdates = append(statusUpdates, arg)
		return nil
	}

	o, _ := newTestOrchestrator(t, q)
	o.config.ResultsPopTimeout = 50 * time.Millisecond
	o.inflight.Add(taskID, inFlightEntry{RecordID: recordID, BatchID: batchID, StartedAt: time.Now().Add(-2 * time.Second)})

	scores := map[Dimension]float64{
		DimensionInstruction:   0.90,
		DimensionHallucination: 0.80,
		DimensionAssumption:    0.85,
		DimensionCoherence:     0.75,
		DimensionAccuracy:      0.80,
	}
	for d, s := range scores {
		pushResult(t, o, resultFor(taskID, recordID, batchID, d, s))
	}
	for range scores {
		assert.True(t, o.collectOnce(context.Background()))
	}

	require.Len(t, inserted, 1)
	assert.Equal(t, recordID, inserted[0].Record)
	assert.Equal(t, batchID, inserted[0].Batch)
	assert.Equal(t, "agent-7", inserted[0].AgentID)
	assert.InDelta(t, 0.8225, inserted[0].FinalScore, 1e-9)
	assert.Empty(t, inserted[0].ProcessingErrors)
	assert.GreaterOrEqual(t, inserted[0].ProcessingTimeMs, int32(2000))

	var storedScores map[string]dimensionScore
	require.NoError(t, json.Unmarshal(inserted[0].Scores, &storedScores))
	assert.Len(t, storedScores, 5)
	assert.InDelta(t, 0.75, storedScores[string(DimensionCoherence)].Score, 1e-9)

	require.Len(t, statusUpdates, 1)
	assert.Equal(t, evalsqlc.StatusEnumCompleted, statusUpdates[0].Status)
	assert.True(t, statusUpdates[0].Doneat.Valid)

	// Hash and in-flight entry are gone.
	n, err := o.broker.HashLen(context.Background(), PartialResultsKey(taskID))
	require.NoError(t, err)
	assert.Zero(t, n)
	_, ok := o.inflight.Get(taskID)
	assert.False(t, ok)
}

func TestFinalizeAllErroredMarksRecordFailed(t *testing.T) {
	recordID := uuid.New()
	batchID := uuid.New()
	taskID := uuid.New().String()

	insertCalls := 0
	var statusUpdates []evalsqlc.UpdateRecordStatusParams
	q := quietQuerier()
	q.InsertEvaluationFunc = func(ctx context.Context, arg evalsqlc.InsertEvaluationParams) error {
		insertCalls++
		return nil
	}
	q.UpdateRecordStatusFunc = func(ctx context.Context, arg evalsqlc.UpdateRecordStatusParams) error {
		statusUpdates = append(statusUpdates, arg)
		return nil
	}

	o, _ := newTestOrchestrator(t, q)
	o.config.ResultsPopTimeout = 50 * time.Millisecond
	o.inflight.Add(taskID, inFlightEntry{RecordID: recordID, BatchID: batchID, StartedAt: time.Now()})

	for _, d := range AllDimensions {
		res := resultFor(taskID, recordID, batchID, d, 0)
		res.Error = "model unavailable"
		pushResult(t, o, res)
	}
	for range AllDimensions {
		assert.True(t, o.collectOnce(context.Background()))
	}

	assert.Zero(t, insertCalls, "no evaluation may be written when every dimension errored")
	require.Len(t, statusUpdates, 1)
	assert.Equal(t, evalsqlc.StatusEnumFailed, statusUpdates[0].Status)
}

func TestFinalizeStoreErrorFailsRecordAndKeepsHash(t *testing.T) {
	recordID := uuid.New()
	batchID := uuid.New()
	taskID := uuid.New().String()

	var statusUpdates []evalsqlc.UpdateRecordStatusParams
	q := quietQuerier()
	q.InsertEvaluationFunc = func(ctx context.Context, arg evalsqlc.InsertEvaluationParams) error {
		return fmt.Errorf("connection refused")
	}
	q.UpdateRecordStatusFunc = func(ctx context.Context, arg evalsqlc.UpdateRecordStatusParams) error {
		statusUpdates = append(statusUpdates, arg)
		return nil
	}

	o, _ := newTestOrchestrator(t, q)
	o.config.ResultsPopTimeout = 50 * time.Millisecond
	o.inflight.Add(taskID, inFlightEntry{RecordID: recordID, BatchID: batchID, StartedAt: time.Now()})

	for _, d := range AllDimensions {
		pushResult(t, o, resultFor(taskID, recordID, batchID, d, 0.7))
	}
	for range AllDimensions {
		assert.True(t, o.collectOnce(context.Background()))
	}

	require.Len(t, statusUpdates, 1)
	assert.Equal(t, evalsqlc.StatusEnumFailed, statusUpdates[0].Status)

	// The hash outlives the failure for diagnostics; only the in-flight
	// entry is dropped.
	n, err := o.broker.HashLen(context.Background(), PartialResultsKey(taskID))
	require.NoError(t, err)
	assert.Equal(t, int64(len(AllDimensions)), n)
	_, ok := o.inflight.Get(taskID)
	assert.False(t, ok)
}

func TestFinalizeIdempotentOnDuplicateEvaluation(t *testing.T) {
	recordID := uuid.New()
	batchID := uuid.New()
	taskID := uuid.New().String()

	var statusUpdates []evalsqlc.UpdateRecordStatusParams
	q := quietQuerier()
	q.InsertEvaluationFunc = func(ctx context.Context, arg evalsqlc.InsertEvaluationParams) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "evaluations_record_key"}
	}
	q.UpdateRecordStatusFunc = func(ctx context.Context, arg evalsqlc.UpdateRecordStatusParams) error {
		statusUpdates = append(statusUpdates, arg)
		return nil
	}

	o, _ := newTestOrchestrator(t, q)
	o.inflight.Add(taskID, inFlightEntry{RecordID: recordID, BatchID: batchID, StartedAt: time.Now()})

	ctx := context.Background()
	for _, d := range AllDimensions {
		_, err := o.storePartialResult(ctx, &ResultMessage{
			TaskID:     taskID,
			Dimension:  string(d),
			ResponseID: recordID.String(),
			BatchID:    batchID.String(),
			Score:      0.5,
		})
		require.NoError(t, err)
	}

	o.finalizeTask(ctx, taskID)

	// The duplicate insert is absorbed; cleanup still runs.
	require.Len(t, statusUpdates, 1)
	assert.Equal(t, evalsqlc.StatusEnumCompleted, statusUpdates[0].Status)
	n, err := o.broker.HashLen(ctx, PartialResultsKey(taskID))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessingTimeFallsBackToSlowestWorker(t *testing.T) {
	results := map[Dimension]ResultMessage{
		DimensionAccuracy:  {ProcessingTimeMs: 40},
		DimensionCoherence: {ProcessingTimeMs: 95},
	}

	// Entry lost across a restart: the slowest worker's measurement stands in.
	assert.Equal(t, int32(95), processingTimeMs(inFlightEntry{}, false, results))

	// A tracked entry measures wall time from dispatch instead.
	entry := inFlightEntry{StartedAt: time.Now().Add(-2 * time.Second)}
	assert.GreaterOrEqual(t, processingTimeMs(entry, true, results), int32(2000))
}
