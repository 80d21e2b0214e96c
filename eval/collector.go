package eval

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
)

// collectOnce is one iteration of the collector loop: pop a result from the
// shared results queue, fold it into the task's partial-results hash, and
// finalise the task once all dimensions have reported. Returns false when
// the queue was empty.
func (o *Orchestrator) collectOnce(ctx context.Context) bool {
	raw, ok, err := o.broker.PopHeadWait(ctx, ResultsQueue, o.config.ResultsPopTimeout)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		o.logger.Error(err).LogActivity("Failed to pop results queue", map[string]any{
			"queue": ResultsQueue,
		})
		return false
	}
	if !ok {
		return false
	}

	var res ResultMessage
	if err := json.Unmarshal([]byte(raw), &res); err != nil || res.TaskID == "" {
		o.logger.Error(err).LogActivity("Dropping malformed result message", map[string]any{
			"queue":   ResultsQueue,
			"payload": raw,
		})
		return true
	}
	if !isKnownDimension(res.Dimension) {
		o.logger.Warn().LogActivity("Dropping result for unknown dimension", map[string]any{
			"taskId":    res.TaskID,
			"dimension": res.Dimension,
		})
		return true
	}

	o.recordWithLabels(mtrResultsCollected, 1, res.Dimension)

	count, err := o.storePartialResult(ctx, &res)
	if err != nil {
		// Return the result to the queue; losing it would leave the task
		// waiting for the sweeper.
		o.logger.Error(err).LogActivity("Could not store partial result, returning to queue", map[string]any{
			"taskId":    res.TaskID,
			"dimension": res.Dimension,
		})
		if pushErr := o.broker.Append(ctx, ResultsQueue, []byte(raw)); pushErr != nil {
			o.logger.Error(pushErr).LogActivity("Could not return result to queue", map[string]any{
				"taskId": res.TaskID,
			})
		}
		return true
	}

	if count >= int64(len(AllDimensions)) {
		o.finalizeTask(ctx, res.TaskID)
	}
	return true
}

func isKnownDimension(name string) bool {
	for _, d := range AllDimensions {
		if string(d) == name {
			return true
		}
	}
	return false
}

// storePartialResult writes one dimension's result into the task's hash,
// refreshes the hash TTL and returns the number of dimensions recorded so
// far. Writing the same dimension twice overwrites, so duplicate deliveries
// do not inflate the count.
func (o *Orchestrator) storePartialResult(ctx context.Context, res *ResultMessage) (int64, error) {
	key := PartialResultsKey(res.TaskID)
	payload, err := json.Marshal(res)
	if err != nil {
		return 0, err
	}
	if err := o.broker.HashSet(ctx, key, res.Dimension, payload); err != nil {
		return 0, QueueError{Op: "hset", Queue: key, Err: err}
	}
	if err := o.broker.Expire(ctx, key, o.config.PartialResultsTTL); err != nil {
		return 0, QueueError{Op: "expire", Queue: key, Err: err}
	}
	count, err := o.broker.HashLen(ctx, key)
	if err != nil {
		return 0, QueueError{Op: "hlen", Queue: key, Err: err}
	}
	return count, nil
}

// maybeFinalize finalises the task if its hash is already complete. Used
// after fan-out writes synthetic errors, which bypass the results queue.
func (o *Orchestrator) maybeFinalize(ctx context.Context, taskID string) {
	count, err := o.broker.HashLen(ctx, PartialResultsKey(taskID))
	if err != nil {
		o.logger.Error(err).LogActivity("Could not check partial results", map[string]any{
			"taskId": taskID,
		})
		return
	}
	if count >= int64(len(AllDimensions)) {
		o.finalizeTask(ctx, taskID)
	}
}

// finalizeTask turns a complete partial-results hash into exactly one
// Evaluation row (or a failed record when every dimension errored), then
// cleans up the hash and the in-flight entry. Finalisation is idempotent:
// the UNIQUE constraint on evaluations.record absorbs a second attempt for
// the same record, so crash-and-redeliver cannot double count.
func (o *Orchestrator) finalizeTask(ctx context.Context, taskID string) {
	started := time.Now()
	key := PartialResultsKey(taskID)

	fields, err := o.broker.HashGetAll(ctx, key)
	if err != nil {
		o.logger.Error(err).LogActivity("Could not read partial results", map[string]any{
			"taskId": taskID,
		})
		return
	}

	results := make(map[Dimension]ResultMessage, len(fields))
	for field, raw := range fields {
		var res ResultMessage
		if err := jsonUnmarshal(raw, &res); err != nil {
			o.logger.Error(err).LogActivity("Corrupt partial result, treating dimension as errored", map[string]any{
				"taskId":    taskID,
				"dimension": field,
			})
			res = ResultMessage{TaskID: taskID, Dimension: field, Error: "corrupt result payload"}
		}
		results[Dimension(field)] = res
	}

	entry, tracked := o.inflight.Get(taskID)
	recordID, batchID := entry.RecordID, entry.BatchID
	agentID := ""
	for _, res := range results {
		if agentID == "" {
			agentID = res.AgentID
		}
		if recordID == uuid.Nil {
			recordID = parseUUID(res.ResponseID)
		}
		if batchID == uuid.Nil {
			batchID = parseUUID(res.BatchID)
		}
	}
	if recordID == uuid.Nil {
		o.logger.Error(ErrUnknownTask).LogActivity("Discarding results with no record", map[string]any{
			"taskId": taskID,
		})
		o.cleanupTask(ctx, taskID, key)
		return
	}

	final, scores, procErrs := aggregateScores(results, o.config.Weights)
	allErrored := len(procErrs) == len(AllDimensions)

	var newStatus evalsqlc.StatusEnum
	keepHash := false
	if allErrored {
		// Nothing scored; there is no evaluation to write.
		newStatus = evalsqlc.StatusEnumFailed
		o.record(mtrTasksFailed, 1)
	} else {
		newStatus = evalsqlc.StatusEnumCompleted
		procMs := processingTimeMs(entry, tracked, results)
		if err := o.insertEvaluation(ctx, taskID, recordID, batchID, agentID, final, scores, procErrs, procMs); err != nil {
			// The record fails rather than waiting on an indefinite retry.
			// The hash stays until its TTL so the partial scores can still
			// be inspected.
			o.logger.Error(err).LogActivity("Could not write evaluation, failing record", map[string]any{
				"taskId":   taskID,
				"recordId": recordID.String(),
			})
			newStatus = evalsqlc.StatusEnumFailed
			keepHash = true
			o.record(mtrTasksFailed, 1)
		}
	}

	if err := o.queries.UpdateRecordStatus(ctx, evalsqlc.UpdateRecordStatusParams{
		ID:     recordID,
		Status: newStatus,
		Doneat: pgtype.Timestamp{Time: time.Now().UTC(), Valid: true},
	}); err != nil {
		o.logger.Error(err).LogActivity("Could not update record status", map[string]any{
			"taskId":   taskID,
			"recordId": recordID.String(),
			"status":   string(newStatus),
		})
		return
	}

	o.logger.LogDataChange("Record finalised", logharbour.ChangeInfo{
		Entity: "Record",
		Op:     "Finalize",
		Changes: []logharbour.ChangeDetail{
			{Field: "status", OldVal: evalsqlc.StatusEnumProcessing, NewVal: newStatus},
		},
	})

	if keepHash {
		o.inflight.Remove(taskID)
		o.record(mtrInFlight, float64(o.inflight.Len()))
	} else {
		o.cleanupTask(ctx, taskID, key)
		o.record(mtrFinalized, 1)
		o.record(mtrFinalizeSeconds, time.Since(started).Seconds())
	}

	if batchID != uuid.Nil {
		o.refreshBatchProgress(ctx, batchID)
		o.maybeCompleteBatch(ctx, batchID)
	}
}

func (o *Orchestrator) insertEvaluation(ctx context.Context, taskID string, recordID, batchID uuid.UUID, agentID string, final float64, scores map[string]dimensionScore, procErrs map[string]string, procMs int32) error {
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	var errsJSON []byte
	if len(procErrs) > 0 {
		if errsJSON, err = json.Marshal(procErrs); err != nil {
			return err
		}
	}

	err = o.queries.InsertEvaluation(ctx, evalsqlc.InsertEvaluationParams{
		ID:               uuid.New(),
		Record:           recordID,
		Batch:            batchID,
		AgentID:          agentID,
		Scores:           scoresJSON,
		FinalScore:       final,
		ProcessingErrors: errsJSON,
		ProcessingTimeMs: procMs,
		ProcessedAt:      pgtype.Timestamp{Time: time.Now().UTC(), Valid: true},
	})
	if isUniqueViolation(err) {
		// Already finalised, most likely by a previous attempt that died
		// between insert and cleanup. Fall through to cleanup.
		o.logger.Debug0().LogActivity("Evaluation already exists, skipping insert", map[string]any{
			"taskId":   taskID,
			"recordId": recordID.String(),
		})
		return nil
	}
	if err != nil {
		return StoreError{Op: "InsertEvaluation", Err: err}
	}
	return nil
}

// processingTimeMs measures from dispatch when the in-flight entry is known.
// After a restart the dispatch time is lost; the slowest worker's own
// measurement is the best remaining estimate, since the dimensions run in
// parallel.
func processingTimeMs(entry inFlightEntry, tracked bool, results map[Dimension]ResultMessage) int32 {
	if tracked && !entry.StartedAt.IsZero() {
		return int32(time.Since(entry.StartedAt).Milliseconds())
	}
	var max int64
	for _, res := range results {
		if res.ProcessingTimeMs > max {
			max = res.ProcessingTimeMs
		}
	}
	return int32(max)
}

func (o *Orchestrator) cleanupTask(ctx context.Context, taskID, key string) {
	if err := o.broker.Del(ctx, key); err != nil {
		// The TTL will reap it; a stale hash only costs memory.
		o.logger.Warn().LogActivity("Could not delete partial results", map[string]any{
			"taskId": taskID,
		})
	}
	o.inflight.Remove(taskID)
	o.record(mtrInFlight, float64(o.inflight.Len()))
}
