package eval

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
)

// dispatchOnce is one iteration of the dispatch loop: pop a task from the
// main queue and fan it out to the five dimension queues. Returns false when
// there was nothing to do, so the loop backs off.
//
// The concurrency cap is checked before popping; a capped orchestrator
// leaves tasks on the main queue where other instances (or a later
// iteration) can claim them.
func (o *Orchestrator) dispatchOnce(ctx context.Context) bool {
	if o.inflight.Len() >= o.config.MaxConcurrentTasks {
		return false
	}

	raw, ok, err := o.broker.PopHeadWait(ctx, MainTaskQueue, o.config.MainPopTimeout)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		o.logger.Error(err).LogActivity("Failed to pop main task queue", map[string]any{
			"queue": MainTaskQueue,
		})
		return false
	}
	if !ok {
		return false
	}

	var task TaskMessage
	if err := json.Unmarshal([]byte(raw), &task); err != nil || task.TaskID == "" {
		// Requeueing a payload that cannot be decoded would loop forever;
		// log it and move on.
		o.logger.Error(err).LogActivity("Dropping malformed task message", map[string]any{
			"queue":   MainTaskQueue,
			"payload": raw,
		})
		o.record(mtrTasksFailed, 1)
		return true
	}

	recordID := parseUUID(task.ResponseID)
	batchID := parseUUID(task.BatchID)

	if recordID != uuid.Nil {
		// A task can outlive its record's eligibility: CancelBatch flips
		// queued records to cancelled but cannot reach into the queue. Drop
		// tasks whose record is no longer waiting to run.
		rec, err := o.queries.GetRecordByID(ctx, recordID)
		if err != nil {
			o.logger.Error(err).LogActivity("Could not load record, returning task to queue", map[string]any{
				"taskId":   task.TaskID,
				"recordId": recordID.String(),
			})
			if pushErr := o.broker.Append(ctx, MainTaskQueue, []byte(raw)); pushErr != nil {
				o.logger.Error(pushErr).LogActivity("Could not return task to main queue", map[string]any{
					"taskId": task.TaskID,
				})
			}
			return false
		}
		if rec.Status != evalsqlc.StatusEnumPending && rec.Status != evalsqlc.StatusEnumQueued {
			o.logger.Debug0().LogActivity("Dropping task for ineligible record", map[string]any{
				"taskId":   task.TaskID,
				"recordId": recordID.String(),
				"status":   string(rec.Status),
			})
			return true
		}

		// The record turns processing before fan-out, so a crash between
		// the two leaves it visible to the requeue path instead of stuck
		// pending.
		err = o.queries.UpdateRecordStatus(ctx, evalsqlc.UpdateRecordStatusParams{
			ID:     recordID,
			Status: evalsqlc.StatusEnumProcessing,
		})
		if err != nil {
			// This attempt is over: the task is discarded and the record
			// marked failed (best effort, the store just misbehaved) so the
			// operator can requeue it.
			o.logger.Error(err).LogActivity("Could not mark record processing, failing this attempt", map[string]any{
				"taskId":   task.TaskID,
				"recordId": recordID.String(),
			})
			if failErr := o.queries.UpdateRecordStatus(ctx, evalsqlc.UpdateRecordStatusParams{
				ID:     recordID,
				Status: evalsqlc.StatusEnumFailed,
				Doneat: pgtype.Timestamp{Time: time.Now().UTC(), Valid: true},
			}); failErr != nil {
				o.logger.Error(failErr).LogActivity("Could not mark record failed", map[string]any{
					"recordId": recordID.String(),
				})
			}
			o.record(mtrTasksFailed, 1)
			if batchID != uuid.Nil {
				o.refreshBatchProgress(ctx, batchID)
			}
			return true
		}
	}

	o.inflight.Add(task.TaskID, inFlightEntry{
		RecordID:  recordID,
		BatchID:   batchID,
		StartedAt: time.Now(),
	})
	o.record(mtrInFlight, float64(o.inflight.Len()))

	failed := o.fanOut(ctx, &task)

	o.logger.Debug0().LogActivity("Dispatched task", map[string]any{
		"taskId":  task.TaskID,
		"batchId": task.BatchID,
		"retry":   task.RetryCount,
	})
	o.record(mtrTasksDispatched, 1)

	if batchID != uuid.Nil {
		o.refreshBatchProgress(ctx, batchID)
	}

	// Synthetic error results written during fan-out may already complete
	// the task; the collector never hears about them, so check here.
	if failed > 0 {
		o.maybeFinalize(ctx, task.TaskID)
	}
	return true
}

// fanOut pushes one subtask per dimension, concurrently. A dimension whose
// enqueue fails gets a synthetic errored result in the partial-results hash
// so the task can still complete; it reports the number of such failures.
func (o *Orchestrator) fanOut(ctx context.Context, task *TaskMessage) int {
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for _, d := range AllDimensions {
		wg.Add(1)
		go func(d Dimension) {
			defer wg.Done()
			sub := SubtaskMessage{TaskMessage: *task, Dimension: string(d)}
			payload, err := json.Marshal(sub)
			if err == nil {
				err = o.broker.Append(ctx, DimensionQueue(d), payload)
			}
			if err == nil {
				return
			}
			o.logger.Error(err).LogActivity("Failed to enqueue subtask", map[string]any{
				"taskId":    task.TaskID,
				"dimension": string(d),
			})
			o.storeSyntheticError(ctx, task, d, fmt.Sprintf("dispatch: %v", err))
			mu.Lock()
			failed++
			mu.Unlock()
		}(d)
	}
	wg.Wait()
	return failed
}

// storeSyntheticError records a dimension as errored without a worker ever
// seeing it. The aggregation step then excludes the dimension the same way
// it excludes worker-reported errors.
func (o *Orchestrator) storeSyntheticError(ctx context.Context, task *TaskMessage, d Dimension, reason string) {
	res := ResultMessage{
		TaskID:     task.TaskID,
		Dimension:  string(d),
		ResponseID: task.ResponseID,
		BatchID:    task.BatchID,
		AgentID:    task.AgentID,
		Error:      reason,
		WorkerID:   "orchestrator-" + o.instanceID,
	}
	if _, err := o.storePartialResult(ctx, &res); err != nil {
		o.logger.Error(err).LogActivity("Could not store synthetic error result", map[string]any{
			"taskId":    task.TaskID,
			"dimension": string(d),
		})
	}
}
