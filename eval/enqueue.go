package eval

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
)

// RecordInput is one agent response submitted for evaluation.
type RecordInput struct {
	AgentID      string          `validate:"required"`
	Prompt       string          `validate:"required"`
	ResponseText string          `validate:"required"`
	Context      string
	Reference    string
	Metadata     json.RawMessage
}

// taskPushAttempts bounds the per-record push retries during submission.
const taskPushAttempts = 3

// EnqueueBatch registers a batch of records and injects one task per record
// into the main queue. Each push is retried a bounded number of times; if any
// record still cannot be queued, that record and the batch are marked failed
// so the submission is never left half-alive.
func (o *Orchestrator) EnqueueBatch(ctx context.Context, records []RecordInput) (uuid.UUID, error) {
	if len(records) == 0 {
		return uuid.Nil, fmt.Errorf("batch must contain at least one record")
	}
	validate := validator.New()
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return uuid.Nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	batchID := uuid.New()
	now := pgtype.Timestamp{Time: time.Now().UTC(), Valid: true}

	_, err := o.queries.InsertIntoBatches(ctx, evalsqlc.InsertIntoBatchesParams{
		ID:     batchID,
		Status: evalsqlc.BatchStatusEnumProcessing,
		Total:  int32(len(records)),
		Reqat:  now,
	})
	if err != nil {
		return uuid.Nil, StoreError{Op: "InsertIntoBatches", Err: err}
	}

	params := evalsqlc.BulkInsertIntoRecordsParams{
		ID:           make([]uuid.UUID, len(records)),
		Batch:        make([]uuid.UUID, len(records)),
		AgentID:      make([]string, len(records)),
		Prompt:       make([]string, len(records)),
		ResponseText: make([]string, len(records)),
		Context:      make([]string, len(records)),
		Reference:    make([]string, len(records)),
		Metadata:     make([][]byte, len(records)),
		Reqat:        make([]pgtype.Timestamp, len(records)),
	}
	for i, rec := range records {
		params.ID[i] = uuid.New()
		params.Batch[i] = batchID
		params.AgentID[i] = rec.AgentID
		params.Prompt[i] = rec.Prompt
		params.ResponseText[i] = rec.ResponseText
		params.Context[i] = rec.Context
		params.Reference[i] = rec.Reference
		metadata := rec.Metadata
		if metadata == nil {
			metadata = json.RawMessage("{}")
		}
		params.Metadata[i] = metadata
		params.Reqat[i] = now
	}
	if _, err := o.queries.BulkInsertIntoRecords(ctx, params); err != nil {
		return uuid.Nil, StoreError{Op: "BulkInsertIntoRecords", Err: err}
	}

	queued := 0
	pushed := make([]bool, len(records))
	for i, rec := range records {
		if o.pushTask(ctx, params.ID[i], batchID, rec.AgentID, rec.Prompt, rec.ResponseText, rec.Context, rec.Reference, params.Metadata[i], 0) {
			pushed[i] = true
			queued++
		}
	}

	if queued < len(records) {
		for i := range records {
			if pushed[i] {
				continue
			}
			if err := o.queries.UpdateRecordStatus(ctx, evalsqlc.UpdateRecordStatusParams{
				ID:     params.ID[i],
				Status: evalsqlc.StatusEnumFailed,
				Doneat: now,
			}); err != nil {
				o.logger.Error(err).LogActivity("Could not mark unqueued record failed", map[string]any{
					"recordId": params.ID[i].String(),
				})
			}
		}
		if err := o.queries.UpdateBatchStatus(ctx, evalsqlc.UpdateBatchStatusParams{
			ID:     batchID,
			Status: evalsqlc.BatchStatusEnumFailed,
		}); err != nil {
			o.logger.Error(err).LogActivity("Could not mark batch failed", map[string]any{
				"batchId": batchID.String(),
			})
		}
		o.refreshBatchProgress(ctx, batchID)
		return batchID, QueueError{Op: "append", Queue: MainTaskQueue,
			Err: fmt.Errorf("queued %d of %d records", queued, len(records))}
	}

	o.logger.Info().LogActivity("Batch enqueued", map[string]any{
		"batchId": batchID.String(),
		"total":   len(records),
		"queued":  queued,
	})
	o.refreshBatchProgress(ctx, batchID)
	return batchID, nil
}

// pushTask builds a fresh task envelope for one record attempt, pushes it to
// the main queue and flips the record to queued. Reports whether the record
// made it onto the queue.
func (o *Orchestrator) pushTask(ctx context.Context, recordID, batchID uuid.UUID, agentID, prompt, responseText, contextText, reference string, metadata json.RawMessage, retryCount int) bool {
	dims := make([]string, len(AllDimensions))
	for i, d := range AllDimensions {
		dims[i] = string(d)
	}
	task := TaskMessage{
		TaskID:       uuid.New().String(),
		ResponseID:   recordID.String(),
		BatchID:      batchID.String(),
		AgentID:      agentID,
		Prompt:       prompt,
		ResponseText: responseText,
		Context:      contextText,
		Reference:    reference,
		Metadata:     metadata,
		Dimensions:   dims,
		RetryCount:   retryCount,
		CreatedAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(task)
	if err != nil {
		o.logger.Error(err).LogActivity("Could not marshal task", map[string]any{
			"recordId": recordID.String(),
		})
		return false
	}
	var pushErr error
	for attempt := 0; attempt < taskPushAttempts; attempt++ {
		if pushErr = o.broker.Append(ctx, MainTaskQueue, payload); pushErr == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if pushErr != nil {
		o.logger.Error(pushErr).LogActivity("Could not push task", map[string]any{
			"recordId": recordID.String(),
			"batchId":  batchID.String(),
		})
		return false
	}
	err = o.queries.UpdateRecordStatus(ctx, evalsqlc.UpdateRecordStatusParams{
		ID:     recordID,
		Status: evalsqlc.StatusEnumQueued,
	})
	if err != nil {
		// The task is on the queue; the dispatch loop accepts queued OR
		// pending records, so the stale status is harmless.
		o.logger.Warn().LogActivity("Could not mark record queued", map[string]any{
			"recordId": recordID.String(),
		})
	}
	return true
}

// RequeueFailed gives one failed record another attempt: a fresh task with
// an incremented retry count. Returns ErrRetryExhausted once the record has
// used up its retry budget.
func (o *Orchestrator) RequeueFailed(ctx context.Context, recordID uuid.UUID) error {
	rec, err := o.queries.GetRecordByID(ctx, recordID)
	if err != nil {
		return StoreError{Op: "GetRecordByID", Err: err}
	}
	if rec.Status != evalsqlc.StatusEnumFailed {
		return fmt.Errorf("record %s is %s, only failed records can be requeued", recordID, rec.Status)
	}
	if int(rec.RetryCount) >= o.config.MaxRetries {
		return ErrRetryExhausted
	}

	newCount := rec.RetryCount + 1
	err = o.queries.UpdateRecordForRequeue(ctx, evalsqlc.UpdateRecordForRequeueParams{
		ID:         recordID,
		RetryCount: newCount,
	})
	if err != nil {
		return StoreError{Op: "UpdateRecordForRequeue", Err: err}
	}

	if !o.pushTask(ctx, rec.ID, rec.Batch, rec.AgentID, rec.Prompt, rec.ResponseText, rec.Context.String, rec.Reference.String, rec.Metadata, int(newCount)) {
		return QueueError{Op: "append", Queue: MainTaskQueue, Err: fmt.Errorf("could not requeue record %s", recordID)}
	}

	o.logger.LogDataChange("Record requeued", logharbour.ChangeInfo{
		Entity: "Record",
		Op:     "Requeue",
		Changes: []logharbour.ChangeDetail{
			{Field: "retry_count", OldVal: rec.RetryCount, NewVal: newCount},
		},
	})
	o.refreshBatchProgress(ctx, rec.Batch)
	return nil
}

// RetryBatch requeues every failed record of a batch that still has retry
// budget. Returns how many were requeued; exhausted records are skipped, not
// an error.
func (o *Orchestrator) RetryBatch(ctx context.Context, batchID uuid.UUID) (int, error) {
	failed, err := o.queries.GetRecordsByBatchAndStatus(ctx, evalsqlc.GetRecordsByBatchAndStatusParams{
		Batch:  batchID,
		Status: evalsqlc.StatusEnumFailed,
	})
	if err != nil {
		return 0, StoreError{Op: "GetRecordsByBatchAndStatus", Err: err}
	}

	// The batch may have been summarised as failed; it is live again.
	if len(failed) > 0 {
		err = o.queries.UpdateBatchStatus(ctx, evalsqlc.UpdateBatchStatusParams{
			ID:     batchID,
			Status: evalsqlc.BatchStatusEnumProcessing,
		})
		if err != nil {
			return 0, StoreError{Op: "UpdateBatchStatus", Err: err}
		}
	}

	requeued := 0
	for _, rec := range failed {
		switch err := o.RequeueFailed(ctx, rec.ID); err {
		case nil:
			requeued++
		case ErrRetryExhausted:
		default:
			return requeued, err
		}
	}
	return requeued, nil
}

// PauseBatch marks the batch paused. Pause is advisory: tasks already queued
// keep draining and finalising; the status keeps the batch from closing and
// tells upstream not to submit more work.
func (o *Orchestrator) PauseBatch(ctx context.Context, batchID uuid.UUID) error {
	batch, err := o.queries.GetBatchByID(ctx, batchID)
	if err != nil {
		return StoreError{Op: "GetBatchByID", Err: err}
	}
	if batch.Status != evalsqlc.BatchStatusEnumProcessing {
		return fmt.Errorf("batch %s is %s, only processing batches can be paused", batchID, batch.Status)
	}
	err = o.queries.UpdateBatchStatus(ctx, evalsqlc.UpdateBatchStatusParams{
		ID:     batchID,
		Status: evalsqlc.BatchStatusEnumPaused,
	})
	if err != nil {
		return StoreError{Op: "UpdateBatchStatus", Err: err}
	}
	o.refreshBatchProgress(ctx, batchID)
	return nil
}

// ResumeBatch reactivates a paused batch and pushes tasks for records still
// pending. A duplicate push for a record that already has a task is harmless:
// the dispatch loop drops tasks whose record is no longer waiting to run.
func (o *Orchestrator) ResumeBatch(ctx context.Context, batchID uuid.UUID) error {
	batch, err := o.queries.GetBatchByID(ctx, batchID)
	if err != nil {
		return StoreError{Op: "GetBatchByID", Err: err}
	}
	if batch.Status != evalsqlc.BatchStatusEnumPaused {
		return fmt.Errorf("batch %s is %s, only paused batches can be resumed", batchID, batch.Status)
	}
	err = o.queries.UpdateBatchStatus(ctx, evalsqlc.UpdateBatchStatusParams{
		ID:     batchID,
		Status: evalsqlc.BatchStatusEnumProcessing,
	})
	if err != nil {
		return StoreError{Op: "UpdateBatchStatus", Err: err}
	}

	pending, err := o.queries.GetRecordsByBatchAndStatus(ctx, evalsqlc.GetRecordsByBatchAndStatusParams{
		Batch:  batchID,
		Status: evalsqlc.StatusEnumPending,
	})
	if err != nil {
		return StoreError{Op: "GetRecordsByBatchAndStatus", Err: err}
	}
	for _, rec := range pending {
		o.pushTask(ctx, rec.ID, rec.Batch, rec.AgentID, rec.Prompt, rec.ResponseText, rec.Context.String, rec.Reference.String, rec.Metadata, int(rec.RetryCount))
	}

	o.refreshBatchProgress(ctx, batchID)
	o.maybeCompleteBatch(ctx, batchID)
	return nil
}

// CancelBatch cancels every record that has not started processing and
// marks the batch cancelled. Records already in flight run to completion;
// their stale queue tasks are dropped by the dispatch loop when it sees the
// record is no longer pending or queued.
func (o *Orchestrator) CancelBatch(ctx context.Context, batchID uuid.UUID) error {
	batch, err := o.queries.GetBatchByID(ctx, batchID)
	if err != nil {
		return StoreError{Op: "GetBatchByID", Err: err}
	}
	switch batch.Status {
	case evalsqlc.BatchStatusEnumCompleted, evalsqlc.BatchStatusEnumCancelled, evalsqlc.BatchStatusEnumFailed:
		return fmt.Errorf("batch %s is already %s", batchID, batch.Status)
	}

	cancelled, err := o.queries.CancelPendingRecords(ctx, batchID)
	if err != nil {
		return StoreError{Op: "CancelPendingRecords", Err: err}
	}
	err = o.queries.UpdateBatchStatus(ctx, evalsqlc.UpdateBatchStatusParams{
		ID:     batchID,
		Status: evalsqlc.BatchStatusEnumCancelled,
	})
	if err != nil {
		return StoreError{Op: "UpdateBatchStatus", Err: err}
	}

	o.logger.LogDataChange("Batch cancelled", logharbour.ChangeInfo{
		Entity: "Batch",
		Op:     "Cancel",
		Changes: []logharbour.ChangeDetail{
			{Field: "status", OldVal: batch.Status, NewVal: evalsqlc.BatchStatusEnumCancelled},
		},
	})
	o.logger.Info().LogActivity("Batch cancelled", map[string]any{
		"batchId":          batchID.String(),
		"recordsCancelled": cancelled,
	})
	o.refreshBatchProgress(ctx, batchID)
	return nil
}

// GetBatchProgress returns the batch's progress snapshot, serving the Redis
// projection when fresh and falling back to the store on a cache miss.
func (o *Orchestrator) GetBatchProgress(ctx context.Context, batchID uuid.UUID) (BatchProgress, error) {
	raw, err := o.broker.Get(ctx, BatchProgressKey(batchID.String()))
	if err == nil && raw != "" {
		var snapshot BatchProgress
		if err := jsonUnmarshal(raw, &snapshot); err == nil {
			return snapshot, nil
		}
	}

	row, err := o.queries.GetBatchProgress(ctx, batchID)
	if err != nil {
		return BatchProgress{}, StoreError{Op: "GetBatchProgress", Err: err}
	}
	batch, err := o.queries.GetBatchByID(ctx, batchID)
	if err != nil {
		return BatchProgress{}, StoreError{Op: "GetBatchByID", Err: err}
	}
	snapshot := BatchProgress{
		BatchID:    batchID.String(),
		Status:     string(batch.Status),
		Total:      row.Total,
		Pending:    row.Pending,
		Processing: row.Processing,
		Completed:  row.Completed,
		Failed:     row.Failed,
		Cancelled:  row.Cancelled,
		UpdatedAt:  time.Now().UTC(),
	}
	if payload, err := json.Marshal(snapshot); err == nil {
		if err := o.broker.SetEx(ctx, BatchProgressKey(batchID.String()), payload, o.config.BatchProgressTTL); err != nil {
			o.logger.Warn().LogActivity("Could not publish batch progress", map[string]any{
				"batchId": batchID.String(),
				"error":   err.Error(),
			})
		}
	}
	return snapshot, nil
}

// GetEvaluation returns the finalised evaluation for a record.
func (o *Orchestrator) GetEvaluation(ctx context.Context, recordID uuid.UUID) (evalsqlc.Evaluation, error) {
	ev, err := o.queries.GetEvaluationByRecord(ctx, recordID)
	if err != nil {
		return evalsqlc.Evaluation{}, StoreError{Op: "GetEvaluationByRecord", Err: err}
	}
	return ev, nil
}
