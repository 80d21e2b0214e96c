package eval

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
)

// runSweeper fails tasks that outlived the task timeout. It wakes every
// sweep interval, collects the expired in-flight entries and fails each one:
// record to failed, partial results discarded, no automatic requeue. Retry
// is an explicit caller decision through RequeueFailed.
func (o *Orchestrator) runSweeper(ctx context.Context) {
	defer o.wg.Done()
	ticker := time.NewTicker(o.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.sweepOnce(ctx, time.Now())
		}
	}
}

func (o *Orchestrator) sweepOnce(ctx context.Context, now time.Time) {
	expired := o.inflight.Expired(now, o.config.TaskTimeout)
	for taskID, entry := range expired {
		o.failTimedOutTask(ctx, taskID, entry)
	}
}

func (o *Orchestrator) failTimedOutTask(ctx context.Context, taskID string, entry inFlightEntry) {
	// The collector may have finalised the task between the expiry snapshot
	// and now; the record's status decides who won.
	if entry.RecordID != uuid.Nil {
		rec, err := o.queries.GetRecordByID(ctx, entry.RecordID)
		if err != nil {
			o.logger.Error(err).LogActivity("Could not load record for timed-out task", map[string]any{
				"taskId":   taskID,
				"recordId": entry.RecordID.String(),
			})
			return
		}
		if rec.Status != evalsqlc.StatusEnumProcessing {
			o.inflight.Remove(taskID)
			return
		}

		err = o.queries.UpdateRecordStatus(ctx, evalsqlc.UpdateRecordStatusParams{
			ID:     entry.RecordID,
			Status: evalsqlc.StatusEnumFailed,
			Doneat: pgtype.Timestamp{Time: time.Now().UTC(), Valid: true},
		})
		if err != nil {
			// Keep the entry; the next sweep retries the store write.
			o.logger.Error(err).LogActivity("Could not fail timed-out record", map[string]any{
				"taskId":   taskID,
				"recordId": entry.RecordID.String(),
			})
			return
		}
	}

	o.logger.Warn().LogActivity("Task timed out", map[string]any{
		"taskId":     taskID,
		"recordId":   entry.RecordID.String(),
		"batchId":    entry.BatchID.String(),
		"inflightFor": time.Since(entry.StartedAt).String(),
	})
	o.record(mtrTimedOut, 1)

	o.cleanupTask(ctx, taskID, PartialResultsKey(taskID))

	if entry.BatchID != uuid.Nil {
		o.refreshBatchProgress(ctx, entry.BatchID)
		o.maybeCompleteBatch(ctx, entry.BatchID)
	}
}
