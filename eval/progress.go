package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
)

// refreshBatchProgress recomputes the batch's per-status counts from the
// store and publishes the snapshot under batch:{id}:progress. The store is
// the source of truth; the Redis key is a cache clients can poll without
// hitting Postgres. Failures here only make the snapshot stale.
func (o *Orchestrator) refreshBatchProgress(ctx context.Context, batchID uuid.UUID) {
	row, err := o.queries.GetBatchProgress(ctx, batchID)
	if err != nil {
		o.logger.Error(err).LogActivity("Could not compute batch progress", map[string]any{
			"batchId": batchID.String(),
		})
		return
	}
	batch, err := o.queries.GetBatchByID(ctx, batchID)
	if err != nil {
		o.logger.Error(err).LogActivity("Could not load batch for progress snapshot", map[string]any{
			"batchId": batchID.String(),
		})
		return
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
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := o.broker.SetEx(ctx, BatchProgressKey(batchID.String()), payload, o.config.BatchProgressTTL); err != nil {
		o.logger.Warn().LogActivity("Could not publish batch progress", map[string]any{
			"batchId": batchID.String(),
			"error":   err.Error(),
		})
	}
}

// maybeCompleteBatch closes the batch once no record is pending, queued or
// processing. Every record failed means the batch failed; any completed
// record makes it completed. The summary write also persists the final
// per-status counts and, when an object store is configured, a pointer to
// the uploaded report.
func (o *Orchestrator) maybeCompleteBatch(ctx context.Context, batchID uuid.UUID) {
	row, err := o.queries.GetBatchProgress(ctx, batchID)
	if err != nil {
		o.logger.Error(err).LogActivity("Could not check batch completion", map[string]any{
			"batchId": batchID.String(),
		})
		return
	}
	if row.Pending > 0 || row.Processing > 0 {
		return
	}

	batch, err := o.queries.GetBatchByID(ctx, batchID)
	if err != nil {
		o.logger.Error(err).LogActivity("Could not load batch for completion", map[string]any{
			"batchId": batchID.String(),
		})
		return
	}
	// Only a processing batch can complete. Paused batches wait for resume;
	// terminal batches were already summarised.
	if batch.Status != evalsqlc.BatchStatusEnumProcessing {
		return
	}

	newStatus := evalsqlc.BatchStatusEnumCompleted
	if row.Total > 0 && row.Failed == row.Total {
		newStatus = evalsqlc.BatchStatusEnumFailed
	}

	var outputFiles []byte
	if report, objName, err := o.uploadBatchReport(ctx, batchID, row, newStatus); err != nil {
		o.logger.Warn().LogActivity("Could not upload batch report", map[string]any{
			"batchId": batchID.String(),
			"error":   err.Error(),
		})
	} else if report != nil {
		outputFiles, _ = json.Marshal(map[string]string{"report": objName})
	}

	err = o.queries.UpdateBatchSummary(ctx, evalsqlc.UpdateBatchSummaryParams{
		ID:          batchID,
		Status:      newStatus,
		Npending:    pgtype.Int4{Int32: int32(row.Pending), Valid: true},
		Nprocessing: pgtype.Int4{Int32: int32(row.Processing), Valid: true},
		Ncompleted:  pgtype.Int4{Int32: int32(row.Completed), Valid: true},
		Nfailed:     pgtype.Int4{Int32: int32(row.Failed), Valid: true},
		Ncancelled:  pgtype.Int4{Int32: int32(row.Cancelled), Valid: true},
		Outputfiles: outputFiles,
		Doneat:      pgtype.Timestamp{Time: time.Now().UTC(), Valid: true},
	})
	if err != nil {
		o.logger.Error(err).LogActivity("Could not write batch summary", map[string]any{
			"batchId": batchID.String(),
		})
		return
	}

	o.logger.LogDataChange("Batch closed", logharbour.ChangeInfo{
		Entity: "Batch",
		Op:     "Summary",
		Changes: []logharbour.ChangeDetail{
			{Field: "status", OldVal: batch.Status, NewVal: newStatus},
		},
	})

	o.refreshBatchProgress(ctx, batchID)
}

// batchReport is the JSON document uploaded per completed batch.
type batchReport struct {
	BatchID     string         `json:"batch_id"`
	Status      string         `json:"status"`
	Total       int64          `json:"total"`
	Completed   int64          `json:"completed"`
	Failed      int64          `json:"failed"`
	Cancelled   int64          `json:"cancelled"`
	Evaluations int64          `json:"evaluations"`
	Agents      []agentSummary `json:"agents,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

type agentSummary struct {
	AgentID     string  `json:"agent_id"`
	MeanScore   float64 `json:"mean_final_score"`
	Evaluations int64   `json:"evaluations"`
}

// uploadBatchReport writes the closing report to the object store. Returns
// (nil, "", nil) when no object store is configured.
func (o *Orchestrator) uploadBatchReport(ctx context.Context, batchID uuid.UUID, row evalsqlc.GetBatchProgressRow, status evalsqlc.BatchStatusEnum) (*batchReport, string, error) {
	if o.objStore == nil || o.config.ReportBucket == "" {
		return nil, "", nil
	}

	nEvals, err := o.queries.CountEvaluationsByBatch(ctx, batchID)
	if err != nil {
		return nil, "", StoreError{Op: "CountEvaluationsByBatch", Err: err}
	}
	agentRows, err := o.queries.GetAgentScoresByBatch(ctx, batchID)
	if err != nil {
		return nil, "", StoreError{Op: "GetAgentScoresByBatch", Err: err}
	}
	agents := make([]agentSummary, 0, len(agentRows))
	for _, r := range agentRows {
		agents = append(agents, agentSummary{
			AgentID:     r.AgentID,
			MeanScore:   r.MeanScore,
			Evaluations: r.Nevaluations,
		})
	}

	report := batchReport{
		BatchID:     batchID.String(),
		Status:      string(status),
		Total:       row.Total,
		Completed:   row.Completed,
		Failed:      row.Failed,
		Cancelled:   row.Cancelled,
		Evaluations: nEvals,
		Agents:      agents,
		GeneratedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return nil, "", err
	}

	objName := fmt.Sprintf("batch-reports/%s.json", batchID)
	err = o.objStore.Put(ctx, o.config.ReportBucket, objName, bytes.NewReader(payload), int64(len(payload)), "application/json")
	if err != nil {
		return nil, "", err
	}
	return &report, objName, nil
}
