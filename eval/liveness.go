package eval

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agentic-eval/evalcore/queue"
)

// runHeartbeat refreshes this orchestrator's liveness key until shutdown.
// The key carries a TTL a bit over twice the refresh interval, so a dead
// orchestrator disappears from ListLiveWorkers within a minute without any
// explicit deregistration.
func (o *Orchestrator) runHeartbeat(ctx context.Context) {
	defer o.wg.Done()

	o.beat(ctx)
	ticker := time.NewTicker(o.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Best-effort removal so status views don't show a ghost for
			// the remaining TTL.
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := o.broker.Del(cleanupCtx, WorkerStatusKey(o.instanceID)); err != nil {
				o.logger.Debug0().LogActivity("Could not remove liveness key", map[string]any{
					"instanceId": o.instanceID,
				})
			}
			cancel()
			return
		case <-ticker.C:
			o.beat(ctx)
		}
	}
}

func (o *Orchestrator) beat(ctx context.Context) {
	status := WorkerStatus{
		WorkerID:      o.instanceID,
		Status:        "active",
		LastHeartbeat: time.Now().UTC(),
	}
	payload, err := json.Marshal(status)
	if err != nil {
		return
	}
	if err := o.broker.SetEx(ctx, WorkerStatusKey(o.instanceID), payload, o.config.HeartbeatTTL); err != nil {
		o.logger.Warn().LogActivity("Heartbeat write failed", map[string]any{
			"instanceId": o.instanceID,
			"error":      err.Error(),
		})
	}
}

// CountInFlightTasks reports how many tasks currently have a partial-results
// hash. This is the broker-side view of the in-flight table and is what
// status tooling reads, since the table itself lives inside the orchestrator
// process.
func CountInFlightTasks(ctx context.Context, broker *queue.Broker) (int, error) {
	keys, err := broker.ScanKeys(ctx, PartialResultsPattern)
	if err != nil {
		return 0, QueueError{Op: "scan", Queue: PartialResultsPattern, Err: err}
	}
	return len(keys), nil
}

// ListLiveWorkers returns the liveness payloads of every worker and
// orchestrator whose heartbeat key has not expired. Unparsable payloads are
// skipped.
func ListLiveWorkers(ctx context.Context, broker *queue.Broker) ([]WorkerStatus, error) {
	keys, err := broker.ScanKeys(ctx, WorkerStatusPattern)
	if err != nil {
		return nil, QueueError{Op: "scan", Queue: WorkerStatusPattern, Err: err}
	}
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := broker.MGet(ctx, keys...)
	if err != nil {
		return nil, QueueError{Op: "mget", Queue: WorkerStatusPattern, Err: err}
	}

	workers := make([]WorkerStatus, 0, len(vals))
	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var ws WorkerStatus
		if err := json.Unmarshal([]byte(raw), &ws); err != nil {
			continue
		}
		workers = append(workers, ws)
	}
	return workers, nil
}
