package eval

import "fmt"

// Queue names shared with the dimension worker pools. The workers drain
// their own dimension queue and push scored results onto the results queue;
// renaming any of these is a wire-protocol change.
const (
	// MainTaskQueue holds tasks injected by the enqueue facade and drained
	// by the dispatch loop.
	MainTaskQueue = "main_evaluation_tasks"

	// ResultsQueue is the shared queue all dimension pools push results onto.
	ResultsQueue = "dimension_results"
)

// DimensionQueue returns the per-dimension subtask queue drained by that
// dimension's worker pool.
func DimensionQueue(d Dimension) string {
	return fmt.Sprintf("dimension_queue:%s", d)
}

// PartialResultsKey returns the hash holding per-dimension results for one
// task, field = dimension name. The hash carries a TTL so orphans from lost
// tasks age out.
func PartialResultsKey(taskID string) string {
	return fmt.Sprintf("task:%s:results", taskID)
}

// PartialResultsPattern matches every partial-results hash; used to rebuild
// the in-flight table on restart.
const PartialResultsPattern = "task:*:results"

// BatchProgressKey returns the key for a batch's progress snapshot.
func BatchProgressKey(batchID string) string {
	return fmt.Sprintf("batch:%s:progress", batchID)
}

// WorkerStatusKey returns the liveness key a worker (or this orchestrator)
// refreshes while alive. The key expires if the heartbeat stops.
func WorkerStatusKey(workerID string) string {
	return fmt.Sprintf("worker:%s:status", workerID)
}

// WorkerStatusPattern matches every worker liveness key.
const WorkerStatusPattern = "worker:*:status"
