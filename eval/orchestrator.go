// Package eval implements the master orchestrator of the agent-response
// evaluation pipeline. Records submitted in batches are fanned out as
// per-dimension subtasks across Redis queues, scored by external worker
// pools, reassembled from partial results, and finalised into exactly one
// Evaluation per record.
//
// The orchestrator runs three cooperating activities: a dispatch loop that
// drains the main task queue under a concurrency cap, a collector loop that
// drains the shared results queue and finalises complete tasks, and a
// timeout sweeper that fails tasks whose deadline passed. All durable state
// lives in Redis and Postgres; the process itself only holds the in-flight
// table.
package eval

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/agentic-eval/evalcore/eval/objstore"
	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
	"github.com/agentic-eval/evalcore/metrics"
	"github.com/agentic-eval/evalcore/queue"
)

// Orchestrator owns the dispatch loop, the collector loop and the timeout
// sweeper. Construct with NewOrchestrator, then Start; Shutdown stops the
// loops gracefully up to the hard deadline.
type Orchestrator struct {
	db         *pgxpool.Pool
	queries    evalsqlc.Querier
	broker     *queue.Broker
	objStore   objstore.ObjectStore
	logger     *logharbour.Logger
	mtr        metrics.Metrics
	config     Config
	inflight   *inFlightTable
	instanceID string

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewOrchestrator wires the orchestrator's collaborators. logger must not be
// nil. minioClient may be nil; batch report upload is then disabled. config
// may be nil; zero-valued fields get their defaults either way.
func NewOrchestrator(db *pgxpool.Pool, broker *queue.Broker, minioClient *minio.Client, logger *logharbour.Logger, config *Config) *Orchestrator {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if config == nil {
		config = &Config{}
	}

	o := &Orchestrator{
		db:         db,
		broker:     broker,
		logger:     logger,
		config:     config.withDefaults(),
		inflight:   newInFlightTable(),
		instanceID: generateInstanceID(),
	}
	if db != nil {
		o.queries = evalsqlc.New(db)
	}
	if minioClient != nil {
		o.objStore = objstore.NewMinioObjectStore(minioClient)
	}
	return o
}

// SetMetrics installs a metrics backend. Must be called before Start.
func (o *Orchestrator) SetMetrics(m metrics.Metrics) {
	o.mtr = m
}

// InstanceID returns this orchestrator's identity, used for its liveness
// key. Format: hostname-PID-timestamp.
func (o *Orchestrator) InstanceID() string {
	return o.instanceID
}

func generateInstanceID() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	// Hyphens in the hostname would break naive parsing of the ID; keep it
	// a single token.
	hostname = strings.ReplaceAll(hostname, "-", "_")
	return fmt.Sprintf("%s-%d-%d", hostname, os.Getpid(), time.Now().UnixNano())
}

// Start validates configuration, rebuilds the in-flight table from any
// partial-results hashes left over from a previous run, and launches the
// dispatch loop, collector loop, timeout sweeper and heartbeat.
func (o *Orchestrator) Start(ctx context.Context) error {
	if err := o.config.Validate(); err != nil {
		return fmt.Errorf("invalid orchestrator config: %w", err)
	}
	if o.broker == nil {
		return fmt.Errorf("orchestrator requires a queue broker")
	}
	if o.queries == nil {
		return fmt.Errorf("orchestrator requires a store")
	}

	o.registerMetrics()

	if err := o.rebuildInFlight(ctx); err != nil {
		// Not fatal: orphaned hashes still expire via TTL.
		o.logger.Warn().LogActivity("Could not rebuild in-flight table", map[string]any{
			"error": err.Error(),
		})
	}

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	o.wg.Add(4)
	go o.runLoop(ctx, "dispatch", o.dispatchOnce)
	go o.runLoop(ctx, "collector", o.collectOnce)
	go o.runSweeper(ctx)
	go o.runHeartbeat(ctx)

	o.logger.Info().LogActivity("Orchestrator started", map[string]any{
		"instanceId":         o.instanceID,
		"maxConcurrentTasks": o.config.MaxConcurrentTasks,
		"taskTimeout":        o.config.TaskTimeout.String(),
	})
	return nil
}

// Shutdown stops accepting new work and waits for in-flight loop iterations
// to finish, up to the hard shutdown deadline. After the deadline it returns
// an error and relies on next-start recovery: leftover partial results are
// re-registered by rebuildInFlight and either finalised late or swept.
func (o *Orchestrator) Shutdown() error {
	if o.cancel == nil {
		return nil
	}
	o.cancel()

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		o.logger.Info().LogActivity("Orchestrator stopped", map[string]any{
			"instanceId": o.instanceID,
		})
		return nil
	case <-time.After(o.config.HardShutdownDeadline):
		return fmt.Errorf("shutdown exceeded hard deadline of %v", o.config.HardShutdownDeadline)
	}
}

// runLoop drives one loop body until the context is cancelled. A panic in
// the body is logged and the loop continues after a short backoff; no panic
// may kill a loop.
func (o *Orchestrator) runLoop(ctx context.Context, name string, body func(ctx context.Context) bool) {
	defer o.wg.Done()
	for {
		if ctx.Err() != nil {
			return
		}
		hadWork := o.runSafely(ctx, name, body)
		if !hadWork {
			select {
			case <-ctx.Done():
				return
			case <-time.After(getRandomSleepDuration()):
			}
		}
	}
}

func (o *Orchestrator) runSafely(ctx context.Context, name string, body func(ctx context.Context) bool) (hadWork bool) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error(fmt.Errorf("panic: %v", r)).LogActivity("Recovered panic in loop", map[string]any{
				"loop": name,
			})
			hadWork = false
		}
	}()
	return body(ctx)
}

// getRandomSleepDuration returns 0.5s-1.5s of jittered backoff so idle
// orchestrator instances don't poll the broker in lockstep.
func getRandomSleepDuration() time.Duration {
	return time.Duration(500+rand.Intn(1000)) * time.Millisecond
}

// rebuildInFlight re-registers tasks whose partial-results hash survived a
// restart, so the sweeper can bound them again. Their start time is lost, so
// the clock restarts now; worst case a task gets one extra timeout window.
func (o *Orchestrator) rebuildInFlight(ctx context.Context) error {
	keys, err := o.broker.ScanKeys(ctx, PartialResultsPattern)
	if err != nil {
		return QueueError{Op: "scan", Queue: PartialResultsPattern, Err: err}
	}

	now := time.Now()
	recovered := 0
	for _, key := range keys {
		taskID := strings.TrimSuffix(strings.TrimPrefix(key, "task:"), ":results")
		if taskID == "" || taskID == key {
			continue
		}
		if _, ok := o.inflight.Get(taskID); ok {
			continue
		}

		entry := inFlightEntry{StartedAt: now}
		fields, err := o.broker.HashGetAll(ctx, key)
		if err == nil {
			for _, raw := range fields {
				var res ResultMessage
				if unmarshalErr := jsonUnmarshal(raw, &res); unmarshalErr == nil {
					entry.RecordID = parseUUID(res.ResponseID)
					entry.BatchID = parseUUID(res.BatchID)
					break
				}
			}
		}
		o.inflight.Add(taskID, entry)
		recovered++
	}

	if recovered > 0 {
		o.logger.Info().LogActivity("Rebuilt in-flight table from partial results", map[string]any{
			"recovered": recovered,
		})
	}
	return nil
}

// Metric names recorded by the orchestrator.
const (
	mtrTasksDispatched  = "evalcore_tasks_dispatched_total"
	mtrResultsCollected = "evalcore_results_collected_total"
	mtrFinalized        = "evalcore_evaluations_finalized_total"
	mtrTimedOut         = "evalcore_tasks_timed_out_total"
	mtrTasksFailed      = "evalcore_tasks_failed_total"
	mtrInFlight         = "evalcore_inflight_tasks"
	mtrFinalizeSeconds  = "evalcore_finalize_seconds"
)

func (o *Orchestrator) registerMetrics() {
	if o.mtr == nil {
		return
	}
	o.mtr.Register(mtrTasksDispatched, "Counter", "Tasks popped from the main queue and fanned out")
	o.mtr.RegisterWithLabels(mtrResultsCollected, "Counter", "Dimension results popped from the results queue", []string{"dimension"})
	o.mtr.Register(mtrFinalized, "Counter", "Evaluations written")
	o.mtr.Register(mtrTimedOut, "Counter", "Tasks failed by the timeout sweeper")
	o.mtr.Register(mtrTasksFailed, "Counter", "Tasks failed for reasons other than timeout")
	o.mtr.Register(mtrInFlight, "Gauge", "Tasks currently in flight")
	o.mtr.Register(mtrFinalizeSeconds, "Histogram", "Finalisation duration in seconds")
}

func (o *Orchestrator) record(name string, value float64) {
	if o.mtr != nil {
		o.mtr.Record(name, value)
	}
}

func (o *Orchestrator) recordWithLabels(name string, value float64, labels ...string) {
	if o.mtr != nil {
		o.mtr.RecordWithLabels(name, value, labels...)
	}
}
