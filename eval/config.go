package eval

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied by NewOrchestrator for zero-valued config fields.
const (
	EVAL_MAX_CONCURRENT_TASKS   = 10
	EVAL_MAX_RETRIES            = 3
	EVAL_TASK_TIMEOUT_SEC       = 300
	EVAL_SWEEP_INTERVAL_SEC     = 60
	EVAL_PARTIAL_RESULTS_TTLSEC = 3600
	EVAL_RESULTS_POP_TIMEOUTSEC = 1
	EVAL_MAIN_POP_TIMEOUTSEC    = 5
	EVAL_HARD_SHUTDOWN_SEC      = 30
	EVAL_BATCH_PROGRESS_TTLSEC  = 86400
	EVAL_HEARTBEAT_TTLSEC       = 60
	EVAL_HEARTBEAT_INTERVALSEC  = 30
)

// Config holds the orchestrator's tunables. The zero value of every field is
// replaced by the EVAL_* default in NewOrchestrator, so callers only set
// what they want to override.
type Config struct {
	MaxConcurrentTasks   int `validate:"min=0"` // dispatch concurrency cap
	MaxRetries           int `validate:"min=0"` // retry ceiling enforced by RequeueFailed
	TaskTimeout          time.Duration
	SweepInterval        time.Duration
	PartialResultsTTL    time.Duration
	ResultsPopTimeout    time.Duration
	MainPopTimeout       time.Duration
	HardShutdownDeadline time.Duration
	BatchProgressTTL     time.Duration
	HeartbeatTTL         time.Duration
	HeartbeatInterval    time.Duration

	// ReportBucket is the object store bucket completed-batch reports are
	// uploaded to. Ignored when no object store is configured.
	ReportBucket string

	// Weights per dimension; must cover all five dimensions and sum to 1.
	Weights map[Dimension]float64
}

// withDefaults fills zero-valued fields, mirroring how the config is
// documented: each default corresponds to one EVAL_* constant.
func (c Config) withDefaults() Config {
	if c.MaxConcurrentTasks == 0 {
		c.MaxConcurrentTasks = EVAL_MAX_CONCURRENT_TASKS
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = EVAL_MAX_RETRIES
	}
	if c.TaskTimeout == 0 {
		c.TaskTimeout = EVAL_TASK_TIMEOUT_SEC * time.Second
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = EVAL_SWEEP_INTERVAL_SEC * time.Second
	}
	if c.PartialResultsTTL == 0 {
		c.PartialResultsTTL = EVAL_PARTIAL_RESULTS_TTLSEC * time.Second
	}
	if c.ResultsPopTimeout == 0 {
		c.ResultsPopTimeout = EVAL_RESULTS_POP_TIMEOUTSEC * time.Second
	}
	if c.MainPopTimeout == 0 {
		c.MainPopTimeout = EVAL_MAIN_POP_TIMEOUTSEC * time.Second
	}
	if c.HardShutdownDeadline == 0 {
		c.HardShutdownDeadline = EVAL_HARD_SHUTDOWN_SEC * time.Second
	}
	if c.BatchProgressTTL == 0 {
		c.BatchProgressTTL = EVAL_BATCH_PROGRESS_TTLSEC * time.Second
	}
	if c.HeartbeatTTL == 0 {
		c.HeartbeatTTL = EVAL_HEARTBEAT_TTLSEC * time.Second
	}
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = EVAL_HEARTBEAT_INTERVALSEC * time.Second
	}
	if c.Weights == nil {
		c.Weights = DefaultWeights
	}
	return c
}

// Validate checks structural constraints plus the weight invariant: one
// non-negative weight per dimension, summing to 1.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	var sum float64
	for _, d := range AllDimensions {
		w, ok := c.Weights[d]
		if !ok {
			return fmt.Errorf("no weight configured for dimension %s", d)
		}
		if w < 0 || w > 1 {
			return fmt.Errorf("weight for dimension %s out of range [0,1]: %v", d, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("dimension weights must sum to 1, got %v", sum)
	}
	return nil
}
