package eval

import (
	"encoding/json"
	"time"
)

// Dimension is one of the five quality dimensions every record is scored on.
type Dimension string

const (
	DimensionInstruction   Dimension = "instruction"
	DimensionHallucination Dimension = "hallucination"
	DimensionAssumption    Dimension = "assumption"
	DimensionCoherence     Dimension = "coherence"
	DimensionAccuracy      Dimension = "accuracy"
)

// AllDimensions lists the dimensions in fan-out order. A task is complete
// when its partial-results hash holds exactly one field per entry here.
var AllDimensions = []Dimension{
	DimensionInstruction,
	DimensionHallucination,
	DimensionAssumption,
	DimensionCoherence,
	DimensionAccuracy,
}

// DefaultWeights is the convex combination used to merge per-dimension
// scores into the final score. The values sum to 1.
var DefaultWeights = map[Dimension]float64{
	DimensionInstruction:   0.20,
	DimensionHallucination: 0.25,
	DimensionAssumption:    0.20,
	DimensionCoherence:     0.15,
	DimensionAccuracy:      0.20,
}

// TaskMessage is the main-queue envelope: one attempt at scoring one record.
// A retried record gets a fresh TaskID; RecordID stays stable across
// attempts.
type TaskMessage struct {
	TaskID       string          `json:"task_id"`
	ResponseID   string          `json:"response_id"`
	BatchID      string          `json:"batch_id"`
	AgentID      string          `json:"agent_id"`
	Prompt       string          `json:"prompt"`
	ResponseText string          `json:"response_text"`
	Context      string          `json:"context"`
	Reference    string          `json:"reference"`
	Metadata     json.RawMessage `json:"metadata"`
	Dimensions   []string        `json:"dimensions"`
	RetryCount   int             `json:"retry_count"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SubtaskMessage is the per-dimension work item: the task envelope plus the
// dimension the receiving pool must score.
type SubtaskMessage struct {
	TaskMessage
	Dimension string `json:"dimension"`
}

// ResultMessage is what a dimension worker pushes onto the results queue.
// Error is non-empty when the worker could not produce a usable score; the
// dimension is then excluded from the weight denominator.
type ResultMessage struct {
	TaskID           string          `json:"task_id"`
	Dimension        string          `json:"dimension"`
	ResponseID       string          `json:"response_id"`
	BatchID          string          `json:"batch_id"`
	AgentID          string          `json:"agent_id"`
	Score            float64         `json:"score"`
	Details          json.RawMessage `json:"details"`
	Error            string          `json:"error,omitempty"`
	ProcessingTimeMs int64           `json:"processing_time_ms"`
	WorkerID         string          `json:"worker_id"`
}

// BatchProgress is the snapshot written under batch:{id}:progress after
// every record transition. Pending folds together records not yet picked up
// by the dispatch loop ('pending' and 'queued' in the store).
type BatchProgress struct {
	BatchID    string    `json:"batch_id"`
	Status     string    `json:"status"`
	Total      int64     `json:"total"`
	Pending    int64     `json:"pending"`
	Processing int64     `json:"processing"`
	Completed  int64     `json:"completed"`
	Failed     int64     `json:"failed"`
	Cancelled  int64     `json:"cancelled"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WorkerStatus is the liveness payload under worker:{id}:status. Both the
// dimension workers and the orchestrator itself heartbeat this shape.
type WorkerStatus struct {
	WorkerID      string    `json:"worker_id"`
	Status        string    `json:"status"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}
