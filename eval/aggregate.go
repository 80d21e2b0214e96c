package eval

import (
	"encoding/json"
	"fmt"
	"math"
)

// dimensionScore is the per-dimension slice of an evaluation's scores JSON.
type dimensionScore struct {
	Score   float64         `json:"score"`
	Details json.RawMessage `json:"details,omitempty"`
}

// aggregateScores merges per-dimension results into one final score: the
// weighted mean over the error-free dimensions, with the weights
// renormalised so dropping an errored dimension redistributes its weight
// proportionally instead of deflating the score.
//
// When every dimension errored there is nothing to average; final is 0 and
// the caller must treat the task as failed rather than scored.
func aggregateScores(results map[Dimension]ResultMessage, weights map[Dimension]float64) (final float64, scores map[string]dimensionScore, errs map[string]string) {
	scores = make(map[string]dimensionScore)
	errs = make(map[string]string)

	var weightedSum, weightSum float64
	for d, res := range results {
		switch {
		case res.Error != "":
			errs[string(d)] = res.Error
		case math.IsNaN(res.Score) || res.Score < 0 || res.Score > 1:
			// A worker that reports a score outside [0,1] is as wrong as one
			// that reports an error; clamp to 0 and exclude it from the mean.
			errs[string(d)] = fmt.Sprintf("invalid score %v", res.Score)
		default:
			scores[string(d)] = dimensionScore{Score: res.Score, Details: res.Details}
			w := weights[d]
			weightedSum += w * res.Score
			weightSum += w
			continue
		}
		scores[string(d)] = dimensionScore{Score: 0}
	}

	if weightSum == 0 {
		return 0, scores, errs
	}
	return weightedSum / weightSum, scores, errs
}
