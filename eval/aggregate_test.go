package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resultsWithScores(scores map[Dimension]float64, errored map[Dimension]string) map[Dimension]ResultMessage {
	results := make(map[Dimension]ResultMessage)
	for d, s := range scores {
		results[d] = ResultMessage{TaskID: "t", Dimension: string(d), Score: s}
	}
	for d, msg := range errored {
		results[d] = ResultMessage{TaskID: "t", Dimension: string(d), Error: msg}
	}
	return results
}

func TestAggregateScoresAllDimensions(t *testing.T) {
	results := resultsWithScores(map[Dimension]float64{
		DimensionInstruction:   0.90,
		DimensionHallucination: 0.80,
		DimensionAssumption:    0.85,
		DimensionCoherence:     0.75,
		DimensionAccuracy:      0.80,
	}, nil)

	final, scores, errs := aggregateScores(results, DefaultWeights)

	// .20*.90 + .25*.80 + .20*.85 + .15*.75 + .20*.80 = .8225
	assert.InDelta(t, 0.8225, final, 1e-9)
	assert.Len(t, scores, 5)
	assert.Empty(t, errs)
}

func TestAggregateScoresRenormalisesOverErroredDimension(t *testing.T) {
	results := resultsWithScores(map[Dimension]float64{
		DimensionInstruction: 1.0,
		DimensionAssumption:  0.5,
		DimensionCoherence:   0.8,
		DimensionAccuracy:    0.6,
	}, map[Dimension]string{
		DimensionHallucination: "worker crashed",
	})

	final, scores, errs := aggregateScores(results, DefaultWeights)

	// Hallucination's 0.25 drops out of the denominator:
	// (.20*1.0 + .20*.5 + .15*.8 + .20*.6) / 0.75 = .54/.75 = .72
	assert.InDelta(t, 0.72, final, 1e-9)
	assert.Len(t, scores, 5)
	assert.Zero(t, scores[string(DimensionHallucination)].Score)
	assert.Equal(t, map[string]string{string(DimensionHallucination): "worker crashed"}, errs)
}

func TestAggregateScoresSingleSurvivingDimension(t *testing.T) {
	results := resultsWithScores(map[Dimension]float64{
		DimensionAccuracy: 0.65,
	}, map[Dimension]string{
		DimensionInstruction:   "timeout",
		DimensionHallucination: "timeout",
		DimensionAssumption:    "timeout",
		DimensionCoherence:     "timeout",
	})

	final, _, errs := aggregateScores(results, DefaultWeights)

	// With one dimension left, renormalisation makes its score the final
	// score regardless of its weight.
	assert.InDelta(t, 0.65, final, 1e-9)
	assert.Len(t, errs, 4)
}

func TestAggregateScoresAllErrored(t *testing.T) {
	results := resultsWithScores(nil, map[Dimension]string{
		DimensionInstruction:   "e",
		DimensionHallucination: "e",
		DimensionAssumption:    "e",
		DimensionCoherence:     "e",
		DimensionAccuracy:      "e",
	})

	final, scores, errs := aggregateScores(results, DefaultWeights)

	assert.Zero(t, final)
	assert.Len(t, errs, 5)
	for d, s := range scores {
		assert.Zero(t, s.Score, d)
	}
}

func TestAggregateScoresClampsInvalidScore(t *testing.T) {
	results := resultsWithScores(map[Dimension]float64{
		DimensionInstruction:   0.9,
		DimensionHallucination: 1.7,
		DimensionAssumption:    math.NaN(),
		DimensionCoherence:     0.6,
		DimensionAccuracy:      -0.2,
	}, nil)

	final, scores, errs := aggregateScores(results, DefaultWeights)

	// Only instruction (.20) and coherence (.15) survive:
	// (.20*.9 + .15*.6) / .35 = .27/.35
	assert.InDelta(t, 0.27/0.35, final, 1e-9)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs[string(DimensionHallucination)], "invalid score")
	assert.Zero(t, scores[string(DimensionAccuracy)].Score)
}
