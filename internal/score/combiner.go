// Package score merges the two analyzer sub-scores into the final
// score, confidence, risk level, and recommendation text. Everything
// here is a pure function of its inputs.
package score

import (
	"math"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// Blend is the combined outcome of both analyzer branches
type Blend struct {
	Score      int // [0,100]
	Confidence int // [30,95]
	Knowledge  *model.KnowledgeContext
}

// Combiner merges AI and heuristic sub-scores with fixed weights
type Combiner struct {
	cfg model.ScoringConfig
}

// NewCombiner creates a combiner with the given weights and thresholds
func NewCombiner(cfg model.ScoringConfig) *Combiner {
	return &Combiner{cfg: cfg}
}

// Combine blends the sub-scores. The AI side is optional (nil when the
// AI branch failed); the heuristic side is always present because the
// engine substitutes a fallback SubScore on heuristic failure.
//
// Steps: start neutral, add each branch's weighted deviation from 50,
// then regress toward neutral by the AI's own confidence so an unsure
// AI judgment cannot swing the blend as hard as a confident one.
// Knowledge-base overrides are evaluated by the classifier, not here;
// this function only merges the contexts.
func (c *Combiner) Combine(aiSub *model.SubScore, heuristic model.SubScore) Blend {
	score := 50.0
	if aiSub != nil {
		score += (aiSub.Value - 50) * c.cfg.AIWeight
	}
	score += (heuristic.Value - 50) * c.cfg.HeuristicWeight

	if aiSub != nil {
		score = 50 + (score-50)*(aiSub.Confidence/100)
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	knowledge := heuristic.Knowledge
	if aiSub != nil {
		knowledge = knowledge.Merge(aiSub.Knowledge)
	}

	return Blend{
		Score:      int(math.Round(score)),
		Confidence: c.confidence(aiSub, heuristic, knowledge),
		Knowledge:  knowledge,
	}
}

// confidence estimates how much to trust the blend. Base 70, boosted by
// knowledge-base corroboration and evidence volume, adjusted by
// agreement between the branches, clamped to [30,95]: this is a
// heuristic classifier, never certainty in either direction.
func (c *Combiner) confidence(aiSub *model.SubScore, heuristic model.SubScore, knowledge *model.KnowledgeContext) int {
	conf := 70.0

	if knowledge != nil {
		if len(knowledge.Companies) > 0 {
			conf += 15
		}
		if len(knowledge.ScamPatterns) > 0 {
			conf += 10
		}
		if len(knowledge.ProfessionalSignals) > 0 {
			conf += 5
		}
	}

	if len(heuristic.Evidence) > 3 || (aiSub != nil && len(aiSub.Evidence) > 3) {
		conf += 10
	}

	if aiSub != nil {
		diff := math.Abs(aiSub.Value - heuristic.Value)
		if diff < 10 {
			conf += 15 // Strong agreement
		} else if diff > 30 {
			conf -= 20 // Disagreement means the blend is unreliable
		}
	}

	if conf < 30 {
		conf = 30
	} else if conf > 95 {
		conf = 95
	}
	return int(math.Round(conf))
}
