package heuristic

import (
	"log/slog"
	"review-verify/domain"
)

// Scorer estimates a probability from phrase matches and bounded random sampling.
// It keeps no state between calls beyond the random source.
type Scorer struct {
	name    string
	policy  Policy
	strong  *Matcher
	ranges  []Range
	generic *Matcher
	src     Source
	log     *slog.Logger
}

func NewScorer(name string, policy Policy, src Source, log *slog.Logger) (*Scorer, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	var phrases []string
	var ranges []Range
	for _, indicator := range policy.Indicators {
		for _, phrase := range indicator.Phrases {
			phrases = append(phrases, phrase)
			ranges = append(ranges, indicator.Range)
		}
	}
	strong, err := NewMatcher(phrases)
	if err != nil {
		return nil, err
	}
	generic, err := NewMatcher(policy.Generic.Phrases)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource()
	}

	return &Scorer{
		name:    name,
		policy:  policy,
		strong:  strong,
		ranges:  rangesByPosition(phrases, ranges),
		generic: generic,
		src:     src,
		log:     log,
	}, nil
}

// rangesByPosition realigns ranges with the matcher positions once duplicates are dropped.
func rangesByPosition(phrases []string, ranges []Range) []Range {
	seen := make(map[string]bool, len(phrases))
	out := make([]Range, 0, len(ranges))
	for i, phrase := range phrases {
		key := string(foldRunes([]rune(phrase)))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ranges[i])
	}
	return out
}

// Score never fails; the error keeps it interchangeable with the trained classifier.
func (s *Scorer) Score(text string) (domain.Signal, error) {
	p := s.uniform(s.policy.Baseline)
	provisional := false

	if idx, ok := s.strong.First(text); ok {
		provisional = true
		p = s.uniform(s.ranges[idx])
	} else if s.generic.Any(text) && s.src.Float64() < s.policy.Generic.Gate {
		p = s.uniform(s.policy.Generic.Range)
		provisional = p > s.policy.Generic.Threshold
	}

	// The final probability alone decides the flag.
	flagged := p > s.policy.Threshold
	if flagged != provisional {
		s.log.Debug("Heuristic flag overridden by threshold",
			"scorer", s.name, "probability", p, "provisional", provisional, "flagged", flagged)
	}
	return domain.Signal{Probability: domain.Clamp(p), Flagged: flagged}, nil
}

func (s *Scorer) uniform(r Range) float64 {
	return r.Min + (r.Max-r.Min)*s.src.Float64()
}
