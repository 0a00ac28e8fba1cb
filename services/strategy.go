package services

import (
	"fmt"
	"review-verify/errors"

	"github.com/samber/lo"
)

const (
	StrategyHeuristic  = "heuristic"
	StrategyClassifier = "classifier"
)

var strategies = []string{StrategyHeuristic, StrategyClassifier}

// SelectFakeScorer picks the fake-review strategy by name.
// classifier is nil when no model bundle was loaded.
func SelectFakeScorer(name string, classifier, heuristic Scorer) (Scorer, error) {
	if !lo.Contains(strategies, name) {
		return nil, fmt.Errorf("%w: %q (expected one of %v)", errors.ErrUnknownScorer, name, strategies)
	}
	if name == StrategyHeuristic {
		return heuristic, nil
	}
	if classifier == nil {
		return nil, fmt.Errorf("%s scorer: %w", name, errors.ErrModelUnavailable)
	}
	return classifier, nil
}
