package domain

// VerdictPolicy decides how a client renders a scored review.
type VerdictPolicy struct {
	FakeBlockThreshold     float64
	AIBlockThreshold       float64
	CombinedBlockThreshold float64
	AIDisplayThreshold     float64
}

// DefaultVerdictPolicy mirrors the thresholds shipped with the browser extension.
func DefaultVerdictPolicy() VerdictPolicy {
	return VerdictPolicy{
		FakeBlockThreshold:     0.75,
		AIBlockThreshold:       0.75,
		CombinedBlockThreshold: 0.50,
		AIDisplayThreshold:     0.60,
	}
}

type Verdict struct {
	Blocked bool
	AIBadge bool
	Reason  string
}

const (
	ReasonFake     = "fake probability"
	ReasonAI       = "ai probability"
	ReasonCombined = "fake and ai probability"
)

// Decide blocks a review when one signal is high on its own or both are moderately high.
func (p VerdictPolicy) Decide(r ScoreResult) Verdict {
	v := Verdict{AIBadge: r.AIProbability >= p.AIDisplayThreshold}
	switch {
	case r.FakeProbability >= p.FakeBlockThreshold:
		v.Blocked, v.Reason = true, ReasonFake
	case r.AIProbability >= p.AIBlockThreshold:
		v.Blocked, v.Reason = true, ReasonAI
	case r.FakeProbability >= p.CombinedBlockThreshold && r.AIProbability >= p.CombinedBlockThreshold:
		v.Blocked, v.Reason = true, ReasonCombined
	}
	return v
}
