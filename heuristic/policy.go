package heuristic

import (
	"fmt"
	"os"
	"review-verify/errors"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Range is an inclusive probability interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min" validate:"gte=0,lte=1"`
	Max float64 `yaml:"max" validate:"gte=0,lte=1,gtefield=Min"`
}

// Indicator is a group of strong phrases that share a probability range.
type Indicator struct {
	Phrases []string `yaml:"phrases" validate:"required,dive,required"`
	Range   Range    `yaml:"range"`
}

// Escalation applies to generic wording: when a generic phrase is present,
// the probability is resampled with chance Gate.
type Escalation struct {
	Phrases   []string `yaml:"phrases" validate:"dive,required"`
	Gate      float64  `yaml:"gate" validate:"gte=0,lte=1"`
	Range     Range    `yaml:"range"`
	Threshold float64  `yaml:"threshold" validate:"gte=0,lte=1"`
}

// Policy holds every tunable of one heuristic signal.
// Indicator phrases are matched in the order they are declared, across groups.
// Threshold only sets Signal.Flagged: the scoring service re-derives the
// response flags from the probability at domain.FlagThreshold.
type Policy struct {
	Baseline   Range       `yaml:"baseline"`
	Indicators []Indicator `yaml:"indicators" validate:"dive"`
	Generic    Escalation  `yaml:"generic"`
	Threshold  float64     `yaml:"threshold" validate:"gte=0,lte=1"`
}

// Policies configures both heuristic signals.
type Policies struct {
	Fake Policy `yaml:"fake"`
	AI   Policy `yaml:"ai"`
}

func (p Policy) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPolicy, err)
	}
	return nil
}

func (p Policies) Validate() error {
	if err := p.Fake.Validate(); err != nil {
		return fmt.Errorf("fake: %w", err)
	}
	if err := p.AI.Validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}
	return nil
}

// DefaultAIPolicy flags wording typical of machine-generated text.
func DefaultAIPolicy() Policy {
	return Policy{
		Baseline: Range{Min: 0.05, Max: 0.45},
		Indicators: []Indicator{
			{
				Phrases: []string{
					"as an ai language model",
					"i cannot",
					"in conclusion",
					"overall",
					"it is important to note",
					"unlock your potential",
					"seamless integration",
				},
				Range: Range{Min: 0.7, Max: 0.99},
			},
		},
		Generic: Escalation{
			Phrases:   []string{"perfect product", "highly recommend"},
			Gate:      0.3,
			Range:     Range{Min: 0.55, Max: 0.75},
			Threshold: 0.65,
		},
		Threshold: 0.5,
	}
}

// DefaultFakePolicy flags complaints and overly enthusiastic praise.
func DefaultFakePolicy() Policy {
	return Policy{
		Baseline: Range{Min: 0.05, Max: 0.45},
		Indicators: []Indicator{
			{Phrases: []string{"scam", "terrible quality"}, Range: Range{Min: 0.8, Max: 0.99}},
			{Phrases: []string{"best product ever", "must buy"}, Range: Range{Min: 0.75, Max: 0.95}},
		},
		Threshold: 0.5,
	}
}

func DefaultPolicies() Policies {
	return Policies{Fake: DefaultFakePolicy(), AI: DefaultAIPolicy()}
}

// LoadPolicies overlays the YAML file at path on the defaults.
// Keys absent from the file keep their default value.
func LoadPolicies(path string) (Policies, error) {
	policies := DefaultPolicies()
	if path == "" {
		return policies, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Policies{}, fmt.Errorf("failed to read policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, &policies); err != nil {
		return Policies{}, fmt.Errorf("%w: failed to unmarshal yaml: %v", errors.ErrInvalidPolicy, err)
	}
	if err := policies.Validate(); err != nil {
		return Policies{}, err
	}
	return policies, nil
}
