package ai

import (
	"fmt"
	"review-verify/domain"
	"review-verify/errors"
)

// Analysis runs the trained pipeline: vectorize, classify, map to a label.
type Analysis struct {
	bundle    *Bundle
	fakeIndex int
}

// NewAnalysis locates the probability column of the Fake class so Score can report it.
func NewAnalysis(bundle *Bundle) (*Analysis, error) {
	if bundle == nil {
		return nil, errors.ErrModelUnavailable
	}
	fakeIndex := -1
	for i, class := range bundle.Forest().Classes() {
		if class == domain.LabelFake.Index() {
			fakeIndex = i
		}
	}
	if fakeIndex < 0 {
		return nil, fmt.Errorf("%w: classifier has no %s class", errors.ErrCorruptBundle, domain.LabelFake)
	}
	return &Analysis{bundle: bundle, fakeIndex: fakeIndex}, nil
}

// Score returns the probability that text is a fake review.
func (a *Analysis) Score(text string) (domain.Signal, error) {
	input := a.bundle.Vectorizer().Transform(text)

	proba, err := a.bundle.Forest().PredictProba(input)
	if err != nil {
		return domain.Signal{}, err
	}
	return domain.NewSignal(proba[a.fakeIndex]), nil
}

// PredictLabel classifies a single review.
func (a *Analysis) PredictLabel(text string) (domain.Label, error) {
	input := a.bundle.Vectorizer().Transform(text)

	class, err := a.bundle.Forest().Predict(input)
	if err != nil {
		return "", err
	}
	return domain.LabelFromIndex(class)
}

// PredictLabels classifies reviews in order. The first failure aborts the batch.
func (a *Analysis) PredictLabels(texts []string) ([]domain.Label, error) {
	labels := make([]domain.Label, 0, len(texts))
	for i, text := range texts {
		label, err := a.PredictLabel(text)
		if err != nil {
			return nil, fmt.Errorf("review %d: %w", i, err)
		}
		labels = append(labels, label)
	}
	return labels, nil
}
