package domain

import (
	"fmt"
	"review-verify/errors"
)

// Label is the closed set of classifier outcomes.
// The order matches the class indexes of the trained model: adding a class
// means retraining and extending this list together.
type Label string

const (
	LabelFake    Label = "Fake"
	LabelGenuine Label = "Genuine"
)

var labels = []Label{LabelFake, LabelGenuine}

// LabelFromIndex maps a raw classifier class to its label.
func LabelFromIndex(idx int) (Label, error) {
	if idx < 0 || idx >= len(labels) {
		return "", fmt.Errorf("%w: %d", errors.ErrUnknownLabel, idx)
	}
	return labels[idx], nil
}

// Index is the class value the classifier uses for the label, or -1.
func (l Label) Index() int {
	for i, label := range labels {
		if label == l {
			return i
		}
	}
	return -1
}

func (l Label) String() string {
	return string(l)
}
