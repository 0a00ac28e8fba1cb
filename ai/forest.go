package ai

import (
	"fmt"
	"review-verify/errors"
)

// leaf marks a missing child in a tree node.
const leaf = -1

// Node is one split or leaf of a decision tree.
// Samples with x[Feature] <= Threshold go Left.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

func (n Node) isLeaf() bool {
	return n.Left == leaf && n.Right == leaf
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is a trained random forest. Each tree votes with the class
// distribution of the leaf a sample lands in, and the averaged distribution
// decides the class.
type Forest struct {
	nFeatures int
	classes   []int
	trees     []Tree
}

// NewForest validates the trees so that prediction can never index out of range or loop.
func NewForest(nFeatures int, classes []int, trees []Tree) (*Forest, error) {
	if nFeatures <= 0 || len(classes) == 0 || len(trees) == 0 {
		return nil, errors.ErrMissingClassifier
	}
	for t, tree := range trees {
		if err := validateTree(tree, nFeatures, len(classes)); err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", errors.ErrCorruptBundle, t, err)
		}
	}
	return &Forest{nFeatures: nFeatures, classes: classes, trees: trees}, nil
}

func validateTree(tree Tree, nFeatures, nClasses int) error {
	if len(tree.Nodes) == 0 {
		return fmt.Errorf("no nodes")
	}
	for i, n := range tree.Nodes {
		if n.isLeaf() {
			if len(n.Value) != nClasses {
				return fmt.Errorf("leaf %d has %d class weights, want %d", i, len(n.Value), nClasses)
			}
			var sum float64
			for _, w := range n.Value {
				if w < 0 {
					return fmt.Errorf("leaf %d has a negative weight", i)
				}
				sum += w
			}
			if sum == 0 {
				return fmt.Errorf("leaf %d has no weight", i)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= nFeatures {
			return fmt.Errorf("node %d splits on feature %d of %d", i, n.Feature, nFeatures)
		}
		// Children are stored after their parent, which also rules out cycles.
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(tree.Nodes) {
				return fmt.Errorf("node %d has child %d out of range", i, child)
			}
		}
	}
	return nil
}

func (f *Forest) NFeatures() int {
	return f.nFeatures
}

// Classes returns the raw class value for each probability column.
func (f *Forest) Classes() []int {
	return append([]int(nil), f.classes...)
}

// PredictProba averages the per-tree class distributions for x.
func (f *Forest) PredictProba(x []float64) ([]float64, error) {
	if len(x) != f.nFeatures {
		return nil, fmt.Errorf("%w: got %d features, model expects %d",
			errors.ErrDimensionMismatch, len(x), f.nFeatures)
	}

	proba := make([]float64, len(f.classes))
	for _, tree := range f.trees {
		value := tree.leafFor(x).Value
		var sum float64
		for _, w := range value {
			sum += w
		}
		for c, w := range value {
			proba[c] += w / sum
		}
	}
	for c := range proba {
		proba[c] /= float64(len(f.trees))
	}
	return proba, nil
}

// Predict returns the class value with the highest averaged probability.
// Ties go to the first class.
func (f *Forest) Predict(x []float64) (int, error) {
	proba, err := f.PredictProba(x)
	if err != nil {
		return 0, err
	}
	best := 0
	for c := 1; c < len(proba); c++ {
		if proba[c] > proba[best] {
			best = c
		}
	}
	return f.classes[best], nil
}

func (t Tree) leafFor(x []float64) Node {
	n := t.Nodes[0]
	for !n.isLeaf() {
		if x[n.Feature] <= n.Threshold {
			n = t.Nodes[n.Left]
		} else {
			n = t.Nodes[n.Right]
		}
	}
	return n
}
