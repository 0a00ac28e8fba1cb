package ai

import (
	"fmt"
	"math"
	"regexp"
	"review-verify/errors"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/token"
	"github.com/blugelabs/bluge/analysis/tokenizer"
)

// Norm is the vector normalization applied after idf weighting.
type Norm string

const (
	NormL2   Norm = "l2"
	NormL1   Norm = "l1"
	NormNone Norm = "none"
)

// tokenPattern is the default token pattern of the training pipeline, (?u)\b\w\w+\b:
// runs of two or more word runes. Apostrophes and dots split tokens, so "don't"
// yields "don" and "19.99" yields "19" and "99".
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vectorizer turns review text into a TF-IDF vector over a vocabulary frozen at fit time.
// It holds no mutable state and can be shared between goroutines.
type Vectorizer struct {
	vocabulary  map[string]int
	idf         []float64
	norm        Norm
	sublinearTF bool
	analyzer    *analysis.Analyzer
}

// NewVectorizer checks that every vocabulary index addresses an idf weight.
func NewVectorizer(vocabulary map[string]int, idf []float64, norm Norm, sublinearTF bool) (*Vectorizer, error) {
	if len(vocabulary) == 0 || len(idf) == 0 {
		return nil, errors.ErrMissingVectorizer
	}
	if len(vocabulary) != len(idf) {
		return nil, fmt.Errorf("%w: vocabulary has %d terms but %d idf weights",
			errors.ErrCorruptBundle, len(vocabulary), len(idf))
	}
	seen := make([]bool, len(idf))
	for term, idx := range vocabulary {
		if idx < 0 || idx >= len(idf) {
			return nil, fmt.Errorf("%w: term %q has index %d out of range", errors.ErrCorruptBundle, term, idx)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: index %d is used twice", errors.ErrCorruptBundle, idx)
		}
		seen[idx] = true
	}
	switch norm {
	case "":
		norm = NormL2
	case NormL2, NormL1, NormNone:
	default:
		return nil, fmt.Errorf("%w: unknown norm %q", errors.ErrCorruptBundle, norm)
	}

	return &Vectorizer{
		vocabulary:  vocabulary,
		idf:         idf,
		norm:        norm,
		sublinearTF: sublinearTF,
		analyzer:    newAnalyzer(),
	}, nil
}

func newAnalyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Tokenizer: tokenizer.NewRegexpTokenizer(tokenPattern),
		TokenFilters: []analysis.TokenFilter{
			token.NewLowerCaseFilter(),
		},
	}
}

// Dimension is the length of every vector produced by Transform.
func (v *Vectorizer) Dimension() int {
	return len(v.idf)
}

// Tokens returns the case-folded terms of text in order of appearance.
func (v *Vectorizer) Tokens(text string) []string {
	stream := v.analyzer.Analyze([]byte(text))
	terms := make([]string, 0, len(stream))
	for _, t := range stream {
		terms = append(terms, string(t.Term))
	}
	return terms
}

// Transform computes the TF-IDF vector of text.
// Terms outside the vocabulary are dropped, so text made only of unknown
// words yields the zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, v.Dimension())

	counts := make(map[int]float64)
	for _, term := range v.Tokens(text) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}

	for idx, tf := range counts {
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		vec[idx] = tf * v.idf[idx]
	}

	normalize(vec, v.norm)
	return vec
}

func normalize(vec []float64, norm Norm) {
	var total float64
	switch norm {
	case NormL2:
		for _, x := range vec {
			total += x * x
		}
		total = math.Sqrt(total)
	case NormL1:
		for _, x := range vec {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range vec {
		vec[i] /= total
	}
}
