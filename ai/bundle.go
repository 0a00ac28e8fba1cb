package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"review-verify/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
)

// Bundle pairs the fitted vectorizer with the classifier trained on its output.
// It is built once at startup and never modified afterwards.
type Bundle struct {
	version    string
	vectorizer *Vectorizer
	forest     *Forest
}

type bundleFile struct {
	Version    string          `json:"version"`
	Vectorizer *vectorizerFile `json:"vectorizer"`
	Classifier *classifierFile `json:"classifier"`
}

type vectorizerFile struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	Norm        Norm           `json:"norm"`
	SublinearTF bool           `json:"sublinear_tf"`
}

type classifierFile struct {
	NFeatures int    `json:"n_features"`
	Classes   []int  `json:"classes"`
	Trees     []Tree `json:"trees"`
}

// NewBundle is used by LoadBundle and by tests that need an in-memory model.
func NewBundle(version string, vectorizer *Vectorizer, forest *Forest) (*Bundle, error) {
	if vectorizer == nil {
		return nil, errors.ErrMissingVectorizer
	}
	if forest == nil {
		return nil, errors.ErrMissingClassifier
	}
	return &Bundle{version: version, vectorizer: vectorizer, forest: forest}, nil
}

// LoadBundle reads the model artifact at path. gzip-compressed artifacts are
// detected from their content, not their extension.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model bundle: %w", err)
	}

	if mimetype.Detect(data).Is("application/gzip") {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrCorruptBundle, err)
		}
		defer zr.Close()
		return DecodeBundle(zr)
	}
	return DecodeBundle(bytes.NewReader(data))
}

// DecodeBundle parses and validates a JSON artifact.
func DecodeBundle(r io.Reader) (*Bundle, error) {
	var file bundleFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrCorruptBundle, err)
	}
	if file.Vectorizer == nil {
		return nil, errors.ErrMissingVectorizer
	}
	if file.Classifier == nil {
		return nil, errors.ErrMissingClassifier
	}

	vectorizer, err := NewVectorizer(file.Vectorizer.Vocabulary, file.Vectorizer.IDF,
		file.Vectorizer.Norm, file.Vectorizer.SublinearTF)
	if err != nil {
		return nil, err
	}
	forest, err := NewForest(file.Classifier.NFeatures, file.Classifier.Classes, file.Classifier.Trees)
	if err != nil {
		return nil, err
	}
	return NewBundle(file.Version, vectorizer, forest)
}

func (b *Bundle) Version() string {
	return b.version
}

func (b *Bundle) Vectorizer() *Vectorizer {
	return b.vectorizer
}

func (b *Bundle) Forest() *Forest {
	return b.forest
}

// Consistent reports whether the vectorizer produces vectors of the width the forest was trained on.
// A mismatch is not rejected at load time: it surfaces on the first prediction.
func (b *Bundle) Consistent() bool {
	return b.vectorizer.Dimension() == b.forest.NFeatures()
}
