package ai

import (
	"bytes"
	"os"
	"path/filepath"
	"review-verify/errors"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

const fixture = "testdata/bundle.json"

func TestLoadBundle(t *testing.T) {
	req := require.New(t)

	bundle, err := LoadBundle(fixture)
	req.NoError(err)
	req.Equal("test-forest-1", bundle.Version())
	req.Equal(5, bundle.Vectorizer().Dimension())
	req.Equal(5, bundle.Forest().NFeatures())
	req.Equal([]int{0, 1}, bundle.Forest().Classes())
	req.True(bundle.Consistent())
}

func TestLoadBundle_Gzip(t *testing.T) {
	req := require.New(t)
	raw, err := os.ReadFile(fixture)
	req.NoError(err)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(raw)
	req.NoError(err)
	req.NoError(zw.Close())

	// The extension says nothing about compression on purpose.
	path := filepath.Join(t.TempDir(), "model.bin")
	req.NoError(os.WriteFile(path, buf.Bytes(), 0o600))

	bundle, err := LoadBundle(path)
	req.NoError(err)
	req.Equal("test-forest-1", bundle.Version())
}

func TestLoadBundle_Missing(t *testing.T) {
	_, err := LoadBundle(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeBundle_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected error
	}{
		{"Not JSON", "model.pkl", errors.ErrCorruptBundle},
		{"Truncated", `{"vectorizer": {"vocabulary": {"ab": 0}`, errors.ErrCorruptBundle},
		{"Missing vectorizer", `{"classifier": {"n_features": 1, "classes": [0, 1], "trees": []}}`, errors.ErrMissingVectorizer},
		{"Missing classifier", `{"vectorizer": {"vocabulary": {"ab": 0}, "idf": [1]}}`, errors.ErrMissingClassifier},
		{
			"Empty forest",
			`{"vectorizer": {"vocabulary": {"ab": 0}, "idf": [1]}, "classifier": {"n_features": 1, "classes": [0, 1], "trees": []}}`,
			errors.ErrMissingClassifier,
		},
		{
			"Idf size mismatch",
			`{"vectorizer": {"vocabulary": {"ab": 0}, "idf": [1, 2]},
			  "classifier": {"n_features": 1, "classes": [0, 1], "trees": [{"nodes": [{"left": -1, "right": -1, "value": [1, 0]}]}]}}`,
			errors.ErrCorruptBundle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBundle(strings.NewReader(tt.payload))
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestBundle_Inconsistent(t *testing.T) {
	req := require.New(t)
	bundle, err := DecodeBundle(strings.NewReader(`{
		"vectorizer": {"vocabulary": {"ab": 0, "cd": 1}, "idf": [1, 1]},
		"classifier": {"n_features": 3, "classes": [0, 1], "trees": [{"nodes": [{"left": -1, "right": -1, "value": [1, 0]}]}]}
	}`))
	req.NoError(err, "dimension agreement is checked when predicting")
	req.False(bundle.Consistent())
}

func TestNewBundle_MissingParts(t *testing.T) {
	req := require.New(t)
	forest, err := NewForest(1, []int{0, 1}, []Tree{stump()})
	req.NoError(err)

	_, err = NewBundle("v", nil, forest)
	req.ErrorIs(err, errors.ErrMissingVectorizer)

	v, err := NewVectorizer(map[string]int{"ab": 0}, []float64{1}, NormL2, false)
	req.NoError(err)
	_, err = NewBundle("v", v, nil)
	req.ErrorIs(err, errors.ErrMissingClassifier)
}
