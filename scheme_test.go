package sortnet_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/sortnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScheme_TextRoundTrip parses every canonical name back to its scheme.
func TestScheme_TextRoundTrip(t *testing.T) {
	for _, s := range sortnet.Schemes() {
		text, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s.String(), string(text))

		var back sortnet.Scheme
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}
}

// TestParseScheme_Aliases accepts the snake_case names and mixed case.
func TestParseScheme_Aliases(t *testing.T) {
	tests := map[string]sortnet.Scheme{
		"bose_nelson_sort":       sortnet.BoseNelson,
		"batcher_odd_even_merge": sortnet.BatcherOddEvenMerge,
		"bitonic_merge":          sortnet.BitonicMerge,
		"size_optimized_sort":    sortnet.SizeOptimized,
		"insertion_sort":         sortnet.Insertion,
		"bubble_sort":            sortnet.Bubble,
		"  Batcher ":             sortnet.BatcherOddEvenMerge,
		"SIZE-OPTIMIZED":         sortnet.SizeOptimized,
	}
	for name, want := range tests {
		got, err := sortnet.ParseScheme(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

// TestParseScheme_Unknown rejects names and values outside the set.
func TestParseScheme_Unknown(t *testing.T) {
	_, err := sortnet.ParseScheme("quicksort")
	require.ErrorIs(t, err, sortnet.ErrUnknownScheme)

	bad := sortnet.Scheme(42)
	assert.False(t, bad.Valid())
	assert.Equal(t, "Scheme(42)", bad.String())
	_, err = bad.MarshalText()
	require.ErrorIs(t, err, sortnet.ErrUnknownScheme)
}

// TestScheme_JSON uses the text form inside JSON documents.
func TestScheme_JSON(t *testing.T) {
	raw, err := json.Marshal(map[string]sortnet.Scheme{"scheme": sortnet.BoseNelson})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scheme":"bose-nelson"}`, string(raw))

	var doc struct{ Scheme sortnet.Scheme }
	require.NoError(t, json.Unmarshal([]byte(`{"Scheme":"bitonic"}`), &doc))
	assert.Equal(t, sortnet.BitonicMerge, doc.Scheme)
}
