package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "python", "python", 1.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"both empty", "", "", 0.0},
		{"one empty", "python", "", 0.0},
		// matching block "bcd" of length 3 over total length 8
		{"partial overlap", "abcd", "bcde", 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"pandas", "panda"},
		{"javascript", "typescript"},
		{"kubernetes", "kubernetis"},
	}
	for _, p := range pairs {
		assert.InDelta(t, similarity(p[0], p[1]), similarity(p[1], p[0]), 1e-9, "%s vs %s", p[0], p[1])
	}
}

func TestClosestMatch(t *testing.T) {
	candidates := []string{"python", "javascript", "kubernetes", "sql"}

	assert.Equal(t, "python", closestMatch("pythn", candidates, 0.86))
	assert.Equal(t, "kubernetes", closestMatch("kubernets", candidates, 0.86))

	// nothing qualifies below the cutoff
	assert.Equal(t, "", closestMatch("haskell", candidates, 0.86))
	assert.Equal(t, "", closestMatch("pythn", nil, 0.86))
}

func TestClosestMatch_Deterministic(t *testing.T) {
	// two equally similar candidates: the lexicographically smaller wins
	// regardless of input order
	a := closestMatch("dat", []string{"data", "date"}, 0.5)
	b := closestMatch("dat", []string{"date", "data"}, 0.5)
	assert.Equal(t, a, b)
	assert.Equal(t, "data", a)
}
