package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleWithoutReplacement(t *testing.T) {
	prng := NewPRNGService(42)
	items := []string{"a", "b", "c", "d", "e", "f"}

	for i := 0; i < 50; i++ {
		got := prng.Sample(items, 3)
		assert.Len(t, got, 3)
		seen := map[string]bool{}
		for _, id := range got {
			assert.False(t, seen[id], "duplicate %q in %v", id, got)
			seen[id] = true
			assert.Contains(t, items, id)
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, items, "input must not be reordered")
}

func TestSampleSmallCatalog(t *testing.T) {
	prng := NewPRNGService(1)
	assert.ElementsMatch(t, []string{"x", "y"}, prng.Sample([]string{"x", "y"}, 3))
	assert.Empty(t, prng.Sample(nil, 3))
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uniform(250, 400), b.Uniform(250, 400))
	}
	assert.Equal(t, int64(7), a.Seed())
}

func TestUniformRange(t *testing.T) {
	prng := NewPRNGService(3)
	for i := 0; i < 100; i++ {
		v := prng.Uniform(250, 400)
		assert.GreaterOrEqual(t, v, 250.0)
		assert.Less(t, v, 400.0)
	}
}

func TestTickDownAndClamp(t *testing.T) {
	assert.Equal(t, 0.0, TickDown(0.1, 0.5))
	assert.InDelta(t, 0.4, TickDown(0.5, 0.1), 1e-12)
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 2.5, Lerp(0, 5, 0.5))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, -90, NormalizeAngle(270), 1e-9)
	assert.InDelta(t, 180, NormalizeAngle(-180), 1e-9)
	assert.InDelta(t, 10, NormalizeAngle(370), 1e-9)
}
