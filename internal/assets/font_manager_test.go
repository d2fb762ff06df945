package assets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontManagerCachesFaces(t *testing.T) {
	m, err := NewFontManager("")
	require.NoError(t, err)
	defer m.Close()

	small := m.Face(12)
	require.NotNil(t, small)
	assert.Same(t, small, m.Face(12))
	assert.NotSame(t, small, m.Face(24))
	assert.Greater(t, m.Face(24).Metrics().Height, small.Metrics().Height)
}

func TestFontManagerMissingFile(t *testing.T) {
	_, err := NewFontManager(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}
