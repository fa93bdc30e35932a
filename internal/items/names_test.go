package items

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	n := Embedded()
	require.NotNil(t, n)
	assert.Greater(t, n.Len(), 0)

	name, ok := n.Lookup(13468)
	assert.True(t, ok)
	assert.Equal(t, "Black Lotus", name)

	name, ok = n.Lookup(2589)
	assert.True(t, ok)
	assert.Equal(t, "Linen Cloth", name)
}

func TestLookupMissing(t *testing.T) {
	n := Embedded()
	name, ok := n.Lookup(-1)
	assert.False(t, ok)
	assert.Empty(t, name)

	var empty *Names
	_, ok = empty.Lookup(13468)
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())
}

func TestParseSkipsMalformedRows(t *testing.T) {
	data := strings.Join([]string{
		"ID,a,b,c,d,e,Display_lang",
		"100,,,,,,Good Item",
		"abc,,,,,,Bad Id",
		"101,,,short row",
		"102,,,,,,\"Quoted, Name\"",
		"",
		"103,,,,,,Last Item,extra,columns",
	}, "\n")

	n, err := Parse(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 3, n.Len())

	name, ok := n.Lookup(100)
	assert.True(t, ok)
	assert.Equal(t, "Good Item", name)

	_, ok = n.Lookup(101)
	assert.False(t, ok)

	name, _ = n.Lookup(102)
	assert.Equal(t, "Quoted, Name", name)

	name, _ = n.Lookup(103)
	assert.Equal(t, "Last Item", name)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded data", func(t *testing.T) {
		n, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Embedded().Len(), n.Len())
	})

	t.Run("external file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.csv")
		content := "ID,a,b,c,d,e,Display_lang\n42,,,,,,Answer\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		n, err := Load(path)
		require.NoError(t, err)
		name, ok := n.Lookup(42)
		assert.True(t, ok)
		assert.Equal(t, "Answer", name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}
