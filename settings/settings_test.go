package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sodatea/berry/pretty"
	"github.com/sodatea/berry/settings"
)

func TestParsesStyleOverrides(t *testing.T) {
	raw := []byte(`
progress:
  style: blocks
  styles:
    - name: blocks
      filled: "#"
      empty: "."
      size: 40
`)
	sut, err := settings.FromBytes(raw)
	require.NoError(t, err)

	selected := sut.Apply()
	assert.Equal(t, "blocks", selected)

	style := pretty.LookupBarStyle("blocks")
	assert.Equal(t, "#", style.Filled)
	assert.Equal(t, ".", style.Empty)
	assert.Equal(t, 40, style.Size)
}

func TestMissingFileYieldsEmptySettings(t *testing.T) {
	sut, err := settings.LoadFile("does/not/exist.yaml")
	require.NoError(t, err)
	assert.Empty(t, sut.Apply())
}

func TestRejectsBrokenYaml(t *testing.T) {
	_, err := settings.FromBytes([]byte("progress: [broken"))
	assert.Error(t, err)
}
