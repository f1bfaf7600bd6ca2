// internal/settings/settings_test.go
package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fragfilter/internal/output"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.True(t, s.Header)
	assert.Equal(t, output.Defaults{}, s.Defaults)
}

func TestLoadFullFile(t *testing.T) {
	p := writeFile(t, `
defaults:
  reference: "*"
  strand: "."
  position: -1
  cigar: "*"
output:
  header: false
`)
	s, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, output.Defaults{Reference: "*", Strand: ".", Position: -1, Cigar: "*"}, s.Defaults)
	assert.False(t, s.Header)
}

func TestLoadPartialFileKeepsHeaderOn(t *testing.T) {
	p := writeFile(t, "defaults:\n  reference: chrUn\n")
	s, err := Load(p)
	require.NoError(t, err)
	assert.True(t, s.Header)
	assert.Equal(t, "chrUn", s.Defaults.Reference)
	assert.Zero(t, s.Defaults.Position)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read settings")
}

func TestLoadBadYAMLErrors(t *testing.T) {
	p := writeFile(t, "defaults: [not a map\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings")
}
