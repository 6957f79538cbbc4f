package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forge/internal/config"
	"github.com/katalvlaran/forge/prototype"
	"github.com/katalvlaran/forge/singleton"
)

const sample = `version: 1.2.0
guard:
  dsn: replica
prototypes:
  - tag: Dragon
    name: Smaug
    category: Dragon
    family: Evil
    accessoryB: Scales
    traits:
      hp: "900"
      hoard: gold
  - tag: Orc
    name: Bolg
    category: Orc
    family: Evil
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, "replica", cfg.Guard.DSN)
	require.Len(t, cfg.Prototypes, 2)
	assert.Equal(t, map[string]string{"hp": "900", "hoard": "gold"}, cfg.Prototypes[0].Traits)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_VersionGate(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "lower bound", version: "1.0.0"},
		{name: "minor", version: "1.9.3"},
		{name: "missing", version: "", wantErr: true},
		{name: "too old", version: "0.9.0", wantErr: true},
		{name: "too new", version: "2.0.0", wantErr: true},
		{name: "malformed", version: "one", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte("version: \"" + tt.version + "\"\n"))
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrUnsupportedVersion)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParse_DefaultDSN(t *testing.T) {
	cfg, err := config.Parse([]byte("version: 1.0.0\n"))
	require.NoError(t, err)
	assert.Equal(t, singleton.DefaultDSN, cfg.Guard.DSN)
	assert.Empty(t, cfg.Prototypes)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte("version: 1.0.0\nsingleton: true\n"))
	assert.Error(t, err)
}

func TestParse_InvalidPrototype(t *testing.T) {
	tests := map[string]string{
		"no tag":      "  - name: A\n    category: B\n",
		"no name":     "  - tag: A\n    category: B\n",
		"no category": "  - tag: A\n    name: B\n",
		"empty trait": "  - tag: A\n    name: B\n    category: C\n    traits:\n      \"\": x\n",
	}
	for name, entry := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte("version: 1.0.0\nprototypes:\n" + entry))
			require.ErrorIs(t, err, config.ErrInvalidPrototype)
			assert.Contains(t, err.Error(), "prototypes[0]")
		})
	}
}

func TestConfig_NewRegistry(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	r, err := cfg.NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dragon", prototype.TagMage, prototype.TagOrc, prototype.TagWarrior}, r.Tags())

	dragon, err := r.Create("Dragon")
	require.NoError(t, err)
	assert.Equal(t, "Smaug", dragon.Name())
	assert.Equal(t, "Scales", dragon.AccessoryB())
	hp, ok := dragon.Trait("hp")
	require.True(t, ok)
	assert.Equal(t, "900", hp)

	orc, err := r.Create(prototype.TagOrc)
	require.NoError(t, err)
	assert.Equal(t, "Bolg", orc.Name(), "configured entry replaces the catalog one")
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	r, err := cfg.NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
}
