package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config search location at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)
	t.Setenv(ConfigPathEnv, "")
	t.Setenv("PMPLAN_RANKING_DEFAULT_SORT", "")
	t.Setenv("PMPLAN_OUTPUT_FORMAT", "")
	t.Setenv("PMPLAN_BACKLOG_PATH", "")
	return tmpDir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "impact", cfg.Ranking.DefaultSort)
	assert.Equal(t, 0, cfg.Ranking.Top)
	assert.True(t, cfg.Ranking.UseGoals)
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.Equal(t, 48, cfg.Output.TruncateLength)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Backlog.Path)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:   "json output",
			mutate: func(c *Config) { c.Output.Format = FormatJSON },
		},
		{
			name:    "bad sort key",
			mutate:  func(c *Config) { c.Ranking.DefaultSort = "size" },
			wantErr: "ranking.default_sort",
		},
		{
			name:    "negative top",
			mutate:  func(c *Config) { c.Ranking.Top = -1 },
			wantErr: "ranking.top",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "output.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoader_LoadFromFile(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "test-config.yaml")

	configContent := `
backlog:
  path: /data/backlog.yaml
ranking:
  default_sort: priority
  top: 10
  use_goals: false
output:
  truncate_length: 30
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := NewLoader().LoadFromFile(configPath)

	require.NoError(t, err)
	assert.Equal(t, "/data/backlog.yaml", cfg.Backlog.Path)
	assert.Equal(t, "priority", cfg.Ranking.DefaultSort)
	assert.Equal(t, 10, cfg.Ranking.Top)
	assert.False(t, cfg.Ranking.UseGoals)
	assert.Equal(t, 30, cfg.Output.TruncateLength)
	// untouched keys keep defaults
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_LoadFromFile_DifferentExtension(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "config.json")

	jsonContent := `{"output": {"format": "json"}}`
	require.NoError(t, os.WriteFile(configPath, []byte(jsonContent), 0644))

	cfg, err := NewLoader().LoadFromFile(configPath)

	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoader_LoadFromFile_NonExistent(t *testing.T) {
	isolate(t)

	cfg, err := NewLoader().LoadFromFile("/nonexistent/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoader_LoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "invalid.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ranking: [unclosed"), 0644))

	cfg, err := NewLoader().LoadFromFile(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoader_LoadFromFile_InvalidValue(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ranking:\n  default_sort: velocity\n"), 0644))

	cfg, err := NewLoader().LoadFromFile(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "velocity")
}

func TestLoader_Load_DefaultsWithNoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_Load_DiscoversLocalFile(t *testing.T) {
	tmpDir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "pmplan.yaml"), []byte("ranking:\n  default_sort: title\n"), 0644))

	cfg, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, "title", cfg.Ranking.DefaultSort)
}

func TestLoader_Load_WithConfigPathEnv(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "custom-config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: debug\n"), 0644))
	t.Setenv(ConfigPathEnv, configPath)

	cfg, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_EnvOverridesTakePrecedence(t *testing.T) {
	tmpDir := isolate(t)
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ranking:\n  default_sort: title\n"), 0644))
	t.Setenv(ConfigPathEnv, configPath)
	t.Setenv("PMPLAN_RANKING_DEFAULT_SORT", "recent")
	t.Setenv("PMPLAN_OUTPUT_FORMAT", "json")

	cfg, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, "recent", cfg.Ranking.DefaultSort)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestMustLoad_Success(t *testing.T) {
	isolate(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

func TestConfigDir(t *testing.T) {
	configDir, err := ConfigDir()
	require.NoError(t, err)
	assert.Contains(t, configDir, "pmplan")
}

func TestDefaultConfigPath(t *testing.T) {
	configPath, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Contains(t, configPath, "pmplan")
	assert.Contains(t, configPath, "config.yaml")
}

func TestEnsureConfigDir(t *testing.T) {
	tmpDir := isolate(t)

	require.NoError(t, EnsureConfigDir())

	info, err := os.Stat(filepath.Join(tmpDir, "xdg", "pmplan"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
