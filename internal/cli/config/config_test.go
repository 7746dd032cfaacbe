package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "lustre.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("category", "", "")
	fs.String("team", "", "")
	fs.String("state", "", "")
	fs.Int("port", 0, "")
	fs.Bool("verbose", false, "")
	fs.String("output", "", "")
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer ResetConfig()
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultCategory, cfg.InitialCategory)
	assert.Equal(t, DefaultTeam, cfg.InitialTeam)
	assert.Equal(t, DefaultIntroStore, cfg.IntroStore)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.True(t, filepath.IsAbs(cfg.StatePath))
	assert.True(t, strings.HasSuffix(cfg.StatePath, filepath.Join(".lustre", "state.db")), cfg.StatePath)

	ui := cfg.GetUIConfig()
	assert.Equal(t, 8765, ui.Port)
	assert.Equal(t, 30*time.Minute, ui.IdleTimeout)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_Precedence(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		env          map[string]string
		flags        []string
		wantCategory string
		wantTeam     string
		wantPort     int
	}{
		{
			name:         "file overrides defaults",
			file:         "initial_category: Orders\ninitial_team: Atelier East\nui:\n  port: 9000\n",
			wantCategory: "Orders",
			wantTeam:     "Atelier East",
			wantPort:     9000,
		},
		{
			name:         "env overrides file",
			file:         "initial_category: Orders\n",
			env:          map[string]string{"LUSTRE_INITIAL_CATEGORY": "CRM", "LUSTRE_UI__PORT": "9100"},
			wantCategory: "CRM",
			wantTeam:     DefaultTeam,
			wantPort:     9100,
		},
		{
			name:         "flags override env",
			env:          map[string]string{"LUSTRE_INITIAL_TEAM": "From Env"},
			flags:        []string{"--team", "From Flag", "--category", "Workspace", "--port", "9200"},
			wantCategory: "Workspace",
			wantTeam:     "From Flag",
			wantPort:     9200,
		},
		{
			name:         "values are taken verbatim",
			env:          map[string]string{"LUSTRE_INITIAL_CATEGORY": "not a real department"},
			wantCategory: "not a real department",
			wantTeam:     DefaultTeam,
			wantPort:     8765,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer ResetConfig()
			dir := t.TempDir()
			chdir(t, dir)

			if tt.file != "" {
				writeConfig(t, dir, tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			flags := newFlags()
			require.NoError(t, flags.Parse(tt.flags))

			cfg, err := LoadConfig("", flags)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCategory, cfg.InitialCategory)
			assert.Equal(t, tt.wantTeam, cfg.InitialTeam)
			assert.Equal(t, tt.wantPort, cfg.GetUIConfig().Port)
		})
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	defer ResetConfig()
	chdir(t, t.TempDir())

	projectDir := t.TempDir()
	path := writeConfig(t, projectDir, "state_path: data/state.db\nui:\n  idle_timeout: 5m\n")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, filepath.Join(projectDir, "data", "state.db"), cfg.StatePath)
	assert.Equal(t, 5*time.Minute, cfg.GetUIConfig().IdleTimeout)
}

func TestLoadConfig_FindsProjectUpward(t *testing.T) {
	defer ResetConfig()
	root := t.TempDir()
	writeConfig(t, root, "initial_team: Upstairs\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	chdir(t, nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "Upstairs", cfg.InitialTeam)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		cfgFile   string
		errSubstr string
	}{
		{
			name:      "missing explicit file",
			cfgFile:   "does-not-exist.yaml",
			errSubstr: "does-not-exist.yaml",
		},
		{
			name:      "bad yaml",
			file:      "initial_team: [unclosed\n",
			errSubstr: "error reading config file",
		},
		{
			name:      "bad intro store",
			file:      "intro_store: redis\n",
			errSubstr: "invalid intro_store",
		},
		{
			name:      "bad output",
			file:      "output: xml\n",
			errSubstr: "invalid output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer ResetConfig()
			dir := t.TempDir()
			chdir(t, dir)
			if tt.file != "" {
				writeConfig(t, dir, tt.file)
			}

			_, err := LoadConfig(tt.cfgFile, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory store without state path", Config{IntroStore: "memory"}, false},
		{"sqlite store needs state path", Config{IntroStore: "sqlite"}, true},
		{"sqlite with path", Config{IntroStore: "sqlite", StatePath: "x.db"}, false},
		{"port out of range", Config{IntroStore: "memory", UI: &UIConfig{Port: 70000}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "initial_category", envKey("LUSTRE_INITIAL_CATEGORY"))
	assert.Equal(t, "ui.idle_timeout", envKey("LUSTRE_UI__IDLE_TIMEOUT"))
}

func TestGetLogger_Fallback(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := NewLogger(true)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
