package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/diploma/internal/config"
	"github.com/aretw0/diploma/internal/generator"
	"github.com/aretw0/diploma/pkg/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "saves", cfg.SavesDir)
	assert.Equal(t, []config.ThemeConfig{
		{Name: "Smart recommendation system", Complexity: 2},
		{Name: "Neural network optimization", Complexity: 3},
		{Name: "Knowledge base assistant", Complexity: 1},
	}, cfg.Themes)
	assert.Equal(t, []string{"Dr. Ivanov", "Dr. Petrov", "Dr. Sidorov"}, cfg.Supervisors)
	assert.Equal(t, 80, cfg.Student.Stamina)
	assert.Equal(t, 90, cfg.Diploma.Quality)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultCatalog(), catalog)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeFile(t, "diploma.yaml", `
saves_dir: /tmp/diploma-saves
supervisors:
  - Dr. Knuth
student:
  stamina: 100
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/diploma-saves", cfg.SavesDir)
	assert.Equal(t, []string{"Dr. Knuth"}, cfg.Supervisors)
	assert.Equal(t, 100, cfg.Student.Stamina)
	assert.Equal(t, 0, cfg.Student.AnswerSkill)
	assert.Equal(t, 90, cfg.Diploma.Quality, "untouched keys keep defaults")
	assert.Len(t, cfg.Themes, 3)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "diploma.json", `{"themes": [{"name": "Compilers", "complexity": 3}]}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	require.Len(t, catalog.Themes, 1)
	assert.Equal(t, "Compilers", catalog.Themes[0].Name())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{"broken yaml", "themes: [", nil},
		{"bad complexity", "themes:\n  - name: X\n    complexity: 7\n", domain.ErrValidation},
		{"empty theme name", "themes:\n  - name: ''\n    complexity: 1\n", domain.ErrValidation},
		{"empty supervisors", "supervisors: []\n", nil},
		{"blank supervisor", "supervisors: ['']\n", nil},
		{"stamina out of range", "student:\n  stamina: 150\n", domain.ErrValidation},
		{"quality out of range", "diploma:\n  quality: -1\n", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "diploma.yaml", tt.content))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
