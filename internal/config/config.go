// Package config loads the simulator settings from a YAML (or JSON) file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/diploma/internal/generator"
	"github.com/aretw0/diploma/pkg/domain"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "diploma.yaml"

// ThemeConfig is one entry of the theme lookup table.
type ThemeConfig struct {
	Name       string `yaml:"name" json:"name"`
	Complexity int    `yaml:"complexity" json:"complexity"`
}

// StudentConfig holds the starting stats of a new student.
type StudentConfig struct {
	Stamina     int `yaml:"stamina" json:"stamina"`
	AnswerSkill int `yaml:"answer_skill" json:"answer_skill"`
}

// DiplomaConfig holds the starting stats of a new thesis.
type DiplomaConfig struct {
	Quality int `yaml:"quality" json:"quality"`
}

// Config represents the structure of diploma.yaml.
type Config struct {
	SavesDir    string        `yaml:"saves_dir" json:"saves_dir"`
	Themes      []ThemeConfig `yaml:"themes" json:"themes"`
	Supervisors []string      `yaml:"supervisors" json:"supervisors"`
	Student     StudentConfig `yaml:"student" json:"student"`
	Diploma     DiplomaConfig `yaml:"diploma" json:"diploma"`
}

// Default returns the built-in settings.
func Default() Config {
	catalog := generator.DefaultCatalog()
	themes := make([]ThemeConfig, 0, len(catalog.Themes))
	for _, t := range catalog.Themes {
		themes = append(themes, ThemeConfig{Name: t.Name(), Complexity: t.Complexity()})
	}
	return Config{
		SavesDir:    "saves",
		Themes:      themes,
		Supervisors: catalog.Supervisors,
		Student: StudentConfig{
			Stamina:     catalog.Stamina,
			AnswerSkill: catalog.AnswerSkill,
		},
		Diploma: DiplomaConfig{Quality: catalog.Quality},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value; a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if _, err := cfg.Catalog(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Catalog validates the lookup tables and starting stats and converts them
// for the generator.
func (c Config) Catalog() (generator.Catalog, error) {
	if len(c.Themes) == 0 {
		return generator.Catalog{}, errors.New("at least one theme is required")
	}
	if len(c.Supervisors) == 0 {
		return generator.Catalog{}, errors.New("at least one supervisor is required")
	}

	themes := make([]domain.Theme, 0, len(c.Themes))
	for i, t := range c.Themes {
		theme, err := domain.NewTheme(t.Name, t.Complexity)
		if err != nil {
			return generator.Catalog{}, fmt.Errorf("themes[%d]: %w", i, err)
		}
		themes = append(themes, theme)
	}
	for i, name := range c.Supervisors {
		if name == "" {
			return generator.Catalog{}, fmt.Errorf("supervisors[%d]: name must be a non-empty string", i)
		}
	}

	if _, err := domain.NewStudent("student", domain.MinLevel, c.Student.Stamina, c.Student.AnswerSkill); err != nil {
		return generator.Catalog{}, err
	}
	if _, err := domain.NewDiplomaProject(domain.MinPct, c.Diploma.Quality, themes[0]); err != nil {
		return generator.Catalog{}, err
	}

	catalog := generator.Catalog{
		Themes:      themes,
		Supervisors: append([]string(nil), c.Supervisors...),
		Stamina:     c.Student.Stamina,
		AnswerSkill: c.Student.AnswerSkill,
		Quality:     c.Diploma.Quality,
	}
	return catalog, nil
}
