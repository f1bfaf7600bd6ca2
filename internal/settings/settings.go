// internal/settings/settings.go

// Package settings loads the optional YAML settings file: default values for
// the placement columns of unaligned rows, plus output toggles.
package settings

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"fragfilter/internal/output"
)

// Settings is the resolved settings tree with file values applied on top of
// the built-in defaults.
type Settings struct {
	Defaults output.Defaults
	Header   bool
}

// yamlSettings mirrors the file layout:
//
//	defaults:
//	  reference: "*"
//	  strand: ""
//	  position: 0
//	  cigar: "*"
//	output:
//	  header: true
type yamlSettings struct {
	Defaults yamlDefaults `yaml:"defaults"`
	Output   yamlOutput   `yaml:"output"`
}

type yamlDefaults struct {
	Reference string `yaml:"reference"`
	Strand    string `yaml:"strand"`
	Position  int    `yaml:"position"`
	Cigar     string `yaml:"cigar"`
}

type yamlOutput struct {
	Header *bool `yaml:"header"`
}

// Default returns the settings used when no file is given: empty placement
// defaults and a header line.
func Default() Settings {
	return Settings{Header: true}
}

// Load reads and maps the settings file. An empty path yields Default().
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "read settings")
	}
	var dto yamlSettings
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return s, errors.Wrapf(err, "parse settings %s", path)
	}
	s.Defaults = output.Defaults(dto.Defaults)
	if dto.Output.Header != nil {
		s.Header = *dto.Output.Header
	}
	return s, nil
}
