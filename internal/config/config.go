package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsondom/internal/transform"
)

// Options controls how decoded JSON is re-emitted and reported.
type Options struct {
	// IndentWidth is the number of spaces per nesting level for indented
	// output. Ignored when Compact is set.
	IndentWidth int `yaml:"indent_width"`
	// Compact emits output with no layout whitespace.
	Compact bool `yaml:"compact"`
	// KeyStyle rewrites object keys before encoding. Empty means keys are
	// left alone. One of: camel, pascal, snake, kebab.
	KeyStyle string `yaml:"key_style"`
	// SortedReport lists the --stats key census alphabetically instead of
	// in first-seen order.
	SortedReport bool `yaml:"sorted_report"`
}

const maxIndentWidth = 16

// DefaultOptions returns the options used when no config file or flags
// override them.
func DefaultOptions() *Options {
	return &Options{
		IndentWidth: 2,
	}
}

// Validate checks option values, returning the first problem found.
func (o *Options) Validate() error {
	if o.IndentWidth < 0 || o.IndentWidth > maxIndentWidth {
		return fmt.Errorf("indent width %d out of range 0..%d", o.IndentWidth, maxIndentWidth)
	}
	if o.KeyStyle != "" {
		if _, err := transform.ParseKeyStyle(o.KeyStyle); err != nil {
			return err
		}
	}
	return nil
}

// LoadOptions loads options from a YAML file, starting from defaults.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return opts, nil
}

// FindOptionsFile searches for a config file in the current directory and
// its parents, returning the first match or "".
func FindOptionsFile() string {
	configNames := []string{".jsondom.yml", ".jsondom.yaml", "jsondom.yml", "jsondom.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// MergeCLI applies explicitly set CLI flags over file-loaded options.
// Flag values matching their CLI defaults leave the file values in place,
// except for booleans, which always win when set.
func (o *Options) MergeCLI(indentWidth int, compact bool, keyStyle string, sortedReport bool) {
	if indentWidth != DefaultOptions().IndentWidth {
		o.IndentWidth = indentWidth
	}
	if compact {
		o.Compact = true
	}
	if keyStyle != "" {
		o.KeyStyle = keyStyle
	}
	if sortedReport {
		o.SortedReport = true
	}
}

// Indent returns the indent unit string the encoder should use.
func (o *Options) Indent() string {
	indent := make([]byte, o.IndentWidth)
	for i := range indent {
		indent[i] = ' '
	}
	return string(indent)
}
