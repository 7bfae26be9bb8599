// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/jjtimmons/pepclust/internal/align"
	"github.com/jjtimmons/pepclust/internal/peptide"
	"github.com/jjtimmons/pepclust/internal/relate"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// the minimum suffix/prefix overlap between two peptides in overlap mode
	MinOverlap int `mapstructure:"min-overlap"`

	// "overlap" or "subset"
	Mode string `mapstructure:"mode"`

	// the name of the input column with each peptide's sequence
	SequenceField string `mapstructure:"sequence-field"`

	// the character aligned sequences are padded with
	Filler string `mapstructure:"filler"`

	// "seed" or "shortest", the member alignments are relative to
	Reference string `mapstructure:"reference"`

	// sort keys for the processing order, most significant first
	Order []string `mapstructure:"order"`

	// whether to collapse peptides with the same sequence
	Unique bool `mapstructure:"unique"`

	// the number of goroutines to find overlaps with
	Workers int `mapstructure:"workers"`

	// whether a group that fails to align stops the run
	Strict bool `mapstructure:"strict"`

	// whether to log progress
	Verbose bool `mapstructure:"verbose"`
}

// setDefaults registers the default value of every setting.
func setDefaults(v *viper.Viper) {
	v.SetDefault("min-overlap", 6)
	v.SetDefault("mode", string(relate.Overlap))
	v.SetDefault("sequence-field", "Sequence")
	v.SetDefault("filler", ".")
	v.SetDefault("reference", string(align.Seed))
	v.SetDefault("order", []string{string(peptide.Length), string(peptide.Lexical)})
	v.SetDefault("unique", false)
	v.SetDefault("workers", 0)
	v.SetDefault("strict", false)
	v.SetDefault("verbose", false)
}

// New returns a new Config struct populated by Viper settings (either
// from the settings file, if one was passed, and/or command line arguments).
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		stderr.Fatalf("failed to load settings: %v", err)
	}
	return c
}

// Load reads a Config from v, layering its settings file (if "settings"
// is set) and bound flags over the defaults.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if c.MinOverlap < 0 {
		return fmt.Errorf("min-overlap must not be negative, got %d", c.MinOverlap)
	}
	if _, err := relate.ParseMode(c.Mode); err != nil {
		return err
	}
	if len(c.Filler) != 1 {
		return fmt.Errorf("filler must be a single character, got %q", c.Filler)
	}
	if r := align.Reference(c.Reference); r != align.Seed && r != align.Shortest {
		return fmt.Errorf("unknown reference %q, expected %q or %q", c.Reference, align.Seed, align.Shortest)
	}
	if _, err := peptide.ParseOrder(c.Order); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// AlignOptions returns the alignment settings.
func (c *Config) AlignOptions() align.Options {
	return align.Options{
		Filler:    c.Filler[0],
		Reference: align.Reference(c.Reference),
	}
}

// SortOrder returns the registry's sort order.
func (c *Config) SortOrder() peptide.Order {
	order, _ := peptide.ParseOrder(c.Order)
	return order
}
