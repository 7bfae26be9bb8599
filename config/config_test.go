package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jjtimmons/pepclust/internal/align"
	"github.com/jjtimmons/pepclust/internal/peptide"
	"github.com/spf13/viper"
)

func TestLoad_defaults(t *testing.T) {
	c, err := Load(viper.New())
	if err != nil {
		t.Fatal(err)
	}

	if c.MinOverlap != 6 || c.Mode != "overlap" || c.SequenceField != "Sequence" || c.Filler != "." {
		t.Errorf("Load() = %+v, unexpected defaults", c)
	}
	if c.Workers < 1 {
		t.Errorf("Load() workers = %d, want at least 1", c.Workers)
	}
	if got := c.SortOrder(); !reflect.DeepEqual(got, peptide.DefaultOrder) {
		t.Errorf("Config.SortOrder() = %v, want %v", got, peptide.DefaultOrder)
	}
	if got := c.AlignOptions(); got != (align.Options{Filler: '.', Reference: align.Seed}) {
		t.Errorf("Config.AlignOptions() = %+v", got)
	}
}

func TestLoad_settingsFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	yaml := `min-overlap: 4
mode: subset
filler: "-"
reference: shortest
order:
  - sequence
strict: true
workers: 3
`
	if err := os.WriteFile(settings, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.Set("settings", settings)
	v.Set("min-overlap", 5) // flags win over the settings file

	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		MinOverlap:    5,
		Mode:          "subset",
		SequenceField: "Sequence",
		Filler:        "-",
		Reference:     "shortest",
		Order:         []string{"sequence"},
		Workers:       3,
		Strict:        true,
	}
	if !reflect.DeepEqual(c, want) {
		t.Errorf("Load() = %+v, want %+v", c, want)
	}
}

func TestLoad_missingSettingsFile(t *testing.T) {
	v := viper.New()
	v.Set("settings", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(v); err == nil {
		t.Error("Load() should fail without the settings file")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			MinOverlap: 6,
			Mode:       "overlap",
			Filler:     ".",
			Reference:  "seed",
			Workers:    1,
		}
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero overlap", func(c *Config) { c.MinOverlap = 0 }, false},
		{"negative overlap", func(c *Config) { c.MinOverlap = -1 }, true},
		{"unknown mode", func(c *Config) { c.Mode = "motif" }, true},
		{"long filler", func(c *Config) { c.Filler = ".." }, true},
		{"empty filler", func(c *Config) { c.Filler = "" }, true},
		{"unknown reference", func(c *Config) { c.Reference = "longest" }, true},
		{"unknown order", func(c *Config) { c.Order = []string{"mass"} }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
