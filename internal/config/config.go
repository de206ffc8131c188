package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/quillcv/quill/internal/cv"
	"github.com/quillcv/quill/internal/output"
)

// DefaultFile is the config file name looked up in the working directory
// and in Dir().
const DefaultFile = "quill.yaml"

// Config is the resolved runtime configuration.
// Precedence: built-in defaults < quill.yaml < environment.
type Config struct {
	Token      string        `env:"NOTION_TOKEN"`
	DatabaseID string        `env:"NOTION_DATABASE_ID"`
	Template   string        `env:"QUILL_TEMPLATE"`
	OutFile    string        `env:"QUILL_OUT"`
	CacheFile  string        `env:"QUILL_CACHE"`
	CacheTTL   time.Duration `env:"QUILL_CACHE_TTL"`

	Properties cv.PropertyNames
	Categories cv.Categories
}

// fileConfig mirrors the quill.yaml schema.
type fileConfig struct {
	Template   string            `yaml:"template"`
	Out        string            `yaml:"out"`
	Cache      string            `yaml:"cache"`
	CacheTTL   string            `yaml:"cache_ttl"`
	Categories *cv.Categories    `yaml:"categories"`
	Properties *cv.PropertyNames `yaml:"properties"`
}

// Load resolves the configuration. file may be empty, in which case
// quill.yaml is looked up in the working directory and then in Dir();
// a missing config file is not an error.
func Load(file string) (*Config, error) {
	cfg := &Config{
		Template:   "cv_template.tex",
		OutFile:    "cv.tex",
		CacheFile:  "notion_cache.json",
		CacheTTL:   time.Hour,
		Properties: cv.DefaultPropertyNames(),
		Categories: cv.DefaultCategories(),
	}

	if err := cfg.applyFile(file); err != nil {
		return nil, err
	}

	// Environment wins over file values. Fields without a matching
	// variable are left untouched.
	if err := env.Parse(cfg); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse environment", err)
	}

	return cfg, nil
}

// Validate checks the fields the pipeline cannot run without.
func (c *Config) Validate() error {
	if c.Token == "" || c.DatabaseID == "" {
		return output.NewUserError("NOTION_TOKEN and NOTION_DATABASE_ID must be set (environment or .env file)")
	}
	return nil
}

// applyFile overlays quill.yaml values onto the defaults.
func (c *Config) applyFile(file string) error {
	path, ok := findFile(file)
	if !ok {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to read config file: "+path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return output.NewUserError("invalid config file " + path + ": " + err.Error())
	}

	if fc.Template != "" {
		c.Template = fc.Template
	}
	if fc.Out != "" {
		c.OutFile = fc.Out
	}
	if fc.Cache != "" {
		c.CacheFile = fc.Cache
	}
	if fc.CacheTTL != "" {
		ttl, err := time.ParseDuration(fc.CacheTTL)
		if err != nil {
			return output.NewUserError("invalid cache_ttl in " + path + ": " + err.Error())
		}
		c.CacheTTL = ttl
	}
	if fc.Categories != nil {
		c.Categories = *fc.Categories
	}
	if fc.Properties != nil {
		overlayProperties(&c.Properties, fc.Properties)
	}

	return nil
}

// findFile returns the config file path to use, if any. An explicit path
// is required to exist; the default locations are optional.
func findFile(file string) (string, bool) {
	if file != "" {
		return file, true
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, true
	}
	if dir := Dir(); dir != "" {
		global := filepath.Join(dir, DefaultFile)
		if _, err := os.Stat(global); err == nil {
			return global, true
		}
	}
	return "", false
}

// overlayProperties copies non-empty property names, keeping defaults for
// anything the file leaves out.
func overlayProperties(dst *cv.PropertyNames, src *cv.PropertyNames) {
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Organization != "" {
		dst.Organization = src.Organization
	}
	if src.Location != "" {
		dst.Location = src.Location
	}
	if src.Category != "" {
		dst.Category = src.Category
	}
	if src.StartDate != "" {
		dst.StartDate = src.StartDate
	}
	if src.EndDate != "" {
		dst.EndDate = src.EndDate
	}
	if src.DateOverride != "" {
		dst.DateOverride = src.DateOverride
	}
	if src.Visible != "" {
		dst.Visible = src.Visible
	}
}
