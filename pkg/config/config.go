package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. DOCSWEEP_CONTENT_DIR.
const EnvPrefix = "DOCSWEEP"

// ProjectConfigFiles are looked up, in order, in the project root.
var ProjectConfigFiles = []string{".docsweep.yaml", ".docsweep.yml"}

// Config describes the project layout docsweep inspects. The zero-config
// defaults match an Astro/Starlight site.
type Config struct {
	Navigation NavigationConfig `mapstructure:"navigation" yaml:"navigation"`
	Content    ContentConfig    `mapstructure:"content" yaml:"content"`
	Assets     AssetsConfig     `mapstructure:"assets" yaml:"assets"`
	References ReferencesConfig `mapstructure:"references" yaml:"references"`
	Typos      TyposConfig      `mapstructure:"typos" yaml:"typos"`
	// Exclude holds doublestar globs, relative to the project root, that are
	// skipped by every walk.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// Source is the config file that was applied, empty for pure defaults.
	Source string `mapstructure:"-" yaml:"-"`
}

// NavigationConfig locates the sidebar declaration
type NavigationConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// ContentConfig locates the documentation pages
type ContentConfig struct {
	Dir        string   `mapstructure:"dir" yaml:"dir"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
	// Index is the page path that is routed implicitly and never reported dead.
	Index string `mapstructure:"index" yaml:"index"`
}

// AssetsConfig controls the unused-asset check
type AssetsConfig struct {
	Roots      []string `mapstructure:"roots" yaml:"roots"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
	// AllFiles treats every file under an asset root as an asset.
	AllFiles bool `mapstructure:"all_files" yaml:"all_files"`
	// Implicit names are used by convention (browsers, crawlers) and never
	// reported, matched by substring against the asset path.
	Implicit []string `mapstructure:"implicit" yaml:"implicit"`
	// StripPrefixes are removed (first occurrence) from a reference before
	// testing whether the asset path contains it.
	StripPrefixes []string `mapstructure:"strip_prefixes" yaml:"strip_prefixes"`
}

// ReferencesConfig controls where asset references are searched for
type ReferencesConfig struct {
	Dirs []string `mapstructure:"dirs" yaml:"dirs"`
	// ScanRoot also reads matching files directly in the project root
	// (non-recursive), which is where the site config lives.
	ScanRoot   bool     `mapstructure:"scan_root" yaml:"scan_root"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
	// RespectIgnore additionally skips .gitignore and .docsweepignore
	// matches. node_modules/ and .git/ are always skipped.
	RespectIgnore bool `mapstructure:"respect_ignore" yaml:"respect_ignore"`
}

// TyposConfig tunes near-match detection for broken links
type TyposConfig struct {
	// Threshold is the exclusive lower bound on similarity, in [0, 1).
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
}

// ImageExtensions are the asset types recognised in references and on disk.
var ImageExtensions = []string{".svg", ".png", ".jpg", ".jpeg", ".gif", ".ico", ".webp"}

// Default returns the built-in layout
func Default() Config {
	return Config{
		Navigation: NavigationConfig{File: "astro.config.mjs"},
		Content: ContentConfig{
			Dir:        "src/content/docs",
			Extensions: []string{".md", ".mdx"},
			Index:      "index",
		},
		Assets: AssetsConfig{
			Roots:         []string{"src/assets", "public"},
			Extensions:    append([]string(nil), ImageExtensions...),
			AllFiles:      false,
			Implicit:      []string{"favicon.svg", "favicon.ico", "robots.txt", "sitemap.xml"},
			StripPrefixes: []string{"src/assets/", "./src/assets/"},
		},
		References: ReferencesConfig{
			Dirs:          []string{"src"},
			ScanRoot:      true,
			Extensions:    []string{".md", ".mdx", ".js", ".mjs", ".astro", ".ts"},
			RespectIgnore: false,
		},
		Typos:   TyposConfig{Threshold: 0.8},
		Exclude: []string{},
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"nav-config":     "navigation.file",
	"content-dir":    "content.dir",
	"respect-ignore": "references.respect_ignore",
}

// Load resolves configuration for the project at root. Precedence, highest
// first: bound flags, DOCSWEEP_* environment, project config file, defaults.
// A present but invalid config file is an error.
func Load(root string, flags *pflag.FlagSet) (*Config, error) {
	def := Default()
	v := viper.New()

	v.SetDefault("navigation.file", def.Navigation.File)
	v.SetDefault("content.dir", def.Content.Dir)
	v.SetDefault("content.extensions", def.Content.Extensions)
	v.SetDefault("content.index", def.Content.Index)
	v.SetDefault("assets.roots", def.Assets.Roots)
	v.SetDefault("assets.extensions", def.Assets.Extensions)
	v.SetDefault("assets.all_files", def.Assets.AllFiles)
	v.SetDefault("assets.implicit", def.Assets.Implicit)
	v.SetDefault("assets.strip_prefixes", def.Assets.StripPrefixes)
	v.SetDefault("references.dirs", def.References.Dirs)
	v.SetDefault("references.scan_root", def.References.ScanRoot)
	v.SetDefault("references.extensions", def.References.Extensions)
	v.SetDefault("references.respect_ignore", def.References.RespectIgnore)
	v.SetDefault("typos.threshold", def.Typos.Threshold)
	v.SetDefault("exclude", def.Exclude)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	source, err := findProjectConfig(root)
	if err != nil {
		return nil, err
	}
	if source != "" {
		data, err := os.ReadFile(source) // #nosec G304 -- fixed file names under the project root
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", source, err)
		}
		if err := ValidateConfig(data); err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		v.SetConfigFile(source)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", source, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Source = source
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findProjectConfig(root string) (string, error) {
	for _, name := range ProjectConfigFiles {
		p := filepath.Join(root, name)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", p, err)
		}
	}
	return "", nil
}

// normalize lower-cases extensions, adds missing leading dots and converts
// layout paths to forward slashes.
func (c *Config) normalize() {
	c.Navigation.File = filepath.ToSlash(strings.TrimSpace(c.Navigation.File))
	c.Content.Dir = filepath.ToSlash(strings.TrimSpace(c.Content.Dir))
	c.Content.Extensions = normalizeExts(c.Content.Extensions)
	c.Assets.Extensions = normalizeExts(c.Assets.Extensions)
	c.References.Extensions = normalizeExts(c.References.Extensions)
	for i, r := range c.Assets.Roots {
		c.Assets.Roots[i] = filepath.ToSlash(strings.TrimSpace(r))
	}
	for i, d := range c.References.Dirs {
		c.References.Dirs[i] = filepath.ToSlash(strings.TrimSpace(d))
	}
}

func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// Validate checks semantic constraints the schema cannot express
func (c *Config) Validate() error {
	var problems []string
	if c.Navigation.File == "" {
		problems = append(problems, "navigation.file must not be empty")
	}
	if c.Content.Dir == "" {
		problems = append(problems, "content.dir must not be empty")
	}
	if len(c.Content.Extensions) == 0 {
		problems = append(problems, "content.extensions must list at least one extension")
	}
	if c.Typos.Threshold < 0 || c.Typos.Threshold >= 1 {
		problems = append(problems, fmt.Sprintf("typos.threshold must be in [0, 1), got %v", c.Typos.Threshold))
	}
	if !c.Assets.AllFiles && len(c.Assets.Extensions) == 0 && len(c.Assets.Roots) > 0 {
		problems = append(problems, "assets.extensions is empty; set assets.all_files to scan every file")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
