package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the converter configuration. All relative paths are
// resolved against the base directory the CLI computes at startup, never
// against the caller's working directory.
type Config struct {
	Source  string `yaml:"source"`  // contributors document, e.g. CONTRIBUTORS.md
	Target  string `yaml:"target"`  // generated Go file
	Package string `yaml:"package"` // package clause of the generated file
	Lists   []List `yaml:"lists"`   // ordered section -> variable mapping
}

// List maps one section heading in the source document to one generated
// string-slice variable.
type List struct {
	Section  string `yaml:"section"`
	Variable string `yaml:"variable"`
}

// Default returns the built-in configuration matching the historical fixed
// behavior of the converter.
func Default() *Config {
	return &Config{
		Source:  "CONTRIBUTORS.md",
		Target:  filepath.Join("internal", "about", "contributors_gen.go"),
		Package: "about",
		Lists: []List{
			{Section: "Contributors", Variable: "Authors"},
			{Section: "Artwork", Variable: "Artists"},
		},
	}
}

// Load loads configuration from the specified file. Companion .env files are
// looked up next to the configuration file, keeping the whole load
// independent of the caller's working directory.
func Load(configPath string) (*Config, error) {
	loadEnvFiles(filepath.Dir(configPath))

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the configuration file if it exists and falls back to
// Default when it does not. A present-but-broken file is still an error.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(configPath)
}

// SourcePath resolves the source document path against the base directory.
func (c *Config) SourcePath(baseDir string) string {
	return resolve(baseDir, c.Source)
}

// TargetPath resolves the generated file path against the base directory.
func (c *Config) TargetPath(baseDir string) string {
	return resolve(baseDir, c.Target)
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// loadEnvFiles loads environment variables from .env/.env.local in dir.
// Existing process environment variables are not overwritten; missing files
// are fine.
func loadEnvFiles(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		envPath := filepath.Join(dir, name)
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
		}
	}
}
