// Package config loads the CLI and server settings from readmegen.yaml and
// READMEGEN_* environment variables. Flags layer on top in cmd; .env loading
// happens in main before any of this runs.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config collects every tunable the readmegen commands share.
type Config struct {
	// Profile is the path of the profile manifest (YAML or JSON).
	Profile string `mapstructure:"profile"`
	// Template selects a built-in template by id, or a manifest by path.
	Template string `mapstructure:"template"`
	// Theme overrides the template's theme when non-empty.
	Theme string `mapstructure:"theme"`
	// Output is where the rendered markdown lands.
	Output string `mapstructure:"output"`
	// State is the JSON file the editing canvas persists to.
	State string `mapstructure:"state"`
	// Sections names a directory of frontmatter markdown files imported as
	// custom sections. Empty disables the import.
	Sections string `mapstructure:"sections"`

	Server struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"server"`

	Watch struct {
		Debounce time.Duration `mapstructure:"debounce"`
	} `mapstructure:"watch"`

	Render struct {
		Attribution     bool `mapstructure:"attribution"`
		SectionMarkers  bool `mapstructure:"section_markers"`
		ContinueOnError bool `mapstructure:"continue_on_error"`
	} `mapstructure:"render"`

	Log struct {
		Env string `mapstructure:"env"`
	} `mapstructure:"log"`
}

// Addr is the listen address for the preview server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Load reads configuration from the given file, or searches the working
// directory and the user config dir for readmegen.yaml when path is empty.
// A missing file is fine; environment variables and defaults still apply.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("readmegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "readmegen"))
		}
	}

	v.SetEnvPrefix("READMEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv picks them up during
// Unmarshal even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("profile", "profile.yaml")
	v.SetDefault("template", "classic")
	v.SetDefault("theme", "")
	v.SetDefault("output", "README.md")
	v.SetDefault("state", filepath.Join(".readmegen", "canvas.json"))
	v.SetDefault("sections", "")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)

	v.SetDefault("watch.debounce", 250*time.Millisecond)

	v.SetDefault("render.attribution", true)
	v.SetDefault("render.section_markers", false)
	v.SetDefault("render.continue_on_error", true)

	v.SetDefault("log.env", "development")
}
