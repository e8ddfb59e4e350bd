// Package config loads fxa settings from the environment and an optional
// YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up when no path is given.
	FileName = ".fentarxiu.yml"
	// EnvConfig names the environment variable holding the config file path.
	EnvConfig = "FENTARXIU_CONFIG"
	// EnvLog names the environment variable holding the default log path.
	EnvLog = "FENTARXIU_LOG"
)

// ErrInvalidConfig is returned when a config file cannot be decoded.
var ErrInvalidConfig = errors.New("invalid config file")

// File mirrors the YAML config file. Nil fields were not set.
type File struct {
	Log        *string `yaml:"log"`
	Recursive  *bool   `yaml:"recursive"`
	JSON       *bool   `yaml:"json"`
	SkipHidden *bool   `yaml:"skip_hidden"`
}

// Settings are the resolved values used by the commands.
type Settings struct {
	Log        string
	Recursive  bool
	JSON       bool
	SkipHidden bool
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{SkipHidden: true}
}

// LoadEnv loads variables from the given dotenv files, or from .env when
// none are given. Missing files are ignored; variables already set in the
// process environment are not overridden.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the config file at path. A missing file yields an empty File
// unless required is set.
func Load(path string, required bool) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return File{}, nil
		}
		return File{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML config data, rejecting unknown keys.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return f, nil
}

// Resolve layers the environment over the file over the defaults. getenv
// is usually os.Getenv.
func Resolve(f File, getenv func(string) string) Settings {
	s := Defaults()
	if f.Log != nil {
		s.Log = *f.Log
	}
	if f.Recursive != nil {
		s.Recursive = *f.Recursive
	}
	if f.JSON != nil {
		s.JSON = *f.JSON
	}
	if f.SkipHidden != nil {
		s.SkipHidden = *f.SkipHidden
	}
	if v := getenv(EnvLog); v != "" {
		s.Log = v
	}
	return s
}
