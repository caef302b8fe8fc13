package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/matzehuels/ordinatrix/pkg/errors"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "ORDINATRIX_"

	// envDelim separates nested keys in environment variable names.
	envDelim = "__"
)

// DefaultPath returns the config file used when none is given:
// $XDG_CONFIG_HOME/ordinatrix/config.toml, else ~/.config/ordinatrix/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ordinatrix", "config.toml"), nil
}

// Load merges the config file at path (if present) with environment
// variables on top of Default, and validates the result.
//
// An empty path selects DefaultPath, which may be missing. An explicit
// path that does not exist is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	k := koanf.New(".")
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		err = k.Load(file.Provider(path), parser)
		missing := stderrors.Is(err, fs.ErrNotExist)
		switch {
		case err == nil, missing && !explicit:
		case missing:
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		default:
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load environment")
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if cfg.Presets == nil {
		cfg.Presets = map[string]Preset{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps ORDINATRIX_SERVER__ADDR to server.addr.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), strings.ToLower(envDelim), ".")
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml", "":
		return TOML(), nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported config format %q (use .toml or .yaml)", filepath.Ext(path))
	}
}
