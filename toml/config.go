// Package toml reads spotlight configuration files written in TOML.
package toml

import (
	"bytes"
	"os"

	"github.com/fwojciec/spotlight"
	"github.com/pelletier/go-toml/v2"
)

// ParseConfig decodes a TOML config file. Unknown keys are rejected.
func ParseConfig(data []byte) (*spotlight.ConfigFile, error) {
	var f spotlight.ConfigFile
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, spotlight.Errorf(spotlight.EINVALID, "parse toml config: %v", err)
	}
	return &f, nil
}

// LoadConfig reads the TOML file at path and applies it over cfg.
// Returns ENOTFOUND when the file does not exist.
func LoadConfig(path string, cfg *spotlight.Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return spotlight.Errorf(spotlight.ENOTFOUND, "config file %s not found", path)
	} else if err != nil {
		return err
	}
	f, err := ParseConfig(data)
	if err != nil {
		return err
	}
	return f.Apply(cfg)
}
