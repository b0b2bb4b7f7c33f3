// Package yaml reads spotlight configuration files written in YAML.
package yaml

import (
	"io"
	"os"

	"github.com/fwojciec/spotlight"
	"github.com/goccy/go-yaml"
)

// ParseConfig decodes a YAML config file. Unknown keys are rejected.
func ParseConfig(data []byte) (*spotlight.ConfigFile, error) {
	var f spotlight.ConfigFile
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.Strict()); err != nil {
		return nil, spotlight.Errorf(spotlight.EINVALID, "parse yaml config: %v", err)
	}
	return &f, nil
}

// LoadConfig reads the YAML file at path and applies it over cfg.
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

// WriteConfig encodes f as YAML to w.
func WriteConfig(w io.Writer, f *spotlight.ConfigFile) error {
	return yaml.NewEncoder(w).Encode(f)
}
