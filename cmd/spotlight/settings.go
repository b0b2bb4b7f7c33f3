package main

import (
	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/yaml"
)

// Run executes the settings command, printing the effective configuration
// as YAML. The CurseForge API key is never printed.
func (c *SettingsCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	httpTimeout := cfg.HTTPTimeout.String()
	debounce := cfg.Search.Debounce.String()

	f := &spotlight.ConfigFile{
		Language:            &cfg.Language,
		ResourceTranslation: &cfg.ResourceTranslation,
		UserAgent:           &cfg.UserAgent,
		HTTPTimeout:         &httpTimeout,
		RateLimit:           &cfg.RateLimit,
		Search: spotlight.SearchConfigFile{
			Debounce:            &debounce,
			MinRelevance:        &cfg.Search.MinRelevance,
			MaxPerSource:        &cfg.Search.MaxPerSource,
			ResourcesPerRequest: &cfg.Search.ResourcesPerRequest,
			Scorer:              &cfg.Search.Scorer,
		},
	}
	if err := yaml.WriteConfig(deps.Stdout, f); err != nil {
		return printError(deps, err)
	}
	return nil
}
