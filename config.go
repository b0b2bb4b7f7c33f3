package spotlight

import "time"

// Default search tuning values.
const (
	DefaultDebounce            = 500 * time.Millisecond
	DefaultMinRelevance        = 0.45
	DefaultMaxPerSource        = 3
	DefaultResourcesPerRequest = 3
)

// SearchConfig tunes the network part of the aggregator.
type SearchConfig struct {
	// Debounce is how long the query must stay unchanged before a network search fires.
	Debounce time.Duration `json:"debounce"`

	// MinRelevance is the exclusive lower bound a resource's score must exceed.
	MinRelevance float64 `json:"minRelevance"`

	// MaxPerSource caps the network results kept per source.
	MaxPerSource int `json:"maxPerSource"`

	// ResourcesPerRequest is the page size of each provider request.
	ResourcesPerRequest int `json:"resourcesPerRequest"`

	// Scorer names the similarity metric: "dice" (default), "levenshtein",
	// "jaro-winkler" or "jaccard".
	Scorer string `json:"scorer"`
}

// Config holds launcher settings relevant to search.
type Config struct {
	Language            string        `json:"language"`
	ResourceTranslation bool          `json:"resourceTranslation"`
	Search              SearchConfig  `json:"search"`
	CurseForgeAPIKey    string        `json:"-"`
	UserAgent           string        `json:"userAgent"`
	HTTPTimeout         time.Duration `json:"httpTimeout"`

	// RateLimit is the allowed requests per second per API host. Zero disables limiting.
	RateLimit float64 `json:"rateLimit"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Language:            "en",
		ResourceTranslation: true,
		Search: SearchConfig{
			Debounce:            DefaultDebounce,
			MinRelevance:        DefaultMinRelevance,
			MaxPerSource:        DefaultMaxPerSource,
			ResourcesPerRequest: DefaultResourcesPerRequest,
			Scorer:              "dice",
		},
		UserAgent:   "spotlight/1.0 (+https://github.com/fwojciec/spotlight)",
		HTTPTimeout: 10 * time.Second,
		RateLimit:   5,
	}
}

// Validate returns an error if the configuration contains invalid values.
func (c *Config) Validate() error {
	if c.Search.Debounce < 0 {
		return Errorf(EINVALID, "debounce must not be negative")
	}
	if c.Search.MinRelevance < 0 || c.Search.MinRelevance >= 1 {
		return Errorf(EINVALID, "min relevance must be in [0, 1)")
	}
	if c.Search.MaxPerSource <= 0 {
		return Errorf(EINVALID, "max results per source must be positive")
	}
	if c.Search.ResourcesPerRequest <= 0 {
		return Errorf(EINVALID, "resources per request must be positive")
	}
	if c.RateLimit < 0 {
		return Errorf(EINVALID, "rate limit must not be negative")
	}
	return nil
}

// ShowTranslation reports whether translated resource text should be displayed.
func (c *Config) ShowTranslation() bool {
	return c.Language == "zh-Hans" && c.ResourceTranslation
}

// ConfigFile is the on-disk form of Config. Unset fields keep the values
// of the Config they are applied to. Durations use time.ParseDuration syntax.
type ConfigFile struct {
	Language            *string          `yaml:"language,omitempty" toml:"language"`
	ResourceTranslation *bool            `yaml:"resource_translation,omitempty" toml:"resource_translation"`
	CurseForgeAPIKey    *string          `yaml:"curseforge_api_key,omitempty" toml:"curseforge_api_key"`
	UserAgent           *string          `yaml:"user_agent,omitempty" toml:"user_agent"`
	HTTPTimeout         *string          `yaml:"http_timeout,omitempty" toml:"http_timeout"`
	RateLimit           *float64         `yaml:"rate_limit,omitempty" toml:"rate_limit"`
	Search              SearchConfigFile `yaml:"search" toml:"search"`
}

// SearchConfigFile is the on-disk form of SearchConfig.
type SearchConfigFile struct {
	Debounce            *string  `yaml:"debounce,omitempty" toml:"debounce"`
	MinRelevance        *float64 `yaml:"min_relevance,omitempty" toml:"min_relevance"`
	MaxPerSource        *int     `yaml:"max_per_source,omitempty" toml:"max_per_source"`
	ResourcesPerRequest *int     `yaml:"resources_per_request,omitempty" toml:"resources_per_request"`
	Scorer              *string  `yaml:"scorer,omitempty" toml:"scorer"`
}

// Apply overlays the set fields of f onto cfg and validates the result.
func (f *ConfigFile) Apply(cfg *Config) error {
	if f.Language != nil {
		cfg.Language = *f.Language
	}
	if f.ResourceTranslation != nil {
		cfg.ResourceTranslation = *f.ResourceTranslation
	}
	if f.CurseForgeAPIKey != nil {
		cfg.CurseForgeAPIKey = *f.CurseForgeAPIKey
	}
	if f.UserAgent != nil {
		cfg.UserAgent = *f.UserAgent
	}
	if f.HTTPTimeout != nil {
		d, err := time.ParseDuration(*f.HTTPTimeout)
		if err != nil {
			return Errorf(EINVALID, "http_timeout: %v", err)
		}
		cfg.HTTPTimeout = d
	}
	if f.RateLimit != nil {
		cfg.RateLimit = *f.RateLimit
	}

	s := f.Search
	if s.Debounce != nil {
		d, err := time.ParseDuration(*s.Debounce)
		if err != nil {
			return Errorf(EINVALID, "search.debounce: %v", err)
		}
		cfg.Search.Debounce = d
	}
	if s.MinRelevance != nil {
		cfg.Search.MinRelevance = *s.MinRelevance
	}
	if s.MaxPerSource != nil {
		cfg.Search.MaxPerSource = *s.MaxPerSource
	}
	if s.ResourcesPerRequest != nil {
		cfg.Search.ResourcesPerRequest = *s.ResourcesPerRequest
	}
	if s.Scorer != nil {
		cfg.Search.Scorer = *s.Scorer
	}
	return cfg.Validate()
}
