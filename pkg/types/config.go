package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout applied per call.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "cite-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the candidate search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PerPage is the search index page size (default 200, capped at 200).
	PerPage int `json:"per_page" yaml:"per_page"`

	// Mailto is an optional contact address sent to the search index for
	// polite pool access. Not an authentication credential.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`
}

// DisambiguateConfig holds settings for candidate disambiguation.
type DisambiguateConfig struct {
	// MinTitleRatio is the title similarity a candidate must exceed to
	// survive filtering, on a 0-100 scale (default 95). Lowering it trades
	// precision for recall.
	MinTitleRatio float64 `json:"min_title_ratio" yaml:"min_title_ratio"`
}

// ResolveConfig holds settings for the registry resolve stage.
type ResolveConfig struct {
	HTTPConfig `yaml:",inline"`

	// Mailto is an optional contact address sent to the registry.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`
}

// LibraryConfig holds settings for the saved-citation library.
type LibraryConfig struct {
	// Dir is the directory holding the library database.
	Dir string `json:"dir" yaml:"dir"`
}

// LookupConfig groups the stage configurations for one lookup pipeline run.
type LookupConfig struct {
	Search       SearchConfig       `json:"search" yaml:"search"`
	Disambiguate DisambiguateConfig `json:"disambiguate" yaml:"disambiguate"`
	Resolve      ResolveConfig      `json:"resolve" yaml:"resolve"`
}
