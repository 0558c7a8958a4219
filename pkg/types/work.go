// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the cite-engine pipeline:
// the resolved Work model, per-stage configuration, and the error taxonomy.
package types

// WorkType classifies a work as reported by the bibliographic registry.
type WorkType string

// Work types with a citation mapping. Registry records may carry other
// values; those fail at formatting time, not at resolution time.
const (
	TypeJournalArticle     WorkType = "journal-article"
	TypeBook               WorkType = "book"
	TypeProceedingsArticle WorkType = "proceedings-article"
	TypeMonograph          WorkType = "monograph"
)

// Author is a single creator of a work, in registry name order.
type Author struct {
	Given  string `json:"given" yaml:"given"`
	Family string `json:"family" yaml:"family"`
}

// Work is the canonical representation of a resolved work. It is
// constructed only by the resolve stage, from a validated registry record,
// and is treated as immutable afterwards.
type Work struct {
	// Title is the primary title from the registry record.
	Title string `json:"title" yaml:"title"`

	// Authors lists the work's authors in registry order. A Work that
	// reaches the formatter always has at least one author.
	Authors []Author `json:"authors" yaml:"authors"`

	// Year is the publication year from the record's date parts.
	Year int `json:"year" yaml:"year"`

	// DOI is the registry identifier, without the https://doi.org/ prefix.
	DOI string `json:"doi" yaml:"doi"`

	// URL is the resolver URL reported by the registry.
	URL string `json:"url" yaml:"url"`

	// Type is the work type copied verbatim from the registry.
	Type WorkType `json:"type" yaml:"type"`

	// Journal is the first container title, empty when the record has none.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Pages is the registry page range, empty when absent.
	Pages string `json:"pages,omitempty" yaml:"pages,omitempty"`

	// Volume is the registry volume, empty when absent.
	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`
}
