// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package disambig selects a single resolvable candidate from ranked
// search results. Filtering is strict: only near-exact title matches
// survive, which avoids resolving loosely related works at the cost of
// recall. The threshold is a config tunable.
package disambig

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/pdiddy/cite-engine/internal/search"
	"github.com/pdiddy/cite-engine/pkg/types"
)

// DefaultMinTitleRatio is the similarity a candidate title must exceed
// when the config leaves the threshold unset.
const DefaultMinTitleRatio = 95

// Select applies the filtering rules in order: drop candidates without a
// DOI, keep candidates whose title similarity against the query exceeds
// the threshold, then keep exact work-type matches when the query names a
// type. The first survivor wins; upstream relevance order is the only
// tie-break. Zero survivors fail with NotFound carrying the query.
func Select(candidates []search.Candidate, query search.Query, cfg types.DisambiguateConfig) (search.Candidate, error) {
	minRatio := cfg.MinTitleRatio
	if minRatio <= 0 {
		minRatio = DefaultMinTitleRatio
	}

	var remaining []search.Candidate
	for _, c := range candidates {
		if c.DOI == "" {
			continue
		}
		if TitleRatio(query.Title, c.Title) <= minRatio {
			continue
		}
		remaining = append(remaining, c)
	}

	if query.WorkType != "" {
		var typed []search.Candidate
		for _, c := range remaining {
			if c.Type == query.WorkType {
				typed = append(typed, c)
			}
		}
		remaining = typed
	}

	if len(remaining) == 0 {
		return search.Candidate{}, &types.NotFoundError{
			Title:    query.Title,
			Author:   query.Author,
			WorkType: query.WorkType,
		}
	}
	return remaining[0], nil
}

// TitleRatio returns a case-insensitive edit-distance similarity between
// two titles on a 0-100 scale.
func TitleRatio(a, b string) float64 {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	return strutil.Similarity(a, b, lev) * 100
}
