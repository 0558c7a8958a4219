// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup runs the title-to-citation resolution pipeline: candidate
// search, disambiguation, then authoritative record fetch. One call is one
// synchronous request chain with no shared state; callers may run
// independent lookups concurrently without synchronization.
package lookup

import (
	"context"
	"net/http"

	"github.com/pdiddy/cite-engine/internal/disambig"
	"github.com/pdiddy/cite-engine/internal/resolve"
	"github.com/pdiddy/cite-engine/internal/search"
	"github.com/pdiddy/cite-engine/pkg/types"
)

// Index searches a bibliographic index for candidate works.
type Index interface {
	Search(ctx context.Context, query search.Query, cfg types.SearchConfig) ([]search.Candidate, error)
}

// Registry fetches the authoritative record for an identifier.
type Registry interface {
	Resolve(ctx context.Context, doi string, cfg types.ResolveConfig) (types.Work, error)
}

// Pipeline wires the lookup stages together.
type Pipeline struct {
	Index    Index
	Registry Registry
	Cfg      types.LookupConfig
}

// New builds a pipeline against the real OpenAlex index and Crossref
// registry, sharing one HTTP client across both.
func New(client *http.Client, cfg types.LookupConfig) *Pipeline {
	return &Pipeline{
		Index:    &search.OpenAlexIndex{Client: client, Email: cfg.Search.Mailto},
		Registry: &resolve.CrossrefRegistry{Client: client},
		Cfg:      cfg,
	}
}

// Lookup resolves query to a validated Work. The first failure in the
// chain is returned as-is; there is no partial recovery or fallback API.
func (p *Pipeline) Lookup(ctx context.Context, query search.Query) (types.Work, error) {
	candidates, err := p.Index.Search(ctx, query, p.Cfg.Search)
	if err != nil {
		return types.Work{}, err
	}

	chosen, err := disambig.Select(candidates, query, p.Cfg.Disambiguate)
	if err != nil {
		return types.Work{}, err
	}

	return p.Registry.Resolve(ctx, chosen.DOI, p.Cfg.Resolve)
}
