// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/cite-engine/internal/httputil"
	"github.com/pdiddy/cite-engine/pkg/types"
)

// OpenAlex endpoints. Declared as vars so tests can substitute httptest
// servers.
var (
	openAlexWorksBase   = "https://api.openalex.org/works"
	openAlexAuthorsBase = "https://api.openalex.org/authors"
)

// defaultPerPage is the index page size used when the config leaves it
// unset. 200 is the OpenAlex maximum.
const defaultPerPage = 200

// OpenAlexIndex queries the OpenAlex works and authors endpoints.
type OpenAlexIndex struct {
	Client *http.Client
	// Email is sent as mailto parameter for polite pool access.
	Email string
}

// Search returns candidates for the query, most relevant first, up to one
// index page. When the query names an author, the author is first resolved
// to a stable OpenAlex author ID and the works filter is narrowed to that
// ID; a name that resolves to nothing fails with NotFound before the works
// filter is built, so the author clause is never dropped silently.
func (x *OpenAlexIndex) Search(ctx context.Context, query Query, cfg types.SearchConfig) ([]Candidate, error) {
	if query.IsEmpty() {
		return nil, fmt.Errorf("empty query: a title is required")
	}

	filter := "default.search:" + query.Title
	if query.Author != "" {
		authorID, err := x.resolveAuthorID(ctx, query, cfg)
		if err != nil {
			return nil, err
		}
		filter += ",authorships.author.id:" + authorID
	}

	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > defaultPerPage {
		perPage = defaultPerPage
	}

	params := url.Values{
		"filter":   {filter},
		"sort":     {"relevance_score:desc"},
		"per_page": {fmt.Sprintf("%d", perPage)},
	}
	if x.Email != "" {
		params.Set("mailto", x.Email)
	}

	resp, err := httputil.Get(ctx, x.Client, "openalex", openAlexWorksBase+"?"+params.Encode(), cfg.UserAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &types.TransportError{API: "openalex", StatusCode: resp.StatusCode}
	}

	var oar openAlexWorksResponse
	if err := json.NewDecoder(resp.Body).Decode(&oar); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	candidates := make([]Candidate, 0, len(oar.Results))
	for _, work := range oar.Results {
		c := Candidate{
			Title: work.Title,
			// OpenAlex reports DOIs as full resolver URLs; strip the
			// prefix to get the bare registry key.
			DOI:  strings.TrimPrefix(work.DOI, "https://doi.org/"),
			Type: types.WorkType(work.Type),
		}
		for _, authorship := range work.Authorships {
			if authorship.Author.DisplayName != "" {
				c.DisplayAuthors = append(c.DisplayAuthors, authorship.Author.DisplayName)
			}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// resolveAuthorID looks up the query author on the authors endpoint and
// returns the bare OpenAlex author ID of the top match.
func (x *OpenAlexIndex) resolveAuthorID(ctx context.Context, query Query, cfg types.SearchConfig) (string, error) {
	params := url.Values{
		"filter":   {"display_name.search:" + query.Author},
		"per_page": {"1"},
	}
	if x.Email != "" {
		params.Set("mailto", x.Email)
	}

	resp, err := httputil.Get(ctx, x.Client, "openalex", openAlexAuthorsBase+"?"+params.Encode(), cfg.UserAgent)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &types.TransportError{API: "openalex", StatusCode: resp.StatusCode}
	}

	var oar openAlexAuthorsResponse
	if err := json.NewDecoder(resp.Body).Decode(&oar); err != nil {
		return "", fmt.Errorf("parsing OpenAlex authors response: %w", err)
	}

	if len(oar.Results) == 0 {
		return "", &types.NotFoundError{Title: query.Title, Author: query.Author, WorkType: query.WorkType}
	}

	// The ID is a full OpenAlex URL (https://openalex.org/A123...); the
	// works filter wants the last path segment.
	id := oar.Results[0].ID
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		id = id[idx+1:]
	}
	return id, nil
}

// OpenAlex API JSON structures.
type openAlexWorksResponse struct {
	Meta    openAlexMeta   `json:"meta"`
	Results []openAlexWork `json:"results"`
}

type openAlexMeta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type openAlexWork struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	DOI         string               `json:"doi"`
	Type        string               `json:"type"`
	Authorships []openAlexAuthorship `json:"authorships"`
}

type openAlexAuthorship struct {
	Author openAlexAuthor `json:"author"`
}

type openAlexAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type openAlexAuthorsResponse struct {
	Results []openAlexAuthor `json:"results"`
}
