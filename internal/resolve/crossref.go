// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve fetches authoritative records from the Crossref registry
// and constructs validated Works. A Work is never built anywhere else, and
// never built partially: a record missing a mandatory field fails the
// whole resolution.
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/cite-engine/internal/httputil"
	"github.com/pdiddy/cite-engine/pkg/types"
)

// crossrefAPIBase is the Crossref works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works/"

// Crossref API JSON structures.
type crossrefResponse struct {
	Message crossrefWork `json:"message"`
}

type crossrefWork struct {
	Title          []string         `json:"title"`
	Author         []crossrefAuthor `json:"author"`
	Published      crossrefDate     `json:"published"`
	DOI            string           `json:"DOI"`
	URL            string           `json:"URL"`
	Type           string           `json:"type"`
	ContainerTitle []string         `json:"container-title"`
	Page           string           `json:"page"`
	Volume         string           `json:"volume"`
}

type crossrefAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}

// CrossrefRegistry fetches authoritative records from the Crossref works
// endpoint.
type CrossrefRegistry struct {
	Client *http.Client
}

// Resolve fetches the registry record for doi and maps it into a Work.
// A non-success registry status fails with RegistryError carrying the
// status code.
func (r *CrossrefRegistry) Resolve(ctx context.Context, doi string, cfg types.ResolveConfig) (types.Work, error) {
	apiURL := crossrefAPIBase + doi
	if cfg.Mailto != "" {
		apiURL += "?mailto=" + url.QueryEscape(cfg.Mailto)
	}

	resp, err := httputil.Get(ctx, r.Client, "crossref", apiURL, cfg.UserAgent)
	if err != nil {
		return types.Work{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Work{}, &types.RegistryError{DOI: doi, StatusCode: resp.StatusCode}
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return types.Work{}, fmt.Errorf("parsing Crossref response: %w", err)
	}

	return newWork(cr.Message)
}

// newWork validates the mandatory registry fields and maps the record.
// Container title, page range, and volume are optional; everything else is
// required for a well-formed record.
func newWork(rec crossrefWork) (types.Work, error) {
	switch {
	case rec.DOI == "":
		return types.Work{}, &types.MalformedRecordError{DOI: rec.DOI, Field: "DOI"}
	case len(rec.Title) == 0 || rec.Title[0] == "":
		return types.Work{}, &types.MalformedRecordError{DOI: rec.DOI, Field: "title"}
	case len(rec.Author) == 0:
		return types.Work{}, &types.MalformedRecordError{DOI: rec.DOI, Field: "author"}
	case len(rec.Published.DateParts) == 0 || len(rec.Published.DateParts[0]) == 0:
		return types.Work{}, &types.MalformedRecordError{DOI: rec.DOI, Field: "published.date-parts"}
	case rec.URL == "":
		return types.Work{}, &types.MalformedRecordError{DOI: rec.DOI, Field: "URL"}
	case rec.Type == "":
		return types.Work{}, &types.MalformedRecordError{DOI: rec.DOI, Field: "type"}
	}

	w := types.Work{
		Title:  rec.Title[0],
		Year:   rec.Published.DateParts[0][0],
		DOI:    rec.DOI,
		URL:    rec.URL,
		Type:   types.WorkType(rec.Type),
		Pages:  rec.Page,
		Volume: rec.Volume,
	}

	for _, a := range rec.Author {
		w.Authors = append(w.Authors, types.Author{Given: a.Given, Family: a.Family})
	}

	if len(rec.ContainerTitle) > 0 {
		w.Journal = rec.ContainerTitle[0]
	}

	return w, nil
}
