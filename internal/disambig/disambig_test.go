// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package disambig

import (
	"errors"
	"testing"

	"github.com/pdiddy/cite-engine/internal/search"
	"github.com/pdiddy/cite-engine/pkg/types"
)

func TestTitleRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64 // lower bound when approximate
		max  float64
	}{
		{"identical", "Elements of Modern X-ray Physics", "Elements of Modern X-ray Physics", 100, 100},
		{"case insensitive", "ATTENTION IS ALL YOU NEED", "attention is all you need", 100, 100},
		{"unrelated", "Supernova", "Elements of Modern X-ray Physics", 0, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleRatio(tt.a, tt.b)
			if got < tt.want || got > tt.max {
				t.Errorf("TitleRatio(%q, %q) = %.1f, want in [%.1f, %.1f]", tt.a, tt.b, got, tt.want, tt.max)
			}
		})
	}
}

func TestSelectSingleQualifyingCandidate(t *testing.T) {
	query := search.Query{Title: "Elements of Modern X-ray Physics"}
	candidates := []search.Candidate{
		{Title: "X-ray Physics for Beginners", DOI: "10.1/a", Type: types.TypeBook},
		{Title: "Elements of Modern X-ray Physics", DOI: "10.1107/xyz", Type: types.TypeBook},
		{Title: "Elements of Ancient Optics", DOI: "10.1/b", Type: types.TypeBook},
	}

	got, err := Select(candidates, query, types.DisambiguateConfig{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got.DOI != "10.1107/xyz" {
		t.Errorf("selected DOI = %q, want the near-exact title match", got.DOI)
	}
}

func TestSelectDropsCandidatesWithoutDOI(t *testing.T) {
	query := search.Query{Title: "Attention is all you need"}
	candidates := []search.Candidate{
		{Title: "Attention is all you need", DOI: "", Type: types.TypeProceedingsArticle},
	}

	_, err := Select(candidates, query, types.DisambiguateConfig{})
	var nf *types.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Title != "Attention is all you need" {
		t.Errorf("NotFoundError title = %q, want original query title", nf.Title)
	}
}

func TestSelectWorkTypeFilter(t *testing.T) {
	candidates := []search.Candidate{
		{Title: "Supernova", DOI: "10.1/article", Type: types.TypeJournalArticle},
		{Title: "Supernova", DOI: "10.1/book", Type: types.TypeBook},
	}

	query := search.Query{Title: "Supernova", WorkType: types.TypeBook}
	got, err := Select(candidates, query, types.DisambiguateConfig{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got.DOI != "10.1/book" {
		t.Errorf("selected DOI = %q, want the book candidate", got.DOI)
	}

	// No candidate of the requested type.
	query.WorkType = types.TypeMonograph
	_, err = Select(candidates, query, types.DisambiguateConfig{})
	var nf *types.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.WorkType != types.TypeMonograph {
		t.Errorf("NotFoundError work type = %q, want monograph", nf.WorkType)
	}
}

func TestSelectFirstSurvivorWins(t *testing.T) {
	// Both candidates qualify; upstream relevance order decides.
	query := search.Query{Title: "Supernova"}
	candidates := []search.Candidate{
		{Title: "Supernova", DOI: "10.1/first", Type: types.TypeJournalArticle},
		{Title: "Supernova", DOI: "10.1/second", Type: types.TypeJournalArticle},
	}

	got, err := Select(candidates, query, types.DisambiguateConfig{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got.DOI != "10.1/first" {
		t.Errorf("selected DOI = %q, want the first qualifying candidate", got.DOI)
	}
}

func TestSelectEmptyCandidates(t *testing.T) {
	query := search.Query{Title: "Anything", Author: "A. Author"}
	_, err := Select(nil, query, types.DisambiguateConfig{})

	var nf *types.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Author != "A. Author" {
		t.Errorf("NotFoundError author = %q, want original query author", nf.Author)
	}
}

func TestSelectThresholdTunable(t *testing.T) {
	query := search.Query{Title: "Powder Diffraction"}
	candidates := []search.Candidate{
		{Title: "Powder Diffraction Methods", DOI: "10.1/loose", Type: types.TypeBook},
	}

	// Default threshold rejects the loose match.
	if _, err := Select(candidates, query, types.DisambiguateConfig{}); err == nil {
		t.Error("expected NotFound at default threshold")
	}

	// A permissive threshold accepts it.
	got, err := Select(candidates, query, types.DisambiguateConfig{MinTitleRatio: 50})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got.DOI != "10.1/loose" {
		t.Errorf("selected DOI = %q", got.DOI)
	}
}
