// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite renders resolved works as citation markup. Formatting is a
// pure function of the Work: the same Work always yields byte-identical
// output.
package cite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/cite-engine/pkg/types"
)

// bibtexTypes maps registry work types onto BibTeX entry types. Anything
// outside this table fails with UnsupportedType.
var bibtexTypes = map[types.WorkType]string{
	types.TypeJournalArticle:     "article",
	types.TypeBook:               "book",
	types.TypeProceedingsArticle: "inproceedings",
	types.TypeMonograph:          "book",
}

// Key returns the citation key: the last whitespace-separated token of the
// first author's family name concatenated with the year, no separator.
func Key(w types.Work) string {
	family := w.Authors[0].Family
	tokens := strings.Fields(family)
	if len(tokens) > 0 {
		family = tokens[len(tokens)-1]
	}
	return family + strconv.Itoa(w.Year)
}

// FormatBibTeX renders w as a BibTeX entry. Only non-empty fields are
// emitted, in fixed order: title, author, journal, year, volume, pages,
// doi, url.
func FormatBibTeX(w types.Work) (string, error) {
	entryType, ok := bibtexTypes[w.Type]
	if !ok {
		return "", &types.UnsupportedTypeError{Type: w.Type}
	}
	if len(w.Authors) == 0 {
		return "", &types.MalformedRecordError{DOI: w.DOI, Field: "author"}
	}

	names := make([]string, len(w.Authors))
	for i, a := range w.Authors {
		names[i] = strings.TrimSpace(a.Given + " " + a.Family)
	}

	year := ""
	if w.Year != 0 {
		year = strconv.Itoa(w.Year)
	}

	fields := []struct {
		key   string
		value string
	}{
		{"title", w.Title},
		{"author", strings.Join(names, " and ")},
		{"journal", w.Journal},
		{"year", year},
		{"volume", w.Volume},
		{"pages", w.Pages},
		{"doi", w.DOI},
		{"url", w.URL},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", entryType, Key(w))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s={%s},\n", f.key, f.value)
	}
	return strings.TrimSuffix(b.String(), ",\n") + "\n}", nil
}
