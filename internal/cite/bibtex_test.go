// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/cite-engine/pkg/types"
)

func bookWork() types.Work {
	return types.Work{
		Title:   "Elements of Modern X-ray Physics",
		Authors: []types.Author{{Given: "J.", Family: "Als-Nielsen"}},
		Year:    2001,
		DOI:     "10.x/y",
		URL:     "https://doi.org/10.x/y",
		Type:    types.TypeBook,
	}
}

func TestFormatBibTeXBook(t *testing.T) {
	want := "@book{Als-Nielsen2001,\n" +
		"  title={Elements of Modern X-ray Physics},\n" +
		"  author={J. Als-Nielsen},\n" +
		"  year={2001},\n" +
		"  doi={10.x/y},\n" +
		"  url={https://doi.org/10.x/y}\n" +
		"}"

	got, err := FormatBibTeX(bookWork())
	if err != nil {
		t.Fatalf("FormatBibTeX: %v", err)
	}
	if got != want {
		t.Errorf("FormatBibTeX =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatBibTeXDeterministic(t *testing.T) {
	w := bookWork()
	first, err := FormatBibTeX(w)
	if err != nil {
		t.Fatalf("FormatBibTeX: %v", err)
	}
	second, err := FormatBibTeX(w)
	if err != nil {
		t.Fatalf("FormatBibTeX: %v", err)
	}
	if first != second {
		t.Error("formatting the same Work twice produced different output")
	}
}

func TestFormatBibTeXJournalArticle(t *testing.T) {
	w := types.Work{
		Title:   "A Thorough Study",
		Authors: []types.Author{{Given: "A.", Family: "Author"}, {Given: "B.", Family: "Coauthor"}},
		Year:    2019,
		DOI:     "10.1234/thorough",
		URL:     "https://doi.org/10.1234/thorough",
		Type:    types.TypeJournalArticle,
		Journal: "Journal of Thorough Studies",
		Volume:  "12",
		Pages:   "101-110",
	}

	got, err := FormatBibTeX(w)
	if err != nil {
		t.Fatalf("FormatBibTeX: %v", err)
	}

	if !strings.HasPrefix(got, "@article{Author2019,\n") {
		t.Errorf("entry header = %q", strings.SplitN(got, "\n", 2)[0])
	}
	if !strings.Contains(got, "  author={A. Author and B. Coauthor},\n") {
		t.Errorf("authors not joined with \" and \":\n%s", got)
	}

	// Fixed field order: title, author, journal, year, volume, pages, doi, url.
	order := []string{"title=", "author=", "journal=", "year=", "volume=", "pages=", "doi=", "url="}
	last := -1
	for _, key := range order {
		idx := strings.Index(got, key)
		if idx < 0 {
			t.Fatalf("missing field %q in:\n%s", key, got)
		}
		if idx < last {
			t.Errorf("field %q out of order in:\n%s", key, got)
		}
		last = idx
	}
}

func TestFormatBibTeXTypeMapping(t *testing.T) {
	tests := []struct {
		workType types.WorkType
		want     string
	}{
		{types.TypeJournalArticle, "@article{"},
		{types.TypeBook, "@book{"},
		{types.TypeProceedingsArticle, "@inproceedings{"},
		{types.TypeMonograph, "@book{"},
	}
	for _, tt := range tests {
		t.Run(string(tt.workType), func(t *testing.T) {
			w := bookWork()
			w.Type = tt.workType
			got, err := FormatBibTeX(w)
			if err != nil {
				t.Fatalf("FormatBibTeX: %v", err)
			}
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("entry = %q, want prefix %q", strings.SplitN(got, "\n", 2)[0], tt.want)
			}
		})
	}
}

func TestFormatBibTeXUnsupportedType(t *testing.T) {
	tests := []types.WorkType{"dataset", "posted-content", "other", ""}
	for _, workType := range tests {
		t.Run(string(workType), func(t *testing.T) {
			w := bookWork()
			w.Type = workType
			_, err := FormatBibTeX(w)

			var ut *types.UnsupportedTypeError
			if !errors.As(err, &ut) {
				t.Fatalf("err = %v, want UnsupportedTypeError", err)
			}
			if ut.Type != workType {
				t.Errorf("Type = %q, want %q", ut.Type, workType)
			}
		})
	}
}

func TestFormatBibTeXOmitsEmptyFields(t *testing.T) {
	got, err := FormatBibTeX(bookWork())
	if err != nil {
		t.Fatalf("FormatBibTeX: %v", err)
	}
	for _, absent := range []string{"journal=", "volume=", "pages=", "={}"} {
		if strings.Contains(got, absent) {
			t.Errorf("output contains %q for an empty field:\n%s", absent, got)
		}
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name   string
		family string
		year   int
		want   string
	}{
		{"simple", "Als-Nielsen", 2001, "Als-Nielsen2001"},
		{"multi-token family keeps last token", "Van Der Berg", 2020, "Berg2020"},
		{"single token", "Curie", 1903, "Curie1903"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := types.Work{Authors: []types.Author{{Given: "X.", Family: tt.family}}, Year: tt.year}
			got := Key(w)
			if got != tt.want {
				t.Errorf("Key = %q, want %q", got, tt.want)
			}
			if strings.ContainsAny(got, " \t") {
				t.Errorf("Key %q contains whitespace", got)
			}
		})
	}
}
