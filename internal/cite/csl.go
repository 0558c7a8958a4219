package cite

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cite-engine/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names follow the CSL-YAML schema so that output is
// consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// cslTypes maps registry work types onto CSL item types, mirroring the
// BibTeX table.
var cslTypes = map[types.WorkType]string{
	types.TypeJournalArticle:     "article-journal",
	types.TypeBook:               "book",
	types.TypeProceedingsArticle: "paper-conference",
	types.TypeMonograph:          "book",
}

// FormatCSL writes w as a single-item CSL-YAML list to wr.
func FormatCSL(w types.Work, wr io.Writer) error {
	item, err := toCSLItem(w)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(wr)
	defer enc.Close()
	return enc.Encode([]CSLItem{item})
}

// toCSLItem converts a Work to a CSLItem.
func toCSLItem(w types.Work) (CSLItem, error) {
	cslType, ok := cslTypes[w.Type]
	if !ok {
		return CSLItem{}, &types.UnsupportedTypeError{Type: w.Type}
	}

	item := CSLItem{
		ID:             w.DOI,
		Type:           cslType,
		Title:          w.Title,
		ContainerTitle: w.Journal,
		Volume:         w.Volume,
		Page:           w.Pages,
		DOI:            w.DOI,
		URL:            w.URL,
	}

	for _, a := range w.Authors {
		item.Author = append(item.Author, CSLName{Family: a.Family, Given: a.Given})
	}

	if w.Year != 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{w.Year}}}
	}

	return item, nil
}
