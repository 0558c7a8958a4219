package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cite-engine/internal/cite"
	"github.com/pdiddy/cite-engine/internal/library"
	"github.com/pdiddy/cite-engine/internal/lookup"
	"github.com/pdiddy/cite-engine/internal/search"
	"github.com/pdiddy/cite-engine/internal/secrets"
	"github.com/pdiddy/cite-engine/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "cite-engine/0.1"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <title>",
	Short: "Resolve a work by title and print its citation",
	Long: `Lookup searches the OpenAlex index for works matching the title, narrows
the candidates to a near-exact title match, fetches the authoritative
record from Crossref for the chosen DOI, and prints the citation.

An author narrows the search index-side: the name is resolved to an
OpenAlex author ID and only that author's works are considered.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("author", "", "narrow the search to works by this author")
	lookupCmd.Flags().String("type", "", "require this work type (e.g. journal-article, book)")
	lookupCmd.Flags().String("format", "bibtex", "output format: bibtex or csl")
	lookupCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	lookupCmd.Flags().Float64("min-title-ratio", 0, "title similarity a candidate must exceed, 0-100 (default 95)")
	lookupCmd.Flags().Int("per-page", 0, "search index page size (default 200, max 200)")
	lookupCmd.Flags().Bool("save", false, "save the resolved work to the local library")
	lookupCmd.Flags().String("library-dir", "library", "directory for the citation library")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	title := args[0]
	author, _ := cmd.Flags().GetString("author")
	workType, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")
	libraryDir, _ := cmd.Flags().GetString("library-dir")

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	minRatio, _ := cmd.Flags().GetFloat64("min-title-ratio")
	if minRatio == 0 {
		minRatio = viper.GetFloat64("min_title_ratio")
	}
	perPage, _ := cmd.Flags().GetInt("per-page")
	if perPage == 0 {
		perPage = viper.GetInt("per_page")
	}

	httpCfg := types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent}
	cfg := types.LookupConfig{
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			PerPage:    perPage,
			Mailto:     secrets.Default(loadedSecrets, "openalex-email", viper.GetString("openalex_email")),
		},
		Disambiguate: types.DisambiguateConfig{MinTitleRatio: minRatio},
		Resolve: types.ResolveConfig{
			HTTPConfig: httpCfg,
			Mailto:     secrets.Default(loadedSecrets, "crossref-mailto", viper.GetString("crossref_mailto")),
		},
	}

	query := search.Query{
		Title:    title,
		Author:   author,
		WorkType: types.WorkType(workType),
	}

	client := &http.Client{Timeout: timeout}

	work, err := lookup.New(client, cfg).Lookup(cmd.Context(), query)
	if err != nil {
		return err
	}

	switch format {
	case "bibtex":
		entry, err := cite.FormatBibTeX(work)
		if err != nil {
			return err
		}
		fmt.Println(entry)
	case "csl":
		if err := cite.FormatCSL(work, os.Stdout); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want bibtex or csl)", format)
	}

	if save {
		store, err := library.Open(types.LibraryConfig{Dir: libraryDir})
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(work); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved: %s\n", work.DOI)
	}
	return nil
}
