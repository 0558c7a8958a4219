package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cite-engine/internal/cite"
	"github.com/pdiddy/cite-engine/internal/library"
	"github.com/pdiddy/cite-engine/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the local citation library",
	Long: `Library manages citations saved from previous lookups. The library is a
local SQLite database; it is never consulted during resolution.`,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved citations, most recent first",
	RunE:  runLibraryList,
}

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library as a BibTeX file on stdout",
	RunE:  runLibraryExport,
}

func init() {
	libraryCmd.PersistentFlags().String("library-dir", "library", "directory for the citation library")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryExportCmd)
	rootCmd.AddCommand(libraryCmd)
}

func openStore(cmd *cobra.Command) (*library.Store, error) {
	dir, _ := cmd.Flags().GetString("library-dir")
	return library.Open(types.LibraryConfig{Dir: dir})
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	works, err := store.List()
	if err != nil {
		return err
	}
	if len(works) == 0 {
		fmt.Println("Library is empty.")
		return nil
	}

	for _, w := range works {
		fmt.Printf("%-24s  %s (%d)  doi:%s\n", cite.Key(w), w.Title, w.Year, w.DOI)
	}
	fmt.Printf("\n%d saved citation(s)\n", len(works))
	return nil
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ExportBibTeX(os.Stdout)
}
