// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists citations the user chose to save and exports
// them as BibTeX. The library is write-on-request only: the lookup
// pipeline never consults it.
package library

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cite-engine/internal/cite"
	"github.com/pdiddy/cite-engine/pkg/types"
)

const dbFile = "library.db"

// Store manages the saved-citation SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the library database at cfg.Dir/library.db,
// creating the schema if it does not exist.
func Open(cfg types.LibraryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS works (
		doi TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		authors TEXT NOT NULL,
		year INTEGER NOT NULL,
		url TEXT NOT NULL,
		type TEXT NOT NULL,
		journal TEXT,
		pages TEXT,
		volume TEXT,
		saved_at INTEGER NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save upserts w keyed by DOI. Saving the same work twice keeps a single
// row.
func (s *Store) Save(w types.Work) error {
	authors, err := json.Marshal(w.Authors)
	if err != nil {
		return fmt.Errorf("marshaling authors: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO works
		(doi, title, authors, year, url, type, journal, pages, volume, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(doi) DO UPDATE SET
			title=excluded.title, authors=excluded.authors, year=excluded.year,
			url=excluded.url, type=excluded.type, journal=excluded.journal,
			pages=excluded.pages, volume=excluded.volume, saved_at=excluded.saved_at`,
		w.DOI, w.Title, string(authors), w.Year, w.URL, string(w.Type),
		w.Journal, w.Pages, w.Volume, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("saving work %s: %w", w.DOI, err)
	}
	return nil
}

// List returns saved works, most recently saved first.
func (s *Store) List() ([]types.Work, error) {
	rows, err := s.db.Query(`SELECT doi, title, authors, year, url, type, journal, pages, volume
		FROM works ORDER BY saved_at DESC, doi`)
	if err != nil {
		return nil, fmt.Errorf("querying works: %w", err)
	}
	defer rows.Close()

	var works []types.Work
	for rows.Next() {
		var w types.Work
		var authors, workType string
		if err := rows.Scan(&w.DOI, &w.Title, &authors, &w.Year, &w.URL, &workType,
			&w.Journal, &w.Pages, &w.Volume); err != nil {
			return nil, fmt.Errorf("scanning work: %w", err)
		}
		if err := json.Unmarshal([]byte(authors), &w.Authors); err != nil {
			return nil, fmt.Errorf("unmarshaling authors for %s: %w", w.DOI, err)
		}
		w.Type = types.WorkType(workType)
		works = append(works, w)
	}
	return works, rows.Err()
}

// ExportBibTeX writes every saved work as a BibTeX entry to wr, ordered by
// citation key so the export is deterministic. Entries are separated by a
// blank line.
func (s *Store) ExportBibTeX(wr io.Writer) error {
	works, err := s.List()
	if err != nil {
		return err
	}

	sort.Slice(works, func(i, j int) bool {
		return cite.Key(works[i]) < cite.Key(works[j])
	})

	for i, w := range works {
		entry, err := cite.FormatBibTeX(w)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", w.DOI, err)
		}
		if i > 0 {
			if _, err := fmt.Fprint(wr, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(wr, entry); err != nil {
			return err
		}
	}
	if len(works) > 0 {
		_, err = fmt.Fprintln(wr)
	}
	return err
}
