// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads contact addresses and keys from a directory of
// plain-text files. Each file is one entry: the filename is the key name
// and the file contents (trimmed) are the value.
//
// Supported key files: openalex-email, crossref-mailto. Both are polite
// pool contact addresses, not credentials; the external APIs need no
// authentication.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but
// do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Default returns fallback when it is non-empty, then the loaded value for
// key, then the empty string. Flag and config values take precedence over
// the secrets directory this way.
func Default(loaded map[string]string, key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return loaded[key]
}
