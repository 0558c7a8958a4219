// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the OpenAlex index for candidate works matching a
// title and optional author. Candidates are unvalidated search hits; they
// exist only until disambiguation picks one to resolve.
package search

import (
	"github.com/pdiddy/cite-engine/pkg/types"
)

// Query holds the lookup parameters. Title is required; Author and
// WorkType narrow the match.
type Query struct {
	Title    string
	Author   string
	WorkType types.WorkType
}

// IsEmpty reports whether the query contains no searchable title.
func (q Query) IsEmpty() bool {
	return q.Title == ""
}

// Candidate is a single search hit prior to disambiguation. DOI is empty
// when the index has no identifier for the hit; such candidates cannot be
// resolved downstream.
type Candidate struct {
	Title          string
	DOI            string
	Type           types.WorkType
	DisplayAuthors []string
}
