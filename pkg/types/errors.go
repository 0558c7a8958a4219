// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// NotFoundError reports that no candidate survived search or
// disambiguation. It carries the original query so callers can print a
// precise diagnostic.
type NotFoundError struct {
	Title    string
	Author   string
	WorkType WorkType
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("no work found with title %q", e.Title)
	if e.Author != "" {
		msg += fmt.Sprintf(" and author %q", e.Author)
	}
	if e.WorkType != "" {
		msg += fmt.Sprintf(" and type %q", e.WorkType)
	}
	return msg
}

// TransportError reports a network or HTTP-layer failure against one of
// the external APIs. StatusCode is zero when the request never produced a
// response.
type TransportError struct {
	API        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.API, e.Err)
	}
	return fmt.Sprintf("%s returned HTTP %d", e.API, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RegistryError reports a non-success status from the bibliographic
// registry for a specific identifier.
type RegistryError struct {
	DOI        string
	StatusCode int
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry returned HTTP %d for doi %s", e.StatusCode, e.DOI)
}

// MalformedRecordError reports a registry record missing a mandatory
// field. The pipeline never emits a partially populated Work.
type MalformedRecordError struct {
	DOI   string
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("registry record for doi %s is missing %s", e.DOI, e.Field)
}

// UnsupportedTypeError reports a work type with no citation mapping.
type UnsupportedTypeError struct {
	Type WorkType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported entry type: %s", e.Type)
}
