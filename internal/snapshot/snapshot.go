// Package snapshot serializes the hierarchy model to a versioned JSON
// document and reconstructs it, so a trip can be scanned once and
// rendered many times without touching the filesystem again.
//
// The document is a structural cache of what exists, never a content
// cache: image bytes are a render-time concern and are not written.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/imca-cat/tripreport/internal/hierarchy"
)

// SchemaVersion is written by Encode and checked by Decode. Bump on any
// incompatible document change.
const SchemaVersion = 1

// SchemaMismatchError reports a document that does not match the
// expected schema. Field names the missing or invalid field.
type SchemaMismatchError struct {
	Field string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("snapshot schema mismatch: missing or invalid field %q", e.Field)
}

// VersionMismatchError reports a document written with an incompatible
// schema version.
type VersionMismatchError struct {
	Got  int
	Want int
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("snapshot schema version %d is not supported (want %d)", e.Got, e.Want)
}

// document is the on-disk shape. generated_at is informational only and
// takes no part in the round-trip law.
type document struct {
	SchemaVersion *int            `json:"schema_version"`
	GeneratedAt   time.Time       `json:"generated_at"`
	Trip          *hierarchy.Trip `json:"trip"`
}

// Encode renders the trip as an indented, human-inspectable JSON
// document.
func Encode(trip *hierarchy.Trip) ([]byte, error) {
	version := SchemaVersion
	doc := document{
		SchemaVersion: &version,
		GeneratedAt:   time.Now().UTC(),
		Trip:          trip,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode reconstructs a trip from a document produced by Encode. It
// rejects documents with a missing or incompatible schema version and
// documents whose structure does not match the model schema; it never
// returns a partial model.
func Decode(data []byte) (*hierarchy.Trip, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot document: %w", err)
	}
	if doc.SchemaVersion == nil {
		return nil, &SchemaMismatchError{Field: "schema_version"}
	}
	if *doc.SchemaVersion != SchemaVersion {
		return nil, &VersionMismatchError{Got: *doc.SchemaVersion, Want: SchemaVersion}
	}
	if doc.Trip == nil {
		return nil, &SchemaMismatchError{Field: "trip"}
	}
	if err := validateTrip(doc.Trip); err != nil {
		return nil, err
	}
	return doc.Trip, nil
}

// Write encodes trip and writes the document to path, creating parent
// directories as needed.
func Write(path string, trip *hierarchy.Trip) error {
	data, err := Encode(trip)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads and decodes the document at path.
func Load(path string) (*hierarchy.Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Decode(data)
}

func validateTrip(t *hierarchy.Trip) error {
	if t.Name == "" {
		return &SchemaMismatchError{Field: "trip.name"}
	}
	if t.Path == "" {
		return &SchemaMismatchError{Field: "trip.path"}
	}
	if t.SiteLevel && t.Pucks != nil {
		return &SchemaMismatchError{Field: "trip.pucks"}
	}
	if !t.SiteLevel && t.Sites != nil {
		return &SchemaMismatchError{Field: "trip.sites"}
	}
	for i, site := range t.Sites {
		field := fmt.Sprintf("trip.sites[%d]", i)
		if site == nil || site.Name == "" {
			return &SchemaMismatchError{Field: field + ".name"}
		}
		if site.Path == "" {
			return &SchemaMismatchError{Field: field + ".path"}
		}
		for j, puck := range site.Pucks {
			if err := validatePuck(puck, fmt.Sprintf("%s.pucks[%d]", field, j)); err != nil {
				return err
			}
		}
	}
	for i, puck := range t.Pucks {
		if err := validatePuck(puck, fmt.Sprintf("trip.pucks[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validatePuck(p *hierarchy.Puck, field string) error {
	if p == nil || p.Name == "" {
		return &SchemaMismatchError{Field: field + ".name"}
	}
	if p.Path == "" {
		return &SchemaMismatchError{Field: field + ".path"}
	}
	if err := validateIssues(p.Issues, field); err != nil {
		return err
	}
	for i, pin := range p.Pins {
		if err := validatePin(pin, fmt.Sprintf("%s.pins[%d]", field, i)); err != nil {
			return err
		}
	}
	return nil
}

func validatePin(p *hierarchy.Pin, field string) error {
	if p == nil || p.Name == "" {
		return &SchemaMismatchError{Field: field + ".name"}
	}
	if p.Path == "" {
		return &SchemaMismatchError{Field: field + ".path"}
	}
	if err := validateIssues(p.Issues, field); err != nil {
		return err
	}
	for i, c := range p.Collections {
		if err := validateCollection(c, fmt.Sprintf("%s.collections[%d]", field, i)); err != nil {
			return err
		}
	}
	return nil
}

func validateCollection(c *hierarchy.Collection, field string) error {
	if c == nil || c.Name == "" {
		return &SchemaMismatchError{Field: field + ".name"}
	}
	if c.Path == "" {
		return &SchemaMismatchError{Field: field + ".path"}
	}
	if len(c.Assets) == 0 {
		return &SchemaMismatchError{Field: field + ".assets"}
	}
	for i, slot := range c.Assets {
		if slot.Key == "" {
			return &SchemaMismatchError{Field: fmt.Sprintf("%s.assets[%d].key", field, i)}
		}
		if slot.RelPath == "" {
			return &SchemaMismatchError{Field: fmt.Sprintf("%s.assets[%d].rel_path", field, i)}
		}
	}
	return validateIssues(c.Issues, field)
}

func validateIssues(issues []hierarchy.Issue, field string) error {
	for i, issue := range issues {
		switch issue.Kind {
		case hierarchy.IssueMissingDirectory, hierarchy.IssueMissingAsset:
		default:
			return &SchemaMismatchError{Field: fmt.Sprintf("%s.issues[%d].kind", field, i)}
		}
	}
	return nil
}
