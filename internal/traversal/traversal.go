// Package traversal walks a trip directory and builds the validated
// hierarchy model. One bounded, depth-limited walk per Scan call; all
// recoverable findings are accumulated into the model as issues and the
// walk aborts only on root or mid-walk I/O failures.
package traversal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/imca-cat/tripreport/internal/hierarchy"
)

// Config holds scanner configuration.
type Config struct {
	// Policy fixes the expected directory shape. Zero value means
	// DefaultPolicy.
	Policy Policy
	// SiteLevel selects whether the root's children are sites (true) or
	// pucks (false).
	SiteLevel bool
	// Logger receives per-node progress at debug level. Nil discards.
	Logger *slog.Logger
}

// Scanner converts a root filesystem path into a populated hierarchy
// model. Construct once, Scan any number of roots; the scanner itself is
// stateless between calls.
type Scanner struct {
	policy    Policy
	siteLevel bool
	logger    *slog.Logger
}

// New creates a scanner from cfg.
func New(cfg Config) *Scanner {
	p := cfg.Policy
	if len(p.Assets) == 0 && len(p.CollectionDirs) == 0 && len(p.PuckMarkers) == 0 && len(p.PinMarkers) == 0 {
		p = DefaultPolicy()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{policy: p, siteLevel: cfg.SiteLevel, logger: logger}
}

// Scan walks root and returns the populated trip model. Two scans of an
// unmodified directory produce structurally identical models: children
// are visited in lexicographic name order and nothing depends on
// filesystem iteration order.
//
// Cancellation is checked cooperatively between puck and pin iterations.
func (s *Scanner) Scan(ctx context.Context, root string) (*hierarchy.Trip, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &RootNotFoundError{Path: root}
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, &RootNotFoundError{Path: abs}
	}

	s.logger.Info("scanning trip directory", "root", abs, "site_level", s.siteLevel)

	trip := &hierarchy.Trip{
		Name:      filepath.Base(abs),
		Path:      abs,
		SiteLevel: s.siteLevel,
	}

	children, err := listDirs(abs)
	if err != nil {
		return nil, &RootNotReadableError{Path: abs, Err: err}
	}

	if s.siteLevel {
		for _, siteDir := range children {
			s.logger.Debug("found site", "site", siteDir)
			site := &hierarchy.Site{
				Name:  siteDir,
				Path:  filepath.Join(abs, siteDir),
				Pucks: []*hierarchy.Puck{},
			}
			trip.Sites = append(trip.Sites, site)
			puckDirs, err := listDirs(site.Path)
			if err != nil {
				return nil, &IOError{Path: site.Path, Err: err}
			}
			for _, puckDir := range puckDirs {
				puck, err := s.scanPuck(ctx, site.Path, puckDir, site.Name)
				if err != nil {
					return nil, err
				}
				site.Pucks = append(site.Pucks, puck)
			}
		}
		if trip.Sites == nil {
			trip.Sites = []*hierarchy.Site{}
		}
	} else {
		trip.Pucks = []*hierarchy.Puck{}
		for _, puckDir := range children {
			puck, err := s.scanPuck(ctx, abs, puckDir, "")
			if err != nil {
				return nil, err
			}
			trip.Pucks = append(trip.Pucks, puck)
		}
	}
	return trip, nil
}

func (s *Scanner) scanPuck(ctx context.Context, parent, name, hpath string) (*hierarchy.Puck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.logger.Debug("processing puck", "puck", name)

	puck := &hierarchy.Puck{
		Name:  name,
		Path:  filepath.Join(parent, name),
		Valid: true,
		Pins:  []*hierarchy.Pin{},
	}
	puckHPath := joinHPath(hpath, name)

	children, err := listDirs(puck.Path)
	if err != nil {
		return nil, &IOError{Path: puck.Path, Err: err}
	}

	for _, marker := range s.policy.PuckMarkers {
		if !contains(children, marker) {
			puck.Valid = false
			puck.Issues = append(puck.Issues, hierarchy.Issue{
				Path:    puckHPath,
				Kind:    hierarchy.IssueMissingDirectory,
				Message: fmt.Sprintf("puck is missing required directory %q", marker),
			})
		}
	}

	for _, pinDir := range children {
		if contains(s.policy.PuckMarkers, pinDir) {
			continue
		}
		pin, err := s.scanPin(ctx, puck.Path, pinDir, puckHPath)
		if err != nil {
			return nil, err
		}
		puck.Pins = append(puck.Pins, pin)
	}
	return puck, nil
}

func (s *Scanner) scanPin(ctx context.Context, parent, name, hpath string) (*hierarchy.Pin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.logger.Debug("inspecting pin", "pin", name)

	pin := &hierarchy.Pin{
		Name:        name,
		Path:        filepath.Join(parent, name),
		Valid:       true,
		Collections: []*hierarchy.Collection{},
	}
	pinHPath := joinHPath(hpath, name)

	children, err := listDirs(pin.Path)
	if err != nil {
		return nil, &IOError{Path: pin.Path, Err: err}
	}

	for _, marker := range s.policy.PinMarkers {
		if !contains(children, marker) {
			pin.Valid = false
			pin.Issues = append(pin.Issues, hierarchy.Issue{
				Path:    pinHPath,
				Kind:    hierarchy.IssueMissingDirectory,
				Message: fmt.Sprintf("pin is missing required directory %q", marker),
			})
		}
	}

	var collectionDirs []string
	for _, child := range children {
		if isCollectionName(child) && !contains(s.policy.PinMarkers, child) {
			collectionDirs = append(collectionDirs, child)
		}
	}
	if len(collectionDirs) == 0 {
		pin.Valid = false
		pin.Issues = append(pin.Issues, hierarchy.Issue{
			Path:    pinHPath,
			Kind:    hierarchy.IssueMissingDirectory,
			Message: "pin has no collection directories",
		})
		return pin, nil
	}

	for _, dir := range collectionDirs {
		c, err := s.scanCollection(pin.Path, dir, pinHPath)
		if err != nil {
			return nil, err
		}
		pin.Collections = append(pin.Collections, c)
	}
	return pin, nil
}

func (s *Scanner) scanCollection(parent, name, hpath string) (*hierarchy.Collection, error) {
	s.logger.Debug("analysing collection", "collection", name)

	c := &hierarchy.Collection{
		Name:  name,
		Path:  filepath.Join(parent, name),
		Valid: true,
	}
	cHPath := joinHPath(hpath, name)

	children, err := listDirs(c.Path)
	if err != nil {
		return nil, &IOError{Path: c.Path, Err: err}
	}

	for _, expected := range s.policy.CollectionDirs {
		if !contains(children, expected) {
			c.Valid = false
			c.Issues = append(c.Issues, hierarchy.Issue{
				Path:    cHPath,
				Kind:    hierarchy.IssueMissingDirectory,
				Message: fmt.Sprintf("collection is missing required directory %q", expected),
			})
		}
	}
	for _, child := range children {
		if !contains(s.policy.CollectionDirs, child) {
			c.Extras = append(c.Extras, child)
		}
	}

	// Every collection carries one slot per spec entry; absent files are
	// represented, never omitted, and do not affect Valid.
	for _, spec := range s.policy.Assets {
		full := filepath.Join(c.Path, filepath.FromSlash(spec.RelPath))
		_, statErr := os.Stat(full)
		present := statErr == nil
		if statErr != nil && !os.IsNotExist(statErr) {
			return nil, &IOError{Path: full, Err: statErr}
		}
		c.Assets = append(c.Assets, hierarchy.AssetSlot{
			Key:     spec.Key,
			RelPath: spec.RelPath,
			Present: present,
		})
		if !present {
			c.Issues = append(c.Issues, hierarchy.Issue{
				Path:    cHPath,
				Kind:    hierarchy.IssueMissingAsset,
				Message: fmt.Sprintf("expected asset %s not found", spec.RelPath),
			})
		}
	}
	return c, nil
}

// listDirs returns the names of path's immediate subdirectories in
// lexicographic order.
func listDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// isCollectionName reports whether name is a lettered collection
// directory: a single uppercase ASCII letter.
func isCollectionName(name string) bool {
	return len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z'
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

func joinHPath(base, name string) string {
	if base == "" {
		return name
	}
	return path.Join(base, name)
}
