// Package hierarchy defines the in-memory model of an audited trip
// directory: Trip -> Site -> Puck -> Pin -> Collection, with per-node
// validation state and per-collection asset slots.
//
// The model is a plain data container. It is built once by the traversal
// scanner (or rehydrated from a snapshot document) and never mutated
// afterwards.
package hierarchy

import "path"

// IssueKind classifies a recoverable validation finding.
type IssueKind string

const (
	// IssueMissingDirectory marks a required subdirectory that was not found.
	IssueMissingDirectory IssueKind = "missing_directory"
	// IssueMissingAsset marks an expected asset file that was not found.
	IssueMissingAsset IssueKind = "missing_asset"
)

// Issue is one recoverable validation finding, scoped to a hierarchy path.
// Issues are accumulated as data during traversal, never raised as errors.
type Issue struct {
	// Path is the slash-joined hierarchy path below the trip root at which
	// the issue occurred, e.g. "siteA/puck1/pin2/C".
	Path    string    `json:"path"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// SlotKey identifies one of the six asset slots every collection carries.
type SlotKey string

const (
	SlotLoopInter000 SlotKey = "loop_inter_000"
	SlotLoopInter045 SlotKey = "loop_inter_045"
	SlotLoopInter090 SlotKey = "loop_inter_090"
	SlotRaster       SlotKey = "raster"
	SlotSpotsPlot    SlotKey = "spots_per_image"
	SlotFitnessPlot  SlotKey = "fitness"
)

// SlotKeys returns the six slot keys in canonical order. Every collection
// has exactly one slot per key, whether or not the file exists.
func SlotKeys() []SlotKey {
	return []SlotKey{
		SlotLoopInter000,
		SlotLoopInter045,
		SlotLoopInter090,
		SlotRaster,
		SlotSpotsPlot,
		SlotFitnessPlot,
	}
}

// AssetSlot records the expected location and observed presence of one
// asset file. Byte payloads are never stored here; renderers that embed
// images read them from RelPath at render time.
type AssetSlot struct {
	Key SlotKey `json:"key"`
	// RelPath is the canonical path of the asset relative to the
	// collection directory.
	RelPath string `json:"rel_path"`
	Present bool   `json:"present"`
}

// Collection is the leaf grouping representing one data-acquisition run.
type Collection struct {
	Name string `json:"name"`
	Path string `json:"path"`
	// Valid reports whether every required subdirectory exists. Missing
	// asset files do not affect it.
	Valid  bool        `json:"valid"`
	Assets []AssetSlot `json:"assets"`
	// Extras lists subdirectories present beyond the expected set. They
	// are reported but are not issues.
	Extras []string `json:"extras,omitempty"`
	Issues []Issue  `json:"issues,omitempty"`
}

// Pin groups the collections acquired from a single sample pin.
type Pin struct {
	Name        string        `json:"name"`
	Path        string        `json:"path"`
	Valid       bool          `json:"valid"`
	Collections []*Collection `json:"collections"`
	Issues      []Issue       `json:"issues,omitempty"`
}

// Puck groups pins.
type Puck struct {
	Name   string  `json:"name"`
	Path   string  `json:"path"`
	Valid  bool    `json:"valid"`
	Pins   []*Pin  `json:"pins"`
	Issues []Issue `json:"issues,omitempty"`
}

// Site is the optional grouping level between trip and pucks.
type Site struct {
	Name  string  `json:"name"`
	Path  string  `json:"path"`
	Pucks []*Puck `json:"pucks"`
}

// Trip is the root of the model. Exactly one Trip exists per scan.
//
// SiteLevel selects which child sequence is populated: Sites when the
// trip root contains site directories, Pucks when pucks sit directly
// under the root. The other sequence is always nil.
type Trip struct {
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	SiteLevel bool    `json:"site_level"`
	Sites     []*Site `json:"sites"`
	Pucks     []*Puck `json:"pucks"`
}

// Groups returns the puck groupings in traversal order regardless of the
// site-level mode. When the site level is disabled the trip acts as a
// single anonymous group; the returned view is synthesized on the fly and
// is not part of the serialized model.
func (t *Trip) Groups() []*Site {
	if t.SiteLevel {
		return t.Sites
	}
	return []*Site{{Name: "", Path: t.Path, Pucks: t.Pucks}}
}

// Counts holds per-level node totals for summary reporting.
type Counts struct {
	Sites       int
	Pucks       int
	Pins        int
	Collections int
}

// Counts tallies the nodes beneath the trip. Sites is zero when the site
// level is disabled.
func (t *Trip) Counts() Counts {
	var c Counts
	if t.SiteLevel {
		c.Sites = len(t.Sites)
	}
	for _, site := range t.Groups() {
		c.Pucks += len(site.Pucks)
		for _, puck := range site.Pucks {
			c.Pins += len(puck.Pins)
			for _, pin := range puck.Pins {
				c.Collections += len(pin.Collections)
			}
		}
	}
	return c
}

// AllIssues returns the union of the collection's own issues.
func (c *Collection) AllIssues() []Issue {
	return append([]Issue(nil), c.Issues...)
}

// AllIssues returns the pin's own issues followed by those of its
// collections, in traversal order.
func (p *Pin) AllIssues() []Issue {
	out := append([]Issue(nil), p.Issues...)
	for _, c := range p.Collections {
		out = append(out, c.Issues...)
	}
	return out
}

// AllIssues returns the puck's own issues followed by those of its
// descendants, in traversal order.
func (p *Puck) AllIssues() []Issue {
	out := append([]Issue(nil), p.Issues...)
	for _, pin := range p.Pins {
		out = append(out, pin.AllIssues()...)
	}
	return out
}

// AllIssues returns every issue recorded anywhere beneath the trip, in
// depth-first traversal order.
func (t *Trip) AllIssues() []Issue {
	var out []Issue
	for _, site := range t.Groups() {
		for _, puck := range site.Pucks {
			out = append(out, puck.AllIssues()...)
		}
	}
	return out
}

// Node is the read-only view of any hierarchy node yielded by Walk.
type Node interface {
	NodeName() string
	NodePath() string
}

func (t *Trip) NodeName() string       { return t.Name }
func (t *Trip) NodePath() string       { return t.Path }
func (s *Site) NodeName() string       { return s.Name }
func (s *Site) NodePath() string       { return s.Path }
func (p *Puck) NodeName() string       { return p.Name }
func (p *Puck) NodePath() string       { return p.Path }
func (p *Pin) NodeName() string        { return p.Name }
func (p *Pin) NodePath() string        { return p.Path }
func (c *Collection) NodeName() string { return c.Name }
func (c *Collection) NodePath() string { return c.Path }

// Walk visits every node depth-first, the trip first, passing the
// slash-joined ancestor path (empty for the trip itself) and the node.
// Children are visited in their stored, name-sorted order.
func (t *Trip) Walk(fn func(ancestors string, node Node)) {
	fn("", t)
	for _, site := range t.Groups() {
		base := ""
		if t.SiteLevel {
			fn("", Node(site))
			base = site.Name
		}
		for _, puck := range site.Pucks {
			fn(base, puck)
			puckPath := join(base, puck.Name)
			for _, pin := range puck.Pins {
				fn(puckPath, pin)
				pinPath := join(puckPath, pin.Name)
				for _, c := range pin.Collections {
					fn(pinPath, c)
				}
			}
		}
	}
}

func join(base, name string) string {
	if base == "" {
		return name
	}
	return path.Join(base, name)
}
