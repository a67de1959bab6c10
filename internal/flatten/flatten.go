// Package flatten projects the hierarchy tree into one row per
// collection for tabular renderers. The projection is pure: it never
// touches the filesystem and can be re-derived from the same model any
// number of times.
package flatten

import "github.com/imca-cat/tripreport/internal/hierarchy"

// Row is one collection with its ancestor context denormalized in. Site
// is empty when the trip was scanned without a site level; renderers
// substitute their own placeholder.
type Row struct {
	Trip           string
	TripPath       string
	Site           string
	SitePath       string
	Puck           string
	PuckPath       string
	Pin            string
	PinPath        string
	Collection     string
	CollectionPath string

	// Valid mirrors the collection's directory-level validation status.
	Valid  bool
	Assets []hierarchy.AssetSlot
	Extras []string
	// Issues are the findings scoped to this collection only.
	Issues []hierarchy.Issue
}

// Rows materializes the flattened view of trip, one row per collection,
// in the tree's depth-first name-sorted order. Pins without collections
// contribute no rows; their issues remain visible through the trip's
// aggregate.
func Rows(trip *hierarchy.Trip) []Row {
	var rows []Row
	for _, site := range trip.Groups() {
		siteName, sitePath := site.Name, site.Path
		if !trip.SiteLevel {
			siteName, sitePath = "", ""
		}
		for _, puck := range site.Pucks {
			for _, pin := range puck.Pins {
				for _, c := range pin.Collections {
					rows = append(rows, Row{
						Trip:           trip.Name,
						TripPath:       trip.Path,
						Site:           siteName,
						SitePath:       sitePath,
						Puck:           puck.Name,
						PuckPath:       puck.Path,
						Pin:            pin.Name,
						PinPath:        pin.Path,
						Collection:     c.Name,
						CollectionPath: c.Path,
						Valid:          c.Valid,
						Assets:         c.Assets,
						Extras:         c.Extras,
						Issues:         c.Issues,
					})
				}
			}
		}
	}
	return rows
}
