package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imca-cat/tripreport/internal/hierarchy"
)

func testTrip() *hierarchy.Trip {
	return &hierarchy.Trip{
		Name:      "trip-2026-03",
		Path:      "/data/trip-2026-03",
		SiteLevel: true,
		Sites: []*hierarchy.Site{
			{Name: "siteA", Path: "/data/trip-2026-03/siteA", Pucks: []*hierarchy.Puck{
				{
					Name:  "puck1",
					Path:  "/data/trip-2026-03/siteA/puck1",
					Valid: false,
					Issues: []hierarchy.Issue{{
						Path:    "siteA/puck1",
						Kind:    hierarchy.IssueMissingDirectory,
						Message: "puck is missing required directory \"puck.info\"",
					}},
					Pins: []*hierarchy.Pin{
						{
							Name:  "pin1",
							Path:  "/data/trip-2026-03/siteA/puck1/pin1",
							Valid: true,
							Collections: []*hierarchy.Collection{{
								Name:  "A",
								Path:  "/data/trip-2026-03/siteA/puck1/pin1/A",
								Valid: true,
								Assets: []hierarchy.AssetSlot{
									{Key: hierarchy.SlotLoopInter000, RelPath: "camera/loop-inter_4_000.jpeg", Present: true},
									{Key: hierarchy.SlotLoopInter045, RelPath: "camera/loop-inter_4_045.jpeg", Present: false},
								},
								Extras: []string{"scratch"},
								Issues: []hierarchy.Issue{{
									Path:    "siteA/puck1/pin1/A",
									Kind:    hierarchy.IssueMissingAsset,
									Message: "expected asset camera/loop-inter_4_045.jpeg not found",
								}},
							}},
						},
						{
							Name:        "pin2",
							Path:        "/data/trip-2026-03/siteA/puck1/pin2",
							Valid:       false,
							Collections: []*hierarchy.Collection{},
							Issues: []hierarchy.Issue{{
								Path:    "siteA/puck1/pin2",
								Kind:    hierarchy.IssueMissingDirectory,
								Message: "pin has no collection directories",
							}},
						},
					},
				},
			}},
		},
	}
}

func TestRender_Tree(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, testTrip(), Options{NoColor: true})
	out := buf.String()

	assert.Contains(t, out, "Trip: trip-2026-03")
	assert.Contains(t, out, "Site: siteA")
	assert.Contains(t, out, "Puck: puck1 [invalid]")
	assert.Contains(t, out, "Pin: pin1")
	assert.Contains(t, out, "Collection: A")
	assert.Contains(t, out, "loop_inter_000 (ok)")
	assert.Contains(t, out, "loop_inter_045 (missing camera/loop-inter_4_045.jpeg)")
	assert.Contains(t, out, "scratch (extra)")
	assert.Contains(t, out, "no collection directories")
}

func TestRender_SummaryAndIssueTable(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, testTrip(), Options{NoColor: true})
	out := buf.String()

	assert.Contains(t, out, "1 sites, 1 pucks, 2 pins, 1 collections")
	assert.Contains(t, out, "3 issues detected:")
	assert.Contains(t, out, "missing_directory")
	assert.Contains(t, out, "missing_asset")
	assert.Contains(t, out, "siteA/puck1/pin2")
}

func TestRender_CleanTrip(t *testing.T) {
	trip := &hierarchy.Trip{
		Name:      "trip",
		Path:      "/t",
		SiteLevel: false,
		Pucks: []*hierarchy.Puck{
			{Name: "puck1", Path: "/t/puck1", Valid: true, Pins: []*hierarchy.Pin{
				{Name: "pin1", Path: "/t/puck1/pin1", Valid: true, Collections: []*hierarchy.Collection{{
					Name: "A", Path: "/t/puck1/pin1/A", Valid: true,
					Assets: []hierarchy.AssetSlot{{Key: hierarchy.SlotRaster, RelPath: "camera/raster_090.jpeg", Present: true}},
				}}},
			}},
		},
	}

	var buf bytes.Buffer
	Render(&buf, trip, Options{NoColor: true})
	out := buf.String()

	assert.NotContains(t, out, "Site:")
	assert.Contains(t, out, "1 pucks, 1 pins, 1 collections")
	assert.Contains(t, out, "All expected directories and assets found.")
}
