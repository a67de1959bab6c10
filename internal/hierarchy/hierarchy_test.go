package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTrip returns a two-site model with issues at several levels.
func buildTrip() *Trip {
	collection := func(name, path string, issues ...Issue) *Collection {
		c := &Collection{Name: name, Path: path, Valid: len(issues) == 0, Issues: issues}
		for _, key := range SlotKeys() {
			c.Assets = append(c.Assets, AssetSlot{Key: key, RelPath: "camera/" + string(key), Present: true})
		}
		return c
	}
	return &Trip{
		Name:      "trip",
		Path:      "/data/trip",
		SiteLevel: true,
		Sites: []*Site{
			{
				Name: "siteA",
				Path: "/data/trip/siteA",
				Pucks: []*Puck{
					{
						Name:  "puck1",
						Path:  "/data/trip/siteA/puck1",
						Valid: false,
						Issues: []Issue{{
							Path:    "siteA/puck1",
							Kind:    IssueMissingDirectory,
							Message: "puck is missing required directory \"puck.info\"",
						}},
						Pins: []*Pin{
							{
								Name:  "pin1",
								Path:  "/data/trip/siteA/puck1/pin1",
								Valid: true,
								Collections: []*Collection{
									collection("A", "/data/trip/siteA/puck1/pin1/A", Issue{
										Path:    "siteA/puck1/pin1/A",
										Kind:    IssueMissingAsset,
										Message: "expected asset camera/raster_090.jpeg not found",
									}),
									collection("B", "/data/trip/siteA/puck1/pin1/B"),
								},
							},
						},
					},
				},
			},
			{
				Name: "siteB",
				Path: "/data/trip/siteB",
				Pucks: []*Puck{
					{
						Name:  "puck2",
						Path:  "/data/trip/siteB/puck2",
						Valid: true,
						Pins: []*Pin{
							{
								Name:        "pin2",
								Path:        "/data/trip/siteB/puck2/pin2",
								Valid:       true,
								Collections: []*Collection{collection("C", "/data/trip/siteB/puck2/pin2/C")},
							},
						},
					},
				},
			},
		},
	}
}

func TestTrip_AllIssues(t *testing.T) {
	trip := buildTrip()

	all := trip.AllIssues()
	require.Len(t, all, 2)
	assert.Equal(t, IssueMissingDirectory, all[0].Kind)
	assert.Equal(t, "siteA/puck1", all[0].Path)
	assert.Equal(t, IssueMissingAsset, all[1].Kind)
	assert.Equal(t, "siteA/puck1/pin1/A", all[1].Path)
}

func TestTrip_AllIssues_Empty(t *testing.T) {
	trip := &Trip{Name: "t", Path: "/t", SiteLevel: false, Pucks: []*Puck{}}
	assert.Empty(t, trip.AllIssues())
}

func TestTrip_Walk_DepthFirstOrder(t *testing.T) {
	trip := buildTrip()

	var visited []string
	trip.Walk(func(ancestors string, node Node) {
		if ancestors == "" {
			visited = append(visited, node.NodeName())
		} else {
			visited = append(visited, ancestors+"/"+node.NodeName())
		}
	})

	assert.Equal(t, []string{
		"trip",
		"siteA",
		"siteA/puck1",
		"siteA/puck1/pin1",
		"siteA/puck1/pin1/A",
		"siteA/puck1/pin1/B",
		"siteB",
		"siteB/puck2",
		"siteB/puck2/pin2",
		"siteB/puck2/pin2/C",
	}, visited)
}

func TestTrip_Walk_NoSiteLevel(t *testing.T) {
	trip := &Trip{
		Name:      "trip",
		Path:      "/t",
		SiteLevel: false,
		Pucks: []*Puck{
			{Name: "puck1", Path: "/t/puck1", Valid: true, Pins: []*Pin{
				{Name: "pin1", Path: "/t/puck1/pin1", Valid: true, Collections: []*Collection{}},
			}},
		},
	}

	var visited []string
	trip.Walk(func(ancestors string, node Node) {
		visited = append(visited, ancestors+"|"+node.NodeName())
	})

	// No synthetic site node appears when the site level is disabled.
	assert.Equal(t, []string{"|trip", "|puck1", "puck1|pin1"}, visited)
}

func TestTrip_Groups(t *testing.T) {
	withSites := buildTrip()
	assert.Len(t, withSites.Groups(), 2)
	assert.Equal(t, "siteA", withSites.Groups()[0].Name)

	flat := &Trip{Name: "t", Path: "/t", Pucks: []*Puck{{Name: "p", Path: "/t/p"}}}
	groups := flat.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].Name)
	assert.Equal(t, flat.Pucks, groups[0].Pucks)
}

func TestTrip_Counts(t *testing.T) {
	counts := buildTrip().Counts()
	assert.Equal(t, Counts{Sites: 2, Pucks: 2, Pins: 2, Collections: 3}, counts)
}

func TestSlotKeys_CanonicalOrder(t *testing.T) {
	keys := SlotKeys()
	require.Len(t, keys, 6)
	assert.Equal(t, SlotLoopInter000, keys[0])
	assert.Equal(t, SlotFitnessPlot, keys[5])
}
