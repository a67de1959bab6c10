package traversal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imca-cat/tripreport/internal/hierarchy"
	"github.com/imca-cat/tripreport/internal/testutil"
)

// TestScan_EndToEndScenario walks one trip with a single site "A", a
// puck "P1" missing its marker directory, and a pin "N1" holding one
// collection "C" missing its 45 degree image: the puck gets exactly one
// missing_directory issue, the collection keeps five present slots and
// one absent with one missing_asset issue, and the trip aggregate is
// exactly those two issues.
func TestScan_EndToEndScenario(t *testing.T) {
	policy := DefaultPolicy()
	policy.PuckMarkers = []string{"puck.info"}

	root := t.TempDir()
	pin := mkdir(t, root, "A", "P1", "N1")
	makeCollection(t, pin, "C", hierarchy.SlotLoopInter045)
	// P1 deliberately has no puck.info marker.
	require.NoDirExists(t, filepath.Join(root, "A", "P1", "puck.info"))

	s := New(Config{Policy: policy, SiteLevel: true, Logger: testutil.NewTestLogger(t)})
	trip, err := s.Scan(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, trip.Sites, 1)
	require.Len(t, trip.Sites[0].Pucks, 1)
	puck := trip.Sites[0].Pucks[0]
	assert.False(t, puck.Valid)
	require.Len(t, puck.Issues, 1)
	assert.Equal(t, hierarchy.IssueMissingDirectory, puck.Issues[0].Kind)
	assert.Equal(t, "A/P1", puck.Issues[0].Path)

	require.Len(t, puck.Pins, 1)
	pinNode := puck.Pins[0]
	assert.True(t, pinNode.Valid)
	require.Len(t, pinNode.Collections, 1)

	c := pinNode.Collections[0]
	assert.True(t, c.Valid)
	require.Len(t, c.Assets, 6)
	var present, absent int
	for _, slot := range c.Assets {
		if slot.Present {
			present++
		} else {
			absent++
			assert.Equal(t, hierarchy.SlotLoopInter045, slot.Key)
		}
	}
	assert.Equal(t, 5, present)
	assert.Equal(t, 1, absent)
	require.Len(t, c.Issues, 1)
	assert.Equal(t, hierarchy.IssueMissingAsset, c.Issues[0].Kind)
	assert.Equal(t, "A/P1/N1/C", c.Issues[0].Path)

	all := trip.AllIssues()
	require.Len(t, all, 2)
	assert.Equal(t, hierarchy.IssueMissingDirectory, all[0].Kind)
	assert.Equal(t, hierarchy.IssueMissingAsset, all[1].Kind)
}
