package traversal

import "github.com/imca-cat/tripreport/internal/hierarchy"

// AssetSpec names one expected asset file, relative to its collection
// directory.
type AssetSpec struct {
	Key     hierarchy.SlotKey
	RelPath string
}

// Policy fixes the directory shape the scanner validates: which
// subdirectories each level must contain and where the six asset files
// live inside a collection. It is injected at scanner construction so
// tests can supply fixture-specific layouts.
type Policy struct {
	// PuckMarkers are subdirectories every puck must contain. Marker
	// directories are not descended into as pins.
	PuckMarkers []string
	// PinMarkers are subdirectories every pin must contain. Marker
	// directories are never treated as collection candidates.
	PinMarkers []string
	// CollectionDirs are subdirectories every collection must contain.
	CollectionDirs []string
	// Assets are the six expected files per collection, in slot order.
	Assets []AssetSpec
}

// DefaultPolicy returns the canonical beamline layout: collections hold
// camera, diff-center, images and processing directories; the three
// loop-inter captures and the raster preview live under camera/ and the
// two processing plots under processing/. These names are fixed policy
// for interoperability, not runtime knobs.
func DefaultPolicy() Policy {
	return Policy{
		CollectionDirs: []string{"camera", "diff-center", "images", "processing"},
		Assets: []AssetSpec{
			{Key: hierarchy.SlotLoopInter000, RelPath: "camera/loop-inter_4_000.jpeg"},
			{Key: hierarchy.SlotLoopInter045, RelPath: "camera/loop-inter_4_045.jpeg"},
			{Key: hierarchy.SlotLoopInter090, RelPath: "camera/loop-inter_4_090.jpeg"},
			{Key: hierarchy.SlotRaster, RelPath: "camera/raster_090.jpeg"},
			{Key: hierarchy.SlotSpotsPlot, RelPath: "processing/SPOT.XDS.SpotsPerImage.png"},
			{Key: hierarchy.SlotFitnessPlot, RelPath: "processing/INTEGRATE_select2.mrfana.fitness_batch_select2.png"},
		},
	}
}
