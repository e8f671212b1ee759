package config

// Screen layout configuration
const (
	// Logical screen size in pixels
	ScreenWidth  = 960
	ScreenHeight = 540

	// Width of one wall slot (side + arch + side) in pixels at rest
	SlotWidth = 360

	// Wall geometry, relative to ScreenHeight
	WallTop      = 0.08
	FloorLine    = 0.86
	ArchWidth    = 0.36 // Fraction of SlotWidth
	ArchHeight   = 0.55 // Fraction of the wall height
	TorchOffset  = 0.30 // Fraction of SlotWidth from the slot center
	TorchHeight  = 0.42 // Fraction of the wall height from the floor
	ZoomedScale  = 3.2  // Scale reached at the end of a zoom-in
	LabelSize    = 22
	GraffitiSize = 20
	TitleSize    = 42
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return 1280, 720
}
