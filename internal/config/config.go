package config

import "time"

const (
	// Glyph geometry
	GlyphRows   = 7 // Bitmap rows per character
	GlyphCols   = 5 // Bitmap columns per character
	CellWidth   = 7 // Glyph bitmap plus a 1-cell margin either side
	GlyphGap    = 1 // Separator columns between consecutive characters
	GridHeight  = 9 // Glyph rows plus a 1-cell margin above and below
	GlyphMargin = 1 // Offset of the bitmap inside its cell

	// Masking patterns
	BlockSize       = 4                     // Block variant tile edge in cells
	WaveColStep     = 0.3                   // Wave phase per column
	WaveRowStep     = 0.2                   // Wave phase per row
	WaveSpeed       = 0.01                  // Wave phase per wall-clock millisecond
	BlockStepMillis = 200                   // Block variant animation step
	TickInterval    = 20 * time.Millisecond // Dynamic layer refresh cadence
	TickHistorySize = 50                    // Tick intervals kept for the rate readout

	// Display
	TargetFPS   = 30
	DefaultText = "HELLO, WORLD!"
	InputLimit  = 48 // Characters accepted by the input widget

	// Demo mode
	DemoInterval = 4 * time.Second // Time between demo phrase/algorithm changes

	// App
	AppName    = "PIXELMASK"
	AppVersion = "1.0"
)
