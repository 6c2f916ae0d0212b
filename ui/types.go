// Package ui draws the HUD, overlay legend and control panel for the wind
// demo.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme is the palette and metrics shared by every panel. The palette
// follows the renderer: cool blues for flow, amber for headings.
type Theme struct {
	// Panels
	PanelBg, PanelBorder rl.Color
	SectionHeader        rl.Color

	// Text
	LabelColor, ValueColor rl.Color
	FontSize               int32
	HeaderFontSize         int32

	// Bars (perf panel)
	BarBg, BarFill rl.Color
	BarHeight      int32
	LabelWidth     int32

	// Overlay status dots
	Enabled, Disabled rl.Color

	Padding    int32
	LineHeight int32
}

// DefaultTheme returns the dark debug theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 16, G: 21, B: 28, A: 235},
		PanelBorder:    rl.Color{R: 52, G: 66, B: 84, A: 255},
		SectionHeader:  rl.Color{R: 240, G: 190, B: 80, A: 255},
		LabelColor:     rl.Color{R: 170, G: 182, B: 196, A: 255},
		ValueColor:     rl.RayWhite,
		FontSize:       12,
		HeaderFontSize: 14,
		BarBg:          rl.Color{R: 34, G: 40, B: 48, A: 255},
		BarFill:        rl.Color{R: 80, G: 160, B: 230, A: 255},
		BarHeight:      10,
		LabelWidth:     70,
		Enabled:        rl.Color{R: 90, G: 210, B: 170, A: 255},
		Disabled:       rl.Color{R: 70, G: 76, B: 86, A: 255},
		Padding:        10,
		LineHeight:     16,
	}
}
