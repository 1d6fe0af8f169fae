package core

// Color is a palette index shared by both front ends.
// The terminal maps it to ANSI codes, the window to RGB.
type Color uint8

// Palette entries used by the arena.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Named roles so gameplay code never picks raw palette entries.
const (
	ColorPlayer   = ColorCyan
	ColorHurt     = ColorBrightRed
	ColorFlash    = ColorBrightWhite
	ColorWall     = ColorGray
	ColorCoin     = ColorBrightYellow
	ColorHazard   = ColorRed
	ColorGoal     = ColorBrightGreen
	ColorLauncher = ColorMagenta
	ColorSpark    = ColorOrange
)

var rgbPalette = [...][3]uint8{
	ColorDefault:       {210, 210, 220},
	ColorRed:           {220, 70, 70},
	ColorGreen:         {80, 200, 120},
	ColorYellow:        {230, 200, 80},
	ColorBlue:          {70, 110, 220},
	ColorMagenta:       {190, 90, 220},
	ColorCyan:          {80, 200, 230},
	ColorWhite:         {220, 220, 220},
	ColorBrightRed:     {255, 90, 90},
	ColorBrightGreen:   {120, 255, 160},
	ColorBrightYellow:  {255, 220, 90},
	ColorBrightBlue:    {120, 160, 255},
	ColorBrightMagenta: {240, 130, 255},
	ColorBrightCyan:    {140, 240, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 160, 60},
	ColorGray:          {70, 75, 95},
}

// RGB returns the 8-bit channels for c. Unknown entries fall back to ColorDefault.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(rgbPalette) {
		c = ColorDefault
	}
	p := rgbPalette[c]
	return p[0], p[1], p[2]
}
