package ui

// The Color functions return the escape code of the active theme for each
// role, or "" when colors are disabled.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed marks errors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen marks successes.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow marks warnings.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue highlights primary values.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan marks informational values.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorMagenta marks pivots.
func ColorMagenta() string { return GetCurrentTheme().Accent }

// ColorGrey dims secondary text.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold makes text bold.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline underlines text.
func ColorUnderline() string { return GetCurrentTheme().Underline }
