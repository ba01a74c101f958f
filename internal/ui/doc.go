// Package ui owns the color themes of partviz: ANSI sequences for the plain
// CLI output and lipgloss palettes for the dashboard. --no-color and the
// NO_COLOR environment variable select the colorless variants.
package ui
