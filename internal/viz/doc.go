// Package viz draws palettes and rendered fields in the terminal.
//
// Colors are emitted through lipgloss, so output degrades to plain block
// characters when the terminal has no color support.
//
//   - [Swatch]: one line of colored blocks sampled from a palette
//   - [HalfBlock]: an image drawn two pixel rows per text line
//   - [Preview]: an interactive Bubble Tea viewer
//
// # Key Bindings
//
//	Arrows/hjkl - Pan
//	+/-         - Zoom in/out
//	P           - Next palette
//	R           - Reverse palette
//	T           - Cycle UI themes
//	0           - Reset view
//	?           - Show help overlay
//	Q           - Quit
package viz
