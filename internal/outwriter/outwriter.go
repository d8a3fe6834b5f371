// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/gitbars/internal/contract"
	"golang.org/x/term"
)

// Fallback display width used when the terminal size cannot be determined.
const fallbackWidth = 80

// OutWriter renders aggregated results as human-readable text. All methods
// tolerate empty input by emitting a "no data" notice instead of failing.
type OutWriter struct {
	w       io.Writer
	scheme  contract.ColorScheme
	symbols bool
	width   int // Display width override (0 = auto-detect)
}

// New creates an output writer bound to the given sink and configuration.
func New(w io.Writer, cfg *contract.Config) *OutWriter {
	return &OutWriter{
		w:       w,
		scheme:  cfg.Colors,
		symbols: cfg.UseSymbols,
		width:   cfg.Width,
	}
}

// displayWidth returns the effective display width: the configured override,
// the detected terminal width, or a conservative fallback.
func (ow *OutWriter) displayWidth() int {
	if ow.width > 0 {
		return ow.width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return fallbackWidth
	}
	return detected
}

// maxBarWidth computes the bar budget after reserving columns for labels,
// clamped to an upper bound.
func (ow *OutWriter) maxBarWidth(reserve, upper int) int {
	available := ow.displayWidth() - reserve
	if available < 10 {
		return 10
	}
	if available > upper {
		return upper
	}
	return available
}

// barGlyph returns the glyph used for count bars.
func (ow *OutWriter) barGlyph() string {
	if ow.symbols {
		return "▀"
	}
	return "#"
}

// blockGlyph returns the glyph used for solid chart bars.
func (ow *OutWriter) blockGlyph() string {
	if ow.symbols {
		return "█"
	}
	return "#"
}

// title prints a colored section title.
func (ow *OutWriter) title(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	fmt.Fprintf(ow.w, "\n%s%s%s\n", ow.scheme.Title, text, ow.scheme.Reset)
}

// noData prints a clearly visible notice for empty input.
func (ow *OutWriter) noData(msg string) {
	fmt.Fprintf(ow.w, "%s%s%s\n", ow.scheme.Alert, msg, ow.scheme.Reset)
}
