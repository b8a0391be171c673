// Package report prints per-file progress and the run summary.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/thywilljoshua/shotnamer/internal/rename"
)

var rule = strings.Repeat("-", 50)

// Console writes human-readable progress lines to w.
type Console struct {
	w      io.Writer
	ok     *color.Color
	warn   *color.Color
	fail   *color.Color
	accent *color.Color
}

// NewConsole returns a Console writing to w. Colour follows fatih/color's
// terminal detection unless noColor forces it off.
func NewConsole(w io.Writer, noColor bool) *Console {
	c := &Console{
		w:      w,
		ok:     color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed),
		accent: color.New(color.FgCyan, color.Bold),
	}
	if noColor {
		for _, col := range []*color.Color{c.ok, c.warn, c.fail, c.accent} {
			col.DisableColor()
		}
	}
	return c
}

func (c *Console) Start(dir string, next int) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	fmt.Fprintf(c.w, "🔍 Scanning folder: %s\n", dir)
	fmt.Fprintf(c.w, "📈 Starting next index from: %s\n", c.accent.Sprintf("%03d", next))
	fmt.Fprintln(c.w, rule)
}

func (c *Console) Processing(name string) {
	fmt.Fprintf(c.w, "Processing: %s\n", name)
}

func (c *Console) Skipped(name string, reason rename.SkipReason) {
	switch reason {
	case rename.SkipNoText:
		fmt.Fprintf(c.w, "  - %s Could not extract text. Skipping.\n", c.warn.Sprint("⚠"))
	case rename.SkipEmptyName:
		fmt.Fprintf(c.w, "  - %s AI returned an empty name. Skipping.\n", c.warn.Sprint("⚠"))
	case rename.SkipRenameError:
		fmt.Fprintf(c.w, "  - %s Failed to rename file.\n", c.fail.Sprint("❌"))
	case rename.SkipIndexExhausted:
		fmt.Fprintf(c.w, "%s: %s index %03d reached. Skipping.\n", name, c.warn.Sprint("⚠"), rename.MaxIndex)
	default:
		fmt.Fprintf(c.w, "  - %s Skipped (%s).\n", c.warn.Sprint("⚠"), reason)
	}
}

func (c *Console) Renamed(from, to string, dryRun bool) {
	if dryRun {
		fmt.Fprintf(c.w, "  - 📝 Would rename to: %s\n", c.ok.Sprint(to))
		return
	}
	fmt.Fprintf(c.w, "  - %s Renamed to: %s\n", c.ok.Sprint("✅"), c.ok.Sprint(to))
}

func (c *Console) Done(res rename.Result) {
	fmt.Fprintln(c.w, rule)
	n := len(res.Renamed)
	switch {
	case n == 0:
		fmt.Fprintln(c.w, "✨ No new screenshots found to rename.")
	case res.DryRun:
		fmt.Fprintf(c.w, "✨ Dry run complete. Would rename %d new files.\n", n)
	default:
		fmt.Fprintf(c.w, "✨ Process complete! Renamed %d new files.\n", n)
	}
	if k := len(res.Skipped); k > 0 {
		fmt.Fprintf(c.w, "%s %d skipped\n", c.warn.Sprint("⚠"), k)
	}
}
