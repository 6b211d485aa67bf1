// Package report renders human-facing progress lines and run summaries.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/phobologic/locstostms/internal/model"
)

// styles holds color formatters for progress output.
type styles struct {
	bullet *color.Color
	label  *color.Color
	path   *color.Color
}

// newStyles creates color formatters; enabled=false respects --no-color.
func newStyles(enabled bool) *styles {
	s := &styles{
		bullet: color.New(color.Bold, color.FgHiWhite),
		label:  color.New(color.FgHiBlue),
		path:   color.New(color.FgHiGreen),
	}

	if !enabled {
		s.bullet.DisableColor()
		s.label.DisableColor()
		s.path.DisableColor()
	}

	return s
}

// Progress prints "* ..." status lines.
type Progress struct {
	w io.Writer
	s *styles
}

// NewProgress returns a Progress writing to w. Colors are used only when
// enabled and the color package has not been globally disabled.
func NewProgress(w io.Writer, enabled bool) *Progress {
	return &Progress{w: w, s: newStyles(enabled && !color.NoColor)}
}

// Println prints a plain status line.
func (p *Progress) Println(msg string) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.s.bullet.Sprint("*"), msg)
}

// Parsing announces that path is about to be parsed.
func (p *Progress) Parsing(path string) {
	_, _ = fmt.Fprintf(p.w, "%s %s %s\n", p.s.bullet.Sprint("*"), p.s.label.Sprint("Parsing:"), p.s.path.Sprint(path))
}

// Summary writes a table of per-file statement and pair counts.
func Summary(w io.Writer, results []model.FileResult) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Artifact", "Statements", "Pairs"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	statements, pairs := 0, 0
	for _, r := range results {
		table.Append([]string{
			r.Artifact(),
			fmt.Sprintf("%d", r.Owners),
			fmt.Sprintf("%d", len(r.Pairs)),
		})
		statements += r.Owners
		pairs += len(r.Pairs)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", statements),
		fmt.Sprintf("%d", pairs),
	})

	table.Render()
	_, _ = fmt.Fprintf(w, "\n%s", tableBuffer.String())
}
