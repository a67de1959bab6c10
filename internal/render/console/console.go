// Package console renders the hierarchy model as a terminal tree plus an
// issue summary table. It reads the model only; it never mutates it and
// never touches asset bytes.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/imca-cat/tripreport/internal/hierarchy"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Options configures rendering.
type Options struct {
	// NoColor disables lipgloss styling, for piped output or NO_COLOR.
	NoColor bool
}

// styles holds the terminal styles used by the tree and table.
type styles struct {
	ok      lipgloss.Style
	missing lipgloss.Style
	extra   lipgloss.Style
	label   lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{ok: plain, missing: plain, extra: plain, label: plain}
	}
	return styles{
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		missing: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		extra:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		label:   lipgloss.NewStyle().Bold(true),
	}
}

// Render writes the trip tree, a per-collection asset breakdown, and,
// when issues exist, a summary table to w.
func Render(w io.Writer, trip *hierarchy.Trip, opts Options) {
	st := newStyles(opts.NoColor)

	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedLight)

	lw.AppendItem(st.label.Render("Trip: ") + trip.Name)
	lw.Indent()
	for _, site := range trip.Groups() {
		if trip.SiteLevel {
			lw.AppendItem("Site: " + site.Name)
			lw.Indent()
		}
		for _, puck := range site.Pucks {
			lw.AppendItem("Puck: " + puck.Name + statusSuffix(st, puck.Valid))
			lw.Indent()
			for _, pin := range puck.Pins {
				appendPin(lw, st, pin)
			}
			lw.UnIndent()
		}
		if trip.SiteLevel {
			lw.UnIndent()
		}
	}
	lw.UnIndent()
	fmt.Fprintln(w, lw.Render())

	counts := trip.Counts()
	if trip.SiteLevel {
		fmt.Fprintf(w, "%d sites, %d pucks, %d pins, %d collections\n",
			counts.Sites, counts.Pucks, counts.Pins, counts.Collections)
	} else {
		fmt.Fprintf(w, "%d pucks, %d pins, %d collections\n",
			counts.Pucks, counts.Pins, counts.Collections)
	}

	issues := trip.AllIssues()
	if len(issues) == 0 {
		fmt.Fprintln(w, st.ok.Render("All expected directories and assets found."))
		return
	}
	fmt.Fprintln(w, st.missing.Render(fmt.Sprintf("%d issues detected:", len(issues))))
	renderIssueTable(w, issues)
}

func appendPin(lw list.Writer, st styles, pin *hierarchy.Pin) {
	lw.AppendItem("Pin: " + pin.Name + statusSuffix(st, pin.Valid))
	lw.Indent()
	if len(pin.Collections) == 0 {
		lw.AppendItem(st.missing.Render("no collection directories"))
	}
	for _, c := range pin.Collections {
		lw.AppendItem("Collection: " + c.Name + statusSuffix(st, c.Valid))
		lw.Indent()
		for _, slot := range c.Assets {
			if slot.Present {
				lw.AppendItem(st.ok.Render(fmt.Sprintf("%s (ok)", slot.Key)))
			} else {
				lw.AppendItem(st.missing.Render(fmt.Sprintf("%s (missing %s)", slot.Key, slot.RelPath)))
			}
		}
		for _, extra := range c.Extras {
			lw.AppendItem(st.extra.Render(extra + " (extra)"))
		}
		lw.UnIndent()
	}
	lw.UnIndent()
}

func statusSuffix(st styles, valid bool) string {
	if valid {
		return ""
	}
	return " " + st.missing.Render("[invalid]")
}

func renderIssueTable(w io.Writer, issues []hierarchy.Issue) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Path", "Kind", "Detail"})
	for _, issue := range issues {
		tw.AppendRow(table.Row{issue.Path, string(issue.Kind), issue.Message})
	}
	tw.Render()
}
