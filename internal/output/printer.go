// Package output renders planning results for the terminal.
//
// [Printer] writes lipgloss-styled tables and summaries. Styles are bound to
// the printer's writer, so output to a pipe or buffer carries no color codes.
// [WriteJSON] provides the machine-readable alternative.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pmplan/internal/impact"
	"pmplan/internal/planning"
	"pmplan/internal/sprintsync"
)

// DefaultTruncateLength is the title width used when none is configured.
const DefaultTruncateLength = 48

// Printer writes styled planning output to a writer.
type Printer struct {
	w              io.Writer
	truncateLength int
	styles         styles
}

type styles struct {
	header  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	bands   map[string]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:  r.NewStyle().Bold(true).Underline(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		bands: map[string]lipgloss.Style{
			impact.LabelCritical: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
			impact.LabelHigh:     r.NewStyle().Foreground(lipgloss.Color("208")),
			impact.LabelMedium:   r.NewStyle().Foreground(lipgloss.Color("3")),
			impact.LabelLow:      r.NewStyle().Foreground(lipgloss.Color("2")),
		},
	}
}

// NewPrinter creates a Printer writing to w. A non-positive truncateLength
// uses [DefaultTruncateLength].
func NewPrinter(w io.Writer, truncateLength int) *Printer {
	if truncateLength <= 0 {
		truncateLength = DefaultTruncateLength
	}
	return &Printer{
		w:              w,
		truncateLength: truncateLength,
		styles:         newStyles(lipgloss.NewRenderer(w)),
	}
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// Band renders a band label in its color.
func (p *Printer) Band(b impact.Band) string {
	style, ok := p.styles.bands[b.Label]
	if !ok {
		return b.Label
	}
	return style.Render(b.Label)
}

// paddedBand renders a band label followed by spaces up to width columns.
func (p *Printer) paddedBand(b impact.Band, width int) string {
	return p.Band(b) + strings.Repeat(" ", max(0, width-len(b.Label)))
}

// Ranking prints the prioritization board.
func (p *Printer) Ranking(ranked []planning.RankedStory) {
	if len(ranked) == 0 {
		p.println(p.styles.muted.Render("No stories in backlog."))
		return
	}

	p.println(p.styles.header.Render(fmt.Sprintf("%-4s %-10s %5s  %-11s %-6s  %-11s  %s",
		"#", "ID", "SCORE", "BAND", "PRIO", "STATUS", "TITLE")))
	for _, r := range ranked {
		status := string(r.Story.Status)
		if status == "" {
			status = "-"
		}
		prio := string(r.Story.Priority)
		if prio == "" {
			prio = "-"
		}
		line := fmt.Sprintf("%-4d %-10s %5d  %s %s %-6s  %-11s  %s",
			r.Rank,
			r.Story.ID,
			r.Score,
			r.Band.Icon,
			p.paddedBand(r.Band, 8),
			prio,
			status,
			Truncate(r.Story.Title, p.truncateLength),
		)
		if len(r.Warnings) > 0 {
			line += " " + p.styles.warning.Render(fmt.Sprintf("(%d warnings)", len(r.Warnings)))
		}
		p.println(line)
	}
}

// Stats prints impact statistics.
func (p *Printer) Stats(st impact.Stats) {
	p.println(p.styles.header.Render("Impact statistics"))
	p.println(fmt.Sprintf("Stories:  %d", st.Count))
	p.println(fmt.Sprintf("Average:  %d", st.AverageScore))
	p.println(fmt.Sprintf("Max:      %d", st.MaxScore))
	p.println(fmt.Sprintf("Min:      %d", st.MinScore))
	p.println("")
	counts := []int{st.Distribution.Critical, st.Distribution.High, st.Distribution.Medium, st.Distribution.Low}
	for i, b := range impact.Bands {
		p.println(fmt.Sprintf("%s %s %d", b.Icon, p.paddedBand(b, 9), counts[i]))
	}
}

// Explanation prints a story's score breakdown.
func (p *Printer) Explanation(e planning.Explanation) {
	b := e.Breakdown
	p.println(p.styles.header.Render(fmt.Sprintf("%s %s", e.Story.ID, e.Story.Title)))
	p.println(fmt.Sprintf("Priority weight:        %d", b.PriorityWeight))
	p.println(fmt.Sprintf("Need weight:            %d", b.NeedWeight))
	p.println(fmt.Sprintf("Goal weight:            %d", b.GoalWeight))
	p.println(fmt.Sprintf("Stakeholder multiplier: %d", b.StakeholderMultiplier))
	p.println(fmt.Sprintf("Client bonus:           %.1f", b.ClientBonus))
	p.println(fmt.Sprintf("Score:                  %d %s %s", b.Score, e.Band.Icon, p.Band(e.Band)))
	for _, w := range e.Warnings {
		p.println(p.styles.warning.Render("! " + w))
	}
}

// Warnings prints advisory warnings grouped by story, in story ID order.
func (p *Printer) Warnings(warnings map[string][]string) {
	if len(warnings) == 0 {
		p.println(p.styles.success.Render("✓ No data-quality warnings"))
		return
	}

	ids := make([]string, 0, len(warnings))
	for id := range warnings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p.println(p.styles.header.Render(id))
		for _, w := range warnings[id] {
			p.println(p.styles.warning.Render("  ! " + w))
		}
	}
}

// Summary prints the notification lines of a sprint membership edit.
func (p *Printer) Summary(s planning.Summary) {
	for _, msg := range s.Messages() {
		p.println(p.styles.success.Render("✓ " + msg))
	}
	for _, id := range s.Skipped {
		p.println(p.styles.warning.Render("! skipped unknown story " + id))
	}
}

// Violations prints audit findings.
func (p *Printer) Violations(vs []sprintsync.Violation) {
	if len(vs) == 0 {
		p.println(p.styles.success.Render("✓ Sprint membership is consistent"))
		return
	}
	for _, v := range vs {
		p.println(p.styles.warning.Render("✗ " + v.String()))
	}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
