// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/ui/display"
	"github.com/arthur-debert/relines/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Renderer draws rule tables and run summaries with lipgloss
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.RuleList:
		return r.write(renderRules(v))
	case *display.Summary:
		return r.write(renderSummary(v))
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.output, s+"\n")
	return err
}

func newTable(headers ...string) *table.Table {
	headerStyle := styles.GetStyle("TableHeader")
	cellStyle := styles.GetStyle("TableCell")
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.GetStyle("Muted")).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderRules(list *display.RuleList) string {
	var sections []string
	if len(list.Sources) > 0 {
		sections = append(sections, styles.GetStyle("Header").Render("Rules from "+strings.Join(list.Sources, ", ")))
	}
	if len(list.Rules) == 0 {
		sections = append(sections, styles.GetStyle("Muted").Render("No rules."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	t := newTable("#", "Rule", "Notes")
	for _, row := range list.Rules {
		var notes []string
		if row.CrossLine {
			notes = append(notes, styles.GetStyle("CrossLine").Render("cross-line"))
			notes = append(notes, styles.GetStyle("Badge").Render("↵"+strconv.Itoa(row.Newlines)))
		}
		if row.Noop {
			notes = append(notes, styles.GetStyle("Noop").Render("no-op"))
		}
		t.Row(
			styles.GetStyle("Index").Render(strconv.Itoa(row.Index)),
			styles.GetStyle("RuleText").Render(row.Inline),
			strings.Join(notes, " "),
		)
	}
	sections = append(sections, t.String())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderSummary(s *display.Summary) string {
	var sections []string
	if s.DryRun {
		sections = append(sections, styles.GetStyle("DryRunBanner").Render("DRY RUN: no files were written"))
	}
	for _, f := range s.Files {
		status := styles.GetStyle("Muted").Render("unchanged")
		if f.Changed {
			status = styles.GetStyle("Success").Render("changed")
		}
		header := fmt.Sprintf("%s → %s  %s  %s lines  %s substitutions",
			styles.GetStyle("FilePath").Render(f.Input),
			styles.GetStyle("FilePath").Render(f.Output),
			status,
			styles.GetStyle("Count").Render(fmt.Sprintf("%d→%d", f.LinesIn, f.LinesOut)),
			styles.GetStyle("Count").Render(strconv.Itoa(f.TotalMatches())),
		)
		sections = append(sections, header)

		if len(f.Rules) == 0 {
			continue
		}
		t := newTable("#", "Matches", "Rule")
		for _, stat := range f.Rules {
			rule := styles.GetStyle("RuleText").Render(stat.Rule)
			if stat.Skipped {
				rule = styles.GetStyle("Noop").Render(stat.Rule + " (skipped)")
			}
			t.Row(
				styles.GetStyle("Index").Render(strconv.Itoa(stat.Index+1)),
				strconv.Itoa(stat.Matches),
				rule,
			)
		}
		sections = append(sections, t.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	msg := styles.GetStyle("Error").Render("Error: ") + err.Error()
	if e, ok := err.(*errors.Error); ok {
		if details := e.DetailString(); details != "" {
			msg += "\n" + styles.GetStyle("Muted").Render(details)
		}
	}
	return r.write(msg)
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(styles.GetStyle("Info").Render(msg))
}
