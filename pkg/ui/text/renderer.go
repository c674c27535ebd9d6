// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/relines/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.RuleList:
		return r.renderRules(v)
	case *display.Summary:
		return r.renderSummary(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderRules(list *display.RuleList) error {
	var b strings.Builder
	if len(list.Sources) > 0 {
		fmt.Fprintf(&b, "Rules from %s\n", strings.Join(list.Sources, ", "))
	}
	if len(list.Rules) == 0 {
		b.WriteString("No rules.\n")
	}
	for _, row := range list.Rules {
		fmt.Fprintf(&b, "%3d  %s", row.Index, row.Inline)
		if row.CrossLine {
			fmt.Fprintf(&b, "  [cross-line, %d line break(s)]", row.Newlines)
		}
		if row.Noop {
			b.WriteString("  [no-op]")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderSummary(s *display.Summary) error {
	var b strings.Builder
	if s.DryRun {
		b.WriteString("Dry run: no files were written\n")
	}
	for _, f := range s.Files {
		status := "unchanged"
		if f.Changed {
			status = "changed"
		}
		fmt.Fprintf(&b, "%s -> %s: %s, %d -> %d lines, %d substitutions\n",
			f.Input, f.Output, status, f.LinesIn, f.LinesOut, f.TotalMatches())
		for _, stat := range f.Rules {
			if stat.Skipped {
				fmt.Fprintf(&b, "  %3d  %-6d %s (skipped)\n", stat.Index+1, stat.Matches, stat.Rule)
				continue
			}
			fmt.Fprintf(&b, "  %3d  %-6d %s\n", stat.Index+1, stat.Matches, stat.Rule)
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
