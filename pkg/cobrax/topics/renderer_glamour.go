package topics

import (
	"io"
	"os"
	"path"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// MarkdownRenderer renders .md topics with glamour when they are printed
// on a terminal. Pipes and files get the markdown source, which reads fine
// as is and keeps "relines help rules > rules.md" useful.
type MarkdownRenderer struct {
	// Style is a glamour standard style ("dark", "light", "notty"). Empty
	// picks one from the terminal background, or "notty" under NO_COLOR.
	Style string
	// Width wraps paragraphs; 0 keeps glamour's default
	Width int
}

// NewMarkdownRenderer returns a renderer with automatic style selection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render implements Renderer
func (r *MarkdownRenderer) Render(w io.Writer, topic *Topic) string {
	if path.Ext(topic.FilePath) != ".md" || !isTerminal(w) {
		return topic.Content
	}

	options := []glamour.TermRendererOption{r.styleOption()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return topic.Content
	}
	out, err := renderer.Render(topic.Content)
	if err != nil {
		return topic.Content
	}
	return out
}

func (r *MarkdownRenderer) styleOption() glamour.TermRendererOption {
	switch {
	case r.Style != "":
		return glamour.WithStandardStyle(r.Style)
	case os.Getenv("NO_COLOR") != "":
		return glamour.WithStandardStyle("notty")
	default:
		return glamour.WithAutoStyle()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
