package topics

import "io"

// Renderer formats a topic for the writer it is about to be printed on
type Renderer interface {
	Render(w io.Writer, topic *Topic) string
}

// PlainRenderer prints topic sources unchanged
type PlainRenderer struct{}

// Render returns the topic content as stored
func (PlainRenderer) Render(_ io.Writer, topic *Topic) string {
	return topic.Content
}
