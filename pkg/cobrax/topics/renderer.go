package topics

// Renderer turns topic source into terminal output.
type Renderer interface {
	// Render formats content; ext is the topic file extension.
	Render(content string, ext string) string
}

// PlainRenderer returns content unchanged. Used for pipes and NO_COLOR.
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
