package topics

import "strings"

// Renderer formats topic content for the terminal. format is the extension
// the content was loaded from, like ".md" or ".txt".
type Renderer interface {
	Render(content string, format string) string
}

// RendererFunc lets a plain function serve as a Renderer
type RendererFunc func(content, format string) string

// Render calls f
func (f RendererFunc) Render(content, format string) string {
	return f(content, format)
}

// PlainRenderer prints content as written
type PlainRenderer struct{}

// Render returns content ending in exactly one newline
func (PlainRenderer) Render(content string, _ string) string {
	if content == "" {
		return ""
	}
	return strings.TrimRight(content, "\n") + "\n"
}

// Switch chooses between a plain and a rich renderer each time it renders,
// so the choice can follow flags parsed after it was built.
type Switch struct {
	// UsePlain reports whether to fall back to Plain. nil always uses Rich.
	UsePlain func() bool
	// Plain defaults to PlainRenderer
	Plain Renderer
	Rich  Renderer
}

// Render delegates to Rich unless UsePlain says otherwise or Rich is nil
func (s Switch) Render(content, format string) string {
	if s.Rich != nil && (s.UsePlain == nil || !s.UsePlain()) {
		return s.Rich.Render(content, format)
	}
	plain := s.Plain
	if plain == nil {
		plain = PlainRenderer{}
	}
	return plain.Render(content, format)
}
