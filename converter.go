package spotlight

// Converter turns resource description HTML into Markdown.
type Converter interface {
	// Convert returns src as Markdown. Returns EINVALID for blank input.
	Convert(src string) (string, error)
}
