package visualizer

// Options configures the diagram output.
type Options struct {
	// Direction controls diagram flow: "TB" (top-bottom) or "LR"
	// (left-right). Empty leaves Mermaid's default.
	Direction string

	// ShowRoutes annotates states with their message routes.
	ShowRoutes bool

	// Fenced wraps the diagram in a ```mermaid code fence for embedding in
	// Markdown.
	Fenced bool
}

// DefaultOptions returns sensible defaults for visualization.
func DefaultOptions() Options {
	return Options{
		Direction:  "TB",
		ShowRoutes: true,
		Fenced:     true,
	}
}

// WithDirection sets the diagram direction.
func (o Options) WithDirection(direction string) Options {
	o.Direction = direction

	return o
}

// WithShowRoutes enables or disables route annotations.
func (o Options) WithShowRoutes(show bool) Options {
	o.ShowRoutes = show

	return o
}

// WithFenced enables or disables the Markdown code fence.
func (o Options) WithFenced(fenced bool) Options {
	o.Fenced = fenced

	return o
}
