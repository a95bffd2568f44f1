package public

import "github.com/fastbite/fastbite/internal/provider"

// Handler serves the visitor-facing API.
type Handler struct {
	*provider.Container
}

// New creates the public handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
