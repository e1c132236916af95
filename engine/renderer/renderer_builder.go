package renderer

import "github.com/Carmen-Shannon/gates/engine/texture"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithMaxVertices sets the vertex capacity of each geometry kind per batch.
//
// Parameters:
//   - n: the vertex capacity, ignored when not positive
//
// Returns:
//   - RendererBuilderOption: a function that applies the vertex capacity option to a renderer
func WithMaxVertices(n int) RendererBuilderOption {
	return func(r *renderer) {
		if n > 0 {
			r.limits.MaxVertices = n
		}
	}
}

// WithMaxIndices sets the index capacity of each geometry kind per batch.
//
// Parameters:
//   - n: the index capacity, ignored when not positive
//
// Returns:
//   - RendererBuilderOption: a function that applies the index capacity option to a renderer
func WithMaxIndices(n int) RendererBuilderOption {
	return func(r *renderer) {
		if n > 0 {
			r.limits.MaxIndices = n
		}
	}
}

// WithMaxTextures sets the number of texture slots per batch, including the reserved white slot.
//
// Parameters:
//   - n: the slot count, ignored when not positive
//
// Returns:
//   - RendererBuilderOption: a function that applies the texture slot option to a renderer
func WithMaxTextures(n int) RendererBuilderOption {
	return func(r *renderer) {
		if n > 0 {
			r.limits.MaxTextures = n
		}
	}
}

// WithWhiteTexture replaces the texture held in slot 0.
// Untextured geometry samples this texture, so anything other than opaque white tints every shape.
//
// Parameters:
//   - tex: the texture to reserve in slot 0
//
// Returns:
//   - RendererBuilderOption: a function that applies the white texture option to a renderer
func WithWhiteTexture(tex texture.Texture) RendererBuilderOption {
	return func(r *renderer) {
		if tex != nil {
			r.white = tex
		}
	}
}
